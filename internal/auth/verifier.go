package auth

//go:generate mockgen -destination=./verifier_mock_test.go -package=auth -source=verifier.go Verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"talk-connect-hub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken means the identity service rejected the token.
var ErrInvalidToken = errors.New("invalid token")

// Verifier exchanges a bearer token for the user it was issued to.
type Verifier interface {
	// Verify returns ErrInvalidToken for rejected tokens and any other error when the identity
	// service could not be asked.
	Verify(ctx context.Context, token string) (*domain.User, error)
}

// identityClient asks the identity service who owns a token.
type identityClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewIdentityClient is the constructor for the remote verifier.
// baseURL is the identity project URL, apiKey its service key.
func NewIdentityClient(baseURL, apiKey string, timeout time.Duration) Verifier {
	return &identityClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type identityUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *identityClient) Verify(ctx context.Context, token string) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("could not create identity request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity service returned non-200 status: %d", resp.StatusCode)
	}

	var iu identityUser
	if err := json.NewDecoder(resp.Body).Decode(&iu); err != nil {
		return nil, fmt.Errorf("could not decode identity response: %w", err)
	}
	id, err := uuid.Parse(iu.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &domain.User{ID: id, Email: iu.Email, Role: iu.Role}, nil
}

// JWTVerifier checks access tokens locally against the identity service's signing secret.
type JWTVerifier struct {
	secretKey []byte
}

// Claims is the access token payload we rely on.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTVerifier returns a verifier for HS256 tokens signed with secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secretKey: []byte(secret)}
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (*domain.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	// exp is mandatory.
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &domain.User{ID: id, Email: claims.Email, Role: claims.Role}, nil
}
