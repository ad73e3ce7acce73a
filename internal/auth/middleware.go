package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
)

// RequireBearer rejects requests without a valid bearer token and stores the verified user on the context.
// Rejections carry a generic message so token validation details are not leaked.
func RequireBearer(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := v.Verify(r.Context(), token)
			if errors.Is(err, ErrInvalidToken) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				log.Printf("identity check failed: %v", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}

			next.ServeHTTP(w, SetUser(r, user))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
