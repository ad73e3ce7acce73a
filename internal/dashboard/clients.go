// Package dashboard is the data layer behind the calling and messaging screens.
package dashboard

//go:generate mockgen -destination=./clients_mock_test.go -package=dashboard -source=clients.go ProxyClient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"talk-connect-hub/internal/telecom"
)

// ProxyClient talks to the edge proxy on behalf of a signed in user.
type ProxyClient interface {
	ListCalls(ctx context.Context) ([]*telecom.CallRecord, error)
	PlaceCall(ctx context.Context, to string) (*telecom.Receipt, error)
	ListMessages(ctx context.Context) ([]*telecom.MessageRecord, error)
	SendMessage(ctx context.Context, to, body string) (*telecom.Receipt, error)
}

// httpProxyClient is the implementation for the ProxyClient.
type httpProxyClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewHTTPProxyClient is the constructor. baseURL includes the proxy's base path, eg https://edge.example.com/twilio.
func NewHTTPProxyClient(baseURL, token string) ProxyClient {
	return &httpProxyClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

type callsBody struct {
	Calls *[]*telecom.CallRecord `json:"calls"`
}

type messagesBody struct {
	Messages *[]*telecom.MessageRecord `json:"messages"`
}

type errorBody struct {
	Error string `json:"error"`
}

// do sends a JSON request and decodes the 2xx response into out.
// Anything else is an error carrying the proxy's error text.
func (c *httpProxyClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		reqBody, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewBuffer(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("could not create proxy request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if json.NewDecoder(resp.Body).Decode(&eb) == nil && eb.Error != "" {
			return fmt.Errorf("proxy returned %d: %s", resp.StatusCode, eb.Error)
		}
		return fmt.Errorf("proxy returned non-2xx status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode proxy response: %w", err)
	}
	return nil
}

func (c *httpProxyClient) ListCalls(ctx context.Context) ([]*telecom.CallRecord, error) {
	var b callsBody
	if err := c.do(ctx, http.MethodGet, "/calls", nil, &b); err != nil {
		return nil, err
	}
	if b.Calls == nil {
		return nil, fmt.Errorf("proxy response is missing calls")
	}
	return *b.Calls, nil
}

func (c *httpProxyClient) PlaceCall(ctx context.Context, to string) (*telecom.Receipt, error) {
	var r telecom.Receipt
	if err := c.do(ctx, http.MethodPost, "/calls", map[string]string{"to": to}, &r); err != nil {
		return nil, err
	}
	if r.ID == "" {
		return nil, fmt.Errorf("proxy response is missing id")
	}
	return &r, nil
}

func (c *httpProxyClient) ListMessages(ctx context.Context) ([]*telecom.MessageRecord, error) {
	var b messagesBody
	if err := c.do(ctx, http.MethodGet, "/messages", nil, &b); err != nil {
		return nil, err
	}
	if b.Messages == nil {
		return nil, fmt.Errorf("proxy response is missing messages")
	}
	return *b.Messages, nil
}

func (c *httpProxyClient) SendMessage(ctx context.Context, to, body string) (*telecom.Receipt, error) {
	var r telecom.Receipt
	if err := c.do(ctx, http.MethodPost, "/messages", map[string]string{"to": to, "body": body}, &r); err != nil {
		return nil, err
	}
	if r.ID == "" {
		return nil, fmt.Errorf("proxy response is missing id")
	}
	return &r, nil
}
