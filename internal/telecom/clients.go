package telecom

//go:generate mockgen -destination=./clients_mock_test.go -package=telecom -source=clients.go

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TwilioClient is the contract for the external telecom REST API.
type TwilioClient interface {
	// ListCalls fetches the most recent calls, newest first.
	ListCalls(ctx context.Context, pageSize int) ([]*CallRecord, error)

	// CreateCall starts dialing and returns the new call's id and initial status.
	CreateCall(ctx context.Context, params CallParams) (*Receipt, error)

	// ListMessages fetches the most recent messages, newest first.
	ListMessages(ctx context.Context, pageSize int) ([]*MessageRecord, error)

	// CreateMessage submits a text message for delivery.
	CreateMessage(ctx context.Context, params MessageParams) (*Receipt, error)
}

// httpTwilioClient talks to the Twilio REST API over HTTP with basic auth.
type httpTwilioClient struct {
	httpClient *http.Client
	baseURL    string
	accountSID string
	authToken  string
}

// NewHTTPTwilioClient is the constructor. baseURL is the API root, eg https://api.twilio.com/2010-04-01.
func NewHTTPTwilioClient(baseURL, accountSID, authToken string, timeout time.Duration) TwilioClient {
	return &httpTwilioClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
	}
}

// --- provider payloads ---

type providerCall struct {
	SID         string  `json:"sid"`
	Direction   string  `json:"direction"`
	Status      string  `json:"status"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Duration    *string `json:"duration"`
	DateCreated string  `json:"date_created"`
}

type providerMessage struct {
	SID         string `json:"sid"`
	Direction   string `json:"direction"`
	Body        string `json:"body"`
	From        string `json:"from"`
	To          string `json:"to"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created"`
}

type callList struct {
	Calls *[]providerCall `json:"calls"`
}

type messageList struct {
	Messages *[]providerMessage `json:"messages"`
}

type providerReceipt struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type providerError struct {
	Message string `json:"message"`
}

func (p *providerCall) toRecord(i int) (*CallRecord, error) {
	if p.SID == "" || p.DateCreated == "" {
		return nil, fmt.Errorf("call %d is missing sid or date_created", i)
	}
	duration := ""
	if p.Duration != nil {
		duration = *p.Duration
	}
	return &CallRecord{
		ID:        p.SID,
		Direction: p.Direction,
		Status:    p.Status,
		From:      p.From,
		To:        p.To,
		Duration:  duration,
		Date:      p.DateCreated,
	}, nil
}

func (p *providerMessage) toRecord(i int) (*MessageRecord, error) {
	if p.SID == "" || p.DateCreated == "" {
		return nil, fmt.Errorf("message %d is missing sid or date_created", i)
	}
	return &MessageRecord{
		ID:        p.SID,
		Direction: NormalizeDirection(p.Direction),
		Body:      p.Body,
		From:      p.From,
		To:        p.To,
		Status:    p.Status,
		Date:      p.DateCreated,
	}, nil
}

func (p *providerReceipt) toReceipt() (*Receipt, error) {
	if p.SID == "" || p.Status == "" {
		return nil, fmt.Errorf("twilio response is missing sid or status")
	}
	return &Receipt{ID: p.SID, Status: p.Status}, nil
}

// --- requests ---

func (c *httpTwilioClient) resourceURL(resource string) string {
	return fmt.Sprintf("%s/Accounts/%s/%s.json", c.baseURL, url.PathEscape(c.accountSID), resource)
}

// do sends the request with credentials and decodes a 2xx JSON body into out.
func (c *httpTwilioClient) do(req *http.Request, out interface{}) error {
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		msg := strings.TrimSpace(string(body))
		var pe providerError
		if json.Unmarshal(body, &pe) == nil && pe.Message != "" {
			msg = pe.Message
		}
		return fmt.Errorf("twilio API error: %d %s", resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode twilio response: %w", err)
	}
	return nil
}

func (c *httpTwilioClient) get(ctx context.Context, resource string, pageSize int, out interface{}) error {
	u := c.resourceURL(resource) + "?PageSize=" + strconv.Itoa(pageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("could not create twilio request: %w", err)
	}
	return c.do(req, out)
}

func (c *httpTwilioClient) post(ctx context.Context, resource string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resourceURL(resource), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("could not create twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *httpTwilioClient) ListCalls(ctx context.Context, pageSize int) ([]*CallRecord, error) {
	var list callList
	if err := c.get(ctx, "Calls", pageSize, &list); err != nil {
		return nil, err
	}
	if list.Calls == nil {
		return nil, fmt.Errorf("twilio response is missing calls")
	}

	calls := make([]*CallRecord, 0, len(*list.Calls))
	for i := range *list.Calls {
		rec, err := (*list.Calls)[i].toRecord(i)
		if err != nil {
			return nil, fmt.Errorf("malformed twilio response: %w", err)
		}
		calls = append(calls, rec)
	}
	return calls, nil
}

func (c *httpTwilioClient) CreateCall(ctx context.Context, params CallParams) (*Receipt, error) {
	form := url.Values{}
	form.Set("To", params.To)
	form.Set("From", params.From)
	form.Set("Url", params.URL)

	var pr providerReceipt
	if err := c.post(ctx, "Calls", form, &pr); err != nil {
		return nil, err
	}
	log.Printf("Call %s created, status %s", pr.SID, pr.Status)
	return pr.toReceipt()
}

func (c *httpTwilioClient) ListMessages(ctx context.Context, pageSize int) ([]*MessageRecord, error) {
	var list messageList
	if err := c.get(ctx, "Messages", pageSize, &list); err != nil {
		return nil, err
	}
	if list.Messages == nil {
		return nil, fmt.Errorf("twilio response is missing messages")
	}

	messages := make([]*MessageRecord, 0, len(*list.Messages))
	for i := range *list.Messages {
		rec, err := (*list.Messages)[i].toRecord(i)
		if err != nil {
			return nil, fmt.Errorf("malformed twilio response: %w", err)
		}
		messages = append(messages, rec)
	}
	return messages, nil
}

func (c *httpTwilioClient) CreateMessage(ctx context.Context, params MessageParams) (*Receipt, error) {
	form := url.Values{}
	form.Set("To", params.To)
	form.Set("From", params.From)
	form.Set("Body", params.Body)

	var pr providerReceipt
	if err := c.post(ctx, "Messages", form, &pr); err != nil {
		return nil, err
	}
	log.Printf("Message %s created, status %s", pr.SID, pr.Status)
	return pr.toReceipt()
}
