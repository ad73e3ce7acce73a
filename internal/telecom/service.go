package telecom

//go:generate mockgen -destination=./service_mock_test.go -package=telecom -source=service.go Service

import (
	"context"
	"fmt"
	"strings"
)

// PageSize is the fixed number of records fetched per list operation.
const PageSize = 20

// Service defines the business logic of the edge proxy.
type Service interface {
	// ListCalls returns up to PageSize recent calls.
	ListCalls(ctx context.Context) ([]*CallRecord, error)

	// PlaceCall dials the destination from the configured origin number.
	PlaceCall(ctx context.Context, to string) (*Receipt, error)

	// ListMessages returns up to PageSize recent messages.
	ListMessages(ctx context.Context) ([]*MessageRecord, error)

	// SendMessage sends body to the destination from the configured origin number.
	SendMessage(ctx context.Context, to, body string) (*Receipt, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	twilio   TwilioClient
	from     string
	voiceURL string
}

// NewService is the constructor for the proxy service.
// from is the origin number for calls and messages, voiceURL is the behaviour script handed to new calls.
func NewService(twilio TwilioClient, from, voiceURL string) Service {
	return &service{
		twilio:   twilio,
		from:     from,
		voiceURL: voiceURL,
	}
}

func (s *service) ListCalls(ctx context.Context) ([]*CallRecord, error) {
	calls, err := s.twilio.ListCalls(ctx, PageSize)
	if err != nil {
		return nil, fmt.Errorf("could not list calls: %w", err)
	}
	if len(calls) > PageSize {
		calls = calls[:PageSize]
	}
	return calls, nil
}

func (s *service) PlaceCall(ctx context.Context, to string) (*Receipt, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, &MissingFieldsError{Fields: []string{"to"}}
	}

	receipt, err := s.twilio.CreateCall(ctx, CallParams{To: to, From: s.from, URL: s.voiceURL})
	if err != nil {
		return nil, fmt.Errorf("could not place call: %w", err)
	}
	return receipt, nil
}

func (s *service) ListMessages(ctx context.Context) ([]*MessageRecord, error) {
	messages, err := s.twilio.ListMessages(ctx, PageSize)
	if err != nil {
		return nil, fmt.Errorf("could not list messages: %w", err)
	}
	if len(messages) > PageSize {
		messages = messages[:PageSize]
	}
	return messages, nil
}

func (s *service) SendMessage(ctx context.Context, to, body string) (*Receipt, error) {
	to = strings.TrimSpace(to)

	var missing []string
	if to == "" {
		missing = append(missing, "to")
	}
	if strings.TrimSpace(body) == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	receipt, err := s.twilio.CreateMessage(ctx, MessageParams{To: to, From: s.from, Body: body})
	if err != nil {
		return nil, fmt.Errorf("could not send message: %w", err)
	}
	return receipt, nil
}
