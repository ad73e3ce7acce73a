package telecom

import (
	"fmt"
	"strings"
)

// Direction is the local two-valued message direction.
type Direction string

const (
	// DirectionUser marks messages sent from our number.
	DirectionUser Direction = "user"
	// DirectionContact marks messages received from the counterparty.
	DirectionContact Direction = "contact"
)

// NormalizeDirection maps the provider's direction vocabulary onto ours.
// Only "inbound" is a contact message; every outbound flavour (outbound-api, outbound-reply, ...) is the user's.
func NormalizeDirection(providerDirection string) Direction {
	if providerDirection == "inbound" {
		return DirectionContact
	}
	return DirectionUser
}

// CallRecord is a call as returned by GET /calls.
type CallRecord struct {
	ID        string `json:"id"`
	Direction string `json:"direction"`
	Status    string `json:"status"`
	From      string `json:"from"`
	To        string `json:"to"`
	Duration  string `json:"duration"`
	Date      string `json:"date"`
}

// MessageRecord is a text message as returned by GET /messages.
type MessageRecord struct {
	ID        string    `json:"id"`
	Direction Direction `json:"direction"`
	Body      string    `json:"body"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
}

// Counterparty is the number on the other end of the message.
func (m *MessageRecord) Counterparty() string {
	if m.Direction == DirectionContact {
		return m.From
	}
	return m.To
}

// Receipt is what the provider hands back after creating a call or message.
type Receipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CallParams are the inputs to a call creation request.
type CallParams struct {
	To   string
	From string
	// URL is fetched by the provider for the call's behaviour script.
	URL string
}

// MessageParams are the inputs to a message creation request.
type MessageParams struct {
	To   string
	From string
	Body string
}

// MissingFieldsError is returned when a mutating request lacks required fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s is required", e.Fields[0])
	}
	return fmt.Sprintf("%s are required", strings.Join(e.Fields, " and "))
}
