package dashboard

import (
	"strings"
	"time"

	"talk-connect-hub/internal/conversation"
	"talk-connect-hub/internal/phone"
	"talk-connect-hub/internal/telecom"
)

// CallKind is how a call is shown in the history list.
type CallKind string

const (
	CallIncoming CallKind = "incoming"
	CallOutgoing CallKind = "outgoing"
	CallMissed   CallKind = "missed"
)

// unanswered are the final statuses of an inbound call nobody picked up.
var unanswered = map[string]bool{
	"no-answer": true,
	"busy":      true,
	"failed":    true,
	"canceled":  true,
}

// CallEntry is a call record shaped for the history list.
type CallEntry struct {
	ID       string    `json:"id"`
	Kind     CallKind  `json:"kind"`
	Number   string    `json:"number"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Duration string    `json:"duration"`
	Date     time.Time `json:"date"`
}

// ClassifyCall maps a provider call onto incoming, outgoing or missed.
func ClassifyCall(c *telecom.CallRecord) CallKind {
	if c.Direction != "inbound" {
		return CallOutgoing
	}
	if unanswered[c.Status] {
		return CallMissed
	}
	return CallIncoming
}

// newCallEntry builds the history row for c. The counterparty is the caller for inbound calls.
func newCallEntry(c *telecom.CallRecord) (*CallEntry, error) {
	date, err := conversation.ParseTimestamp(c.Date)
	if err != nil {
		return nil, err
	}
	kind := ClassifyCall(c)
	number := c.To
	if kind != CallOutgoing {
		number = c.From
	}
	return &CallEntry{
		ID:       c.ID,
		Kind:     kind,
		Number:   number,
		Name:     phone.ContactName(number),
		Status:   c.Status,
		Duration: c.Duration,
		Date:     date,
	}, nil
}

// FilterCalls keeps entries whose name or number contains query, ignoring case.
func FilterCalls(entries []*CallEntry, query string) []*CallEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	var out []*CallEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(e.Number, q) {
			out = append(out, e)
		}
	}
	return out
}

// FormatTimestamp renders t relative to now: a clock time for today,
// the weekday within the last week, otherwise month and day.
func FormatTimestamp(t, now time.Time) string {
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()

	switch {
	case y1 == y2 && m1 == m2 && d1 == d2:
		return t.Format("15:04")
	case now.Sub(t) < 7*24*time.Hour:
		return t.Format("Mon")
	default:
		return t.Format("Jan 2")
	}
}
