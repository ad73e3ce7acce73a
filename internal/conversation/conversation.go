// Package conversation groups flat message records into per-contact threads.
package conversation

import (
	"errors"
	"sort"
	"strings"
	"time"

	"talk-connect-hub/internal/phone"
	"talk-connect-hub/internal/telecom"
)

// Message is a record shaped for display inside a thread.
type Message struct {
	ID        string            `json:"id"`
	Body      string            `json:"body"`
	Sender    telecom.Direction `json:"sender"`
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// Thread is every message exchanged with one counterparty.
// A thread handed out by Group or an Inbox is not modified afterwards.
type Thread struct {
	// Number is the normalized counterparty number and the thread's key.
	Number       string     `json:"number"`
	Name         string     `json:"name"`
	LastMessage  string     `json:"last_message"`
	LastActivity time.Time  `json:"last_activity"`
	Messages     []*Message `json:"messages"`
}

// Unread counts contact messages newer than our latest reply.
// It goes by timestamp since records may arrive newest first.
func (t *Thread) Unread() int {
	var lastReply time.Time
	for _, m := range t.Messages {
		if m.Sender == telecom.DirectionUser && m.Timestamp.After(lastReply) {
			lastReply = m.Timestamp
		}
	}

	n := 0
	for _, m := range t.Messages {
		if m.Sender == telecom.DirectionContact && m.Timestamp.After(lastReply) {
			n++
		}
	}
	return n
}

// add appends m and moves the preview forward if m is strictly newer.
func (t *Thread) add(m *Message) {
	t.Messages = append(t.Messages, m)
	if m.Timestamp.After(t.LastActivity) {
		t.LastMessage = m.Body
		t.LastActivity = m.Timestamp
	}
}

func newThread(key string) *Thread {
	return &Thread{Number: key, Name: phone.ContactName(key)}
}

// Rejected is a record left out of grouping and why.
type Rejected struct {
	Index  int
	ID     string
	Reason string
}

var (
	errNilRecord = errors.New("record is nil")
	errNoID      = errors.New("record has no id")
	errBadDate   = errors.New("record date is not a recognised timestamp")
)

// timestampLayouts are tried in order; the provider uses RFC 1123 with a numeric zone.
var timestampLayouts = []string{
	time.RFC1123Z,
	time.RFC3339Nano,
	time.RFC1123,
}

// ParseTimestamp reads a record date in any of the supported layouts.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadDate
}

func toMessage(r *telecom.MessageRecord) (*Message, error) {
	if r == nil {
		return nil, errNilRecord
	}
	if r.ID == "" {
		return nil, errNoID
	}
	ts, err := ParseTimestamp(r.Date)
	if err != nil {
		return nil, err
	}
	return &Message{ID: r.ID, Body: r.Body, Sender: r.Direction, Status: r.Status, Timestamp: ts}, nil
}

// Group builds one thread per distinct normalized counterparty number, most recent activity first.
// Messages keep the order of records. Records without an id or a readable date are skipped and reported.
// An empty counterparty is grouped under the empty key like any other.
func Group(records []*telecom.MessageRecord) ([]*Thread, []Rejected) {
	var (
		threads  []*Thread
		byNumber = map[string]*Thread{}
		rejected []Rejected
	)

	for i, r := range records {
		m, err := toMessage(r)
		if err != nil {
			rej := Rejected{Index: i, Reason: err.Error()}
			if r != nil {
				rej.ID = r.ID
			}
			rejected = append(rejected, rej)
			continue
		}

		key := phone.Normalize(r.Counterparty())
		t, ok := byNumber[key]
		if !ok {
			t = newThread(key)
			byNumber[key] = t
			threads = append(threads, t)
		}
		t.add(m)
	}

	// Stable keeps first-seen order between threads with equal activity.
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastActivity.After(threads[j].LastActivity)
	})

	return threads, rejected
}
