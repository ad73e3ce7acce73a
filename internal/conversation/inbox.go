package conversation

import (
	"fmt"
	"strings"
	"time"

	"talk-connect-hub/internal/phone"
	"talk-connect-hub/internal/telecom"
)

// Inbox is an ordered thread list that outgoing messages can be added to before the next refresh.
// It is not safe for concurrent use.
type Inbox struct {
	threads []*Thread
	seq     uint64
}

// NewInbox wraps threads as returned by Group.
func NewInbox(threads []*Thread) *Inbox {
	return &Inbox{threads: threads}
}

// Threads returns a copy of the thread list, most recent first.
func (in *Inbox) Threads() []*Thread {
	return append([]*Thread(nil), in.threads...)
}

// Thread finds the thread for number in any spelling, or nil.
func (in *Inbox) Thread(number string) *Thread {
	_, t := in.find(phone.Normalize(number))
	return t
}

func (in *Inbox) find(key string) (int, *Thread) {
	for i, t := range in.threads {
		if t.Number == key {
			return i, t
		}
	}
	return -1, nil
}

// nextID returns a local message id. The counter makes ids unique even within one millisecond.
func (in *Inbox) nextID(at time.Time) string {
	in.seq++
	return fmt.Sprintf("local-%d-%d", at.UnixMilli(), in.seq)
}

// AppendOutgoing records a message we just sent. An existing thread gets the message and moves
// to the front, otherwise a new single-message thread is prepended.
// The extended thread is a new value; lists and threads returned earlier stay as they were.
func (in *Inbox) AppendOutgoing(to, body string, at time.Time) *Thread {
	m := &Message{
		ID:        in.nextID(at),
		Body:      body,
		Sender:    telecom.DirectionUser,
		Status:    "sending",
		Timestamp: at,
	}

	key := phone.Normalize(to)
	i, old := in.find(key)
	t := newThread(key)
	if old != nil {
		cp := *old
		t = &cp
	}

	msgs := make([]*Message, 0, len(t.Messages)+1)
	t.Messages = append(append(msgs, t.Messages...), m)
	// The thread is now the most recent one regardless of the clock.
	t.LastMessage = m.Body
	if at.After(t.LastActivity) {
		t.LastActivity = at
	}

	threads := make([]*Thread, 0, len(in.threads)+1)
	threads = append(threads, t)
	for j, other := range in.threads {
		if j != i {
			threads = append(threads, other)
		}
	}
	in.threads = threads
	return t
}

// Filter returns threads whose name, number or preview contains query, ignoring case.
// An empty query matches everything.
func (in *Inbox) Filter(query string) []*Thread {
	return Filter(in.threads, query)
}

// Filter is Inbox.Filter over any thread list.
func Filter(threads []*Thread, query string) []*Thread {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return threads
	}

	var out []*Thread
	for _, t := range threads {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(t.Number, q) ||
			strings.Contains(phone.Format(t.Number), q) ||
			strings.Contains(strings.ToLower(t.LastMessage), q) {
			out = append(out, t)
		}
	}
	return out
}
