package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"talk-connect-hub/internal/conversation"
	"talk-connect-hub/internal/telecom"
)

// ErrStale is returned by a refresh whose result was discarded because a newer one was started.
var ErrStale = errors.New("superseded by a newer refresh")

// Store holds what the screens show and keeps it consistent when fetches overlap.
// The last started refresh wins; older results are dropped instead of overwriting newer ones.
type Store struct {
	client ProxyClient
	now    func() time.Time

	messageSeq Sequencer
	callSeq    Sequencer

	mu       sync.Mutex
	inbox    *conversation.Inbox
	rejected []conversation.Rejected
	calls    []*CallEntry
}

// NewStore creates an empty store backed by client.
func NewStore(client ProxyClient) *Store {
	return &Store{
		client: client,
		now:    time.Now,
		inbox:  conversation.NewInbox(nil),
	}
}

// RefreshMessages fetches messages and regroups the threads.
func (s *Store) RefreshMessages(ctx context.Context) error {
	id := s.messageSeq.Next()
	records, err := s.client.ListMessages(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.messageSeq.IsLatest(id) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("could not refresh messages: %w", err)
	}

	threads, rejected := conversation.Group(records)
	for _, r := range rejected {
		log.Printf("WARNING: skipped message %d (%s): %s", r.Index, r.ID, r.Reason)
	}
	s.inbox = conversation.NewInbox(threads)
	s.rejected = rejected
	return nil
}

// RefreshCalls fetches the call history.
func (s *Store) RefreshCalls(ctx context.Context) error {
	id := s.callSeq.Next()
	records, err := s.client.ListCalls(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.callSeq.IsLatest(id) {
		return ErrStale
	}
	if err != nil {
		return fmt.Errorf("could not refresh calls: %w", err)
	}

	entries := make([]*CallEntry, 0, len(records))
	for _, c := range records {
		e, err := newCallEntry(c)
		if err != nil {
			log.Printf("WARNING: skipped call %s: %v", c.ID, err)
			continue
		}
		entries = append(entries, e)
	}
	s.calls = entries
	return nil
}

// SendMessage sends body to the number and shows it in the matching thread right away.
func (s *Store) SendMessage(ctx context.Context, to, body string) (*conversation.Thread, error) {
	if _, err := s.client.SendMessage(ctx, to, body); err != nil {
		return nil, fmt.Errorf("could not send message: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inbox.AppendOutgoing(to, body, s.now()), nil
}

// PlaceCall asks the proxy to dial the number.
func (s *Store) PlaceCall(ctx context.Context, to string) (*telecom.Receipt, error) {
	receipt, err := s.client.PlaceCall(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("could not place call: %w", err)
	}
	return receipt, nil
}

// Threads returns the conversation threads matching query, most recent first.
// The threads are snapshots; later sends produce new values instead of changing them.
func (s *Store) Threads(query string) []*conversation.Thread {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*conversation.Thread(nil), s.inbox.Filter(query)...)
}

// CallHistory returns the call entries matching query.
func (s *Store) CallHistory(query string) []*CallEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*CallEntry(nil), FilterCalls(s.calls, query)...)
}

// Rejected returns the message records the last refresh could not group.
func (s *Store) Rejected() []conversation.Rejected {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]conversation.Rejected(nil), s.rejected...)
}
