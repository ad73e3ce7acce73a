package dashboard

import "sync/atomic"

// Sequencer hands out increasing request ids so that only the newest fetch may publish its result.
type Sequencer struct {
	latest atomic.Uint64
}

// Next issues a new id, superseding every earlier one.
func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

// IsLatest reports whether id is still the most recently issued.
func (s *Sequencer) IsLatest(id uint64) bool {
	return s.latest.Load() == id
}
