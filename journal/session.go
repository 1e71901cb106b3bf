package journal

import "fmt"

// Session owns the in-memory entry list and the capital baseline for one
// signed-in run. All aggregation operates on snapshots taken from here.
//
// A Session is not safe for concurrent use. The journal is single-user,
// single-tab by design: loads may run concurrently against the store, but
// the session itself is touched from one goroutine only.
type Session struct {
	entries []Entry

	baseline float64
	staged   float64
}

// NewSession creates a session with the given committed capital baseline.
func NewSession(baseline float64) *Session {
	return &Session{baseline: baseline, staged: baseline}
}

// Load replaces the entry list with records fetched from the store,
// assigning local ids 1..n in arrival order.
func (s *Session) Load(entries []Entry) {
	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
	for i := range s.entries {
		s.entries[i].ID = i + 1
	}
}

// Entries returns a copy of the current entry list.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of loaded entries.
func (s *Session) Len() int { return len(s.entries) }

// NextID returns the next local id: max existing + 1, or 1 when empty.
func (s *Session) NextID() int {
	next := 1
	for _, e := range s.entries {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}

// Find returns the entry with the given local id.
func (s *Session) Find(id int) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Add appends an entry acknowledged by the store, assigning its local id.
// The returned entry carries the assigned id.
func (s *Session) Add(e Entry) Entry {
	e.ID = s.NextID()
	s.entries = append(s.entries, e)
	return e
}

// Update replaces the fields of the entry with e.ID. The local id and the
// store identifier are preserved; everything else is replaceable.
func (s *Session) Update(e Entry) error {
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			e.ExternalID = s.entries[i].ExternalID
			s.entries[i] = e
			return nil
		}
	}
	return fmt.Errorf("session: no entry with id %d", e.ID)
}

// Remove deletes the entry with the given local id and returns it, so the
// caller can address the store via its ExternalID.
func (s *Session) Remove(id int) (Entry, error) {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("session: no entry with id %d", id)
}

// Baseline returns the committed capital baseline.
func (s *Session) Baseline() float64 { return s.baseline }

// StagedBaseline returns the staged (not yet saved) baseline value.
func (s *Session) StagedBaseline() float64 { return s.staged }

// StageBaseline holds a candidate baseline without touching the committed
// value. Nothing else observes it until a commit.
func (s *Session) StageBaseline(v float64) { s.staged = v }

// CommitBaseline adopts v as the committed baseline and clears staging.
// v is the value echoed back by the store, which is the source of truth,
// not the locally staged number.
func (s *Session) CommitBaseline(v float64) {
	s.baseline = v
	s.staged = v
}

// CancelBaseline discards the staged value, reverting to the last
// committed baseline. Stored entries are untouched.
func (s *Session) CancelBaseline() { s.staged = s.baseline }
