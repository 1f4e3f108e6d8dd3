package store

import "sync"

// Store holds the ordered feedback for one analysis session. Append-only:
// records are never updated or removed, so a copied slice is always a
// consistent snapshot.
type Store struct {
	mu      sync.RWMutex
	records []FeedbackRecord
}

// New creates an empty feedback store.
func New() *Store {
	return &Store{}
}

// Append validates the record and adds it to the end of the session.
// Invalid records are rejected whole, never partially stored.
func (s *Store) Append(rec FeedbackRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
	return nil
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []FeedbackRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]FeedbackRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Recent returns a copy of the last n records in insertion order,
// or fewer if the store holds less than n.
func (s *Store) Recent(n int) []FeedbackRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []FeedbackRecord{}
	}
	if n > len(s.records) {
		n = len(s.records)
	}

	out := make([]FeedbackRecord, n)
	copy(out, s.records[len(s.records)-n:])
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
