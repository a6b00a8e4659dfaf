package eventstore

import (
	"context"
	"sort"
	"sync"

	"webhookrepo/internal/models"
)

type memoryEntry struct {
	seq    uint64
	record models.EventRecord
}

// MemoryStore keeps records in process. It backs tests and the STORE=memory profile.
type MemoryStore struct {
	mu      sync.RWMutex
	seq     uint64
	entries []memoryEntry

	// InsertErr, when set, is returned by Insert instead of storing the record.
	InsertErr error
	// ListErr, when set, is returned by ListRecent.
	ListErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(_ context.Context, record models.EventRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.InsertErr != nil {
		return s.InsertErr
	}

	s.seq++
	s.entries = append(s.entries, memoryEntry{seq: s.seq, record: record})

	return nil
}

func (s *MemoryStore) ListRecent(_ context.Context, limit int) ([]models.EventRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ListErr != nil {
		return nil, s.ListErr
	}

	if limit <= 0 {
		return []models.EventRecord{}, nil
	}

	sorted := make([]memoryEntry, len(s.entries))
	copy(sorted, s.entries)

	// Equal created_at values resolve to the most recently inserted record first.
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.record.CreatedAt.Equal(b.record.CreatedAt) {
			return a.record.CreatedAt.After(b.record.CreatedAt)
		}
		return a.seq > b.seq
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	records := make([]models.EventRecord, 0, len(sorted))
	for _, entry := range sorted {
		records = append(records, entry.record)
	}

	return records, nil
}

// Len reports how many records have been inserted.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
