package store

import (
	"context"
	"slices"
	"sync"

	"github.com/az-ai-labs/numwords/internal/scan"
)

// MemoryStore is an in-memory Store. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
	closed  bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveReport(ctx context.Context, r *scan.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := records(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.records = append(s.records, rows...)
	return nil
}

func (s *MemoryStore) Query(ctx context.Context, q Query) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	var out []Record
	for _, r := range s.records {
		if q.matches(r) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, compareRecords)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context, q Query) (int64, error) {
	q.Limit = 0
	out, err := s.Query(ctx, q)
	return int64(len(out)), err
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.records = nil
	return nil
}
