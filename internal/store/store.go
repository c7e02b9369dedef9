// Package store indexes scan results so matches can be queried after a run.
//
// Two implementations are provided: SQLiteStore persists to a database file
// and MemoryStore keeps everything in memory.
package store

import (
	"cmp"
	"context"
	"errors"

	"github.com/az-ai-labs/numwords/internal/scan"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Record is one indexed match.
type Record struct {
	RunID  string `json:"run_id"`
	Path   string `json:"path"`
	Text   string `json:"text"`
	Value  int64  `json:"value"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Query filters records. Zero fields match everything.
type Query struct {
	RunID string
	Path  string
	Min   *int64 // inclusive lower bound on Value
	Max   *int64 // inclusive upper bound on Value
	Limit int    // 0 means no limit
}

// Store persists scan reports and answers queries over their matches.
// Results are ordered by path, then start offset, then run.
type Store interface {
	SaveReport(ctx context.Context, r *scan.Report) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Count(ctx context.Context, q Query) (int64, error)
	Close() error
}

// records flattens a report into index rows.
func records(r *scan.Report) []Record {
	var out []Record
	for _, fr := range r.Files {
		for _, m := range fr.Matches {
			out = append(out, Record{
				RunID:  r.RunID,
				Path:   fr.Path,
				Text:   m.Text,
				Value:  m.Value,
				Start:  m.Start,
				End:    m.End,
				Line:   m.Line,
				Column: m.Column,
			})
		}
	}
	return out
}

func (q Query) matches(r Record) bool {
	if q.RunID != "" && r.RunID != q.RunID {
		return false
	}
	if q.Path != "" && r.Path != q.Path {
		return false
	}
	if q.Min != nil && r.Value < *q.Min {
		return false
	}
	if q.Max != nil && r.Value > *q.Max {
		return false
	}
	return true
}

func compareRecords(a, b Record) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Start, b.Start),
		cmp.Compare(a.RunID, b.RunID),
	)
}
