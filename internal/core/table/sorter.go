package table

import (
	"sort"
	"time"
)

// farFuture is the sort key substituted for missing dates, so unreturned
// loans land at the end of an ascending order. Mirrors the upstream's
// "9999-12-31" convention.
var farFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// DateKeys maps a sortable column key to its date accessor. A zero time
// means the value is missing.
type DateKeys[T any] map[string]func(T) time.Time

// Sorter holds the active sort column and direction for a list screen. The
// displayed order is always recomputed from the filtered collection; no
// separate sorted collection is kept.
type Sorter[T any] struct {
	keys  DateKeys[T]
	field string
	asc   bool
}

// NewSorter creates a Sorter with the given initial column, ascending.
func NewSorter[T any](keys DateKeys[T], initial string) *Sorter[T] {
	return &Sorter[T]{keys: keys, field: initial, asc: true}
}

// Toggle reacts to a column-header click: a new column becomes active
// ascending, a click on the active column flips the direction.
func (s *Sorter[T]) Toggle(field string) {
	if s.field != field {
		s.field = field
		s.asc = true
		return
	}
	s.asc = !s.asc
}

// Set places the sorter in an explicit state, for callers that carry the
// column and direction in request parameters. An unknown field is ignored.
func (s *Sorter[T]) Set(field string, asc bool) {
	if _, ok := s.keys[field]; !ok {
		return
	}
	s.field = field
	s.asc = asc
}

// Field returns the active column key.
func (s *Sorter[T]) Field() string { return s.field }

// Ascending reports the active direction.
func (s *Sorter[T]) Ascending() bool { return s.asc }

// Apply returns rows stably sorted by the active column. The input is left
// untouched.
func (s *Sorter[T]) Apply(rows []T) []T {
	key, ok := s.keys[s.field]
	if !ok {
		return rows
	}

	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortKey(key(out[i])), sortKey(key(out[j]))
		if s.asc {
			return a.Before(b)
		}
		return b.Before(a)
	})
	return out
}

func sortKey(t time.Time) time.Time {
	if t.IsZero() {
		return farFuture
	}
	return t
}
