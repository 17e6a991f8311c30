package table

import "strings"

// Fields maps a selectable field key to an accessor returning the values the
// filter matches against. Multi-valued fields (a book's authors) return one
// string per element and match when any element matches.
type Fields[T any] map[string]func(T) []string

// Text adapts a single-valued accessor to the Fields signature.
func Text[T any](f func(T) string) func(T) []string {
	return func(row T) []string {
		return []string{f(row)}
	}
}

// Filter returns the subsequence of rows whose selected field contains the
// case-folded query as a substring. An empty or whitespace query returns rows
// unchanged. An empty field key matches against every registered field; an
// unknown field key matches nothing. The projection is pure and idempotent
// and never touches the base collection.
func Filter[T any](rows []T, fields Fields[T], field, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}

	var accessors []func(T) []string
	if field == "" {
		accessors = make([]func(T) []string, 0, len(fields))
		for _, f := range fields {
			accessors = append(accessors, f)
		}
	} else {
		f, ok := fields[field]
		if !ok {
			return []T{}
		}
		accessors = []func(T) []string{f}
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if matches(row, accessors, q) {
			out = append(out, row)
		}
	}
	return out
}

func matches[T any](row T, accessors []func(T) []string, q string) bool {
	for _, f := range accessors {
		for _, v := range f(row) {
			if strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
	}
	return false
}
