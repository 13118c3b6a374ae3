// Package pagination implements descending-timestamp cursor pages shared by
// every list endpoint. The cursor is the last returned row's timestamp and
// acts as an exclusive upper bound on the next fetch, so the boundary row is
// never re-emitted. Rows sharing an identical timestamp are not further
// disambiguated; under dense concurrent writes a boundary row can be skipped
// or duplicated (a (timestamp,id) composite cursor would close this).
package pagination

import (
	"strconv"
	"time"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type Page[T any] struct {
	Items      []T
	HasMore    bool
	NextCursor *time.Time
}

// Slice assembles a page from rows fetched with limit+1, already ordered
// strictly descending on the cursor field. NextCursor is set only when a
// further page exists, so callers never chase an empty tail.
func Slice[T any](rows []T, limit int, ts func(T) time.Time) Page[T] {
	page := Page[T]{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		page.HasMore = true
		last := ts(page.Items[len(page.Items)-1])
		page.NextCursor = &last
	}
	return page
}

// ParseCursor decodes the wire cursor (RFC3339Nano). Empty means first page.
func ParseCursor(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatCursor encodes a cursor for the wire.
func FormatCursor(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

// ParseLimit clamps the requested page size to [1, MaxLimit], falling back
// to DefaultLimit when absent or unparsable.
func ParseLimit(raw string) int {
	if raw == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
