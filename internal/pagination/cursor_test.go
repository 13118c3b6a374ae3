package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id int
	ts time.Time
}

func makeRows(n int, base time.Time) []row {
	// strictly descending timestamps
	rows := make([]row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row{id: i, ts: base.Add(-time.Duration(i) * time.Second)})
	}
	return rows
}

func TestSliceFullWalk(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	all := makeRows(25, base)
	ts := func(r row) time.Time { return r.ts }

	// simulate three fetches of limit+1 chaining the cursor
	fetch := func(cursor *time.Time, limit int) []row {
		out := make([]row, 0, limit+1)
		for _, r := range all {
			if cursor != nil && !r.ts.Before(*cursor) {
				continue
			}
			out = append(out, r)
			if len(out) == limit+1 {
				break
			}
		}
		return out
	}

	var walked []row
	var cursor *time.Time
	sizes := []int{}
	mores := []bool{}
	for i := 0; i < 3; i++ {
		page := Slice(fetch(cursor, 10), 10, ts)
		sizes = append(sizes, len(page.Items))
		mores = append(mores, page.HasMore)
		walked = append(walked, page.Items...)
		cursor = page.NextCursor
	}

	assert.Equal(t, []int{10, 10, 5}, sizes)
	assert.Equal(t, []bool{true, true, false}, mores)
	assert.Nil(t, cursor, "final page must not hand out a cursor")

	require.Len(t, walked, 25)
	for i, r := range walked {
		assert.Equal(t, i, r.id, "descending order broken at %d", i)
	}
}

func TestSliceExclusiveBoundary(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	all := makeRows(5, base)
	ts := func(r row) time.Time { return r.ts }

	page := Slice(all[:3], 2, ts)
	require.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)

	// the cursor equals row 1's timestamp; a strictly-less filter must not
	// re-emit that row
	assert.Equal(t, all[1].ts, *page.NextCursor)
	for _, r := range all {
		if r.ts.Before(*page.NextCursor) {
			assert.Greater(t, r.id, 1)
		}
	}
}

func TestSliceExactLimitIsFinalPage(t *testing.T) {
	base := time.Now()
	page := Slice(makeRows(10, base), 10, func(r row) time.Time { return r.ts })
	assert.Len(t, page.Items, 10)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestParseCursor(t *testing.T) {
	c, err := ParseCursor("")
	require.NoError(t, err)
	assert.Nil(t, c)

	want := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)
	c, err = ParseCursor(want.Format(time.RFC3339Nano))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.True(t, want.Equal(*c))

	_, err = ParseCursor("not-a-time")
	assert.Error(t, err)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ParseLimit(""))
	assert.Equal(t, DefaultLimit, ParseLimit("0"))
	assert.Equal(t, DefaultLimit, ParseLimit("junk"))
	assert.Equal(t, 25, ParseLimit("25"))
	assert.Equal(t, MaxLimit, ParseLimit("9999"))
}
