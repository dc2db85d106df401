package board

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("UTC+1", 3600)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{name: "empty", raw: "", wantOK: false},
		{name: "token date zero based month", raw: "Date(2025,0,10)", want: time.Date(2025, time.January, 10, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "token date december", raw: "Date(2024,11,31)", want: time.Date(2024, time.December, 31, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "token date embedded", raw: "deadline Date(2025,5,1) noon", want: time.Date(2025, time.June, 1, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "token date rolls over", raw: "Date(2025,12,1)", want: time.Date(2026, time.January, 1, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "iso one based month", raw: "2025-01-10", want: time.Date(2025, time.January, 10, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "iso end of year", raw: "2023-12-25", want: time.Date(2023, time.December, 25, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "fallback long form", raw: "January 10, 2025", want: time.Date(2025, time.January, 10, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "fallback slashes", raw: "2025/01/10", want: time.Date(2025, time.January, 10, 0, 0, 0, 0, testLoc), wantOK: true},
		{name: "garbage", raw: "not a date", wantOK: false},
		{name: "open until filled", raw: "ASAP", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDeadline(tt.raw, testLoc)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDeadlineTokenAndISOAgree(t *testing.T) {
	for month := 0; month < 12; month++ {
		for _, day := range []int{1, 9, 15, 28} {
			token := fmt.Sprintf("Date(2025,%d,%d)", month, day)
			iso := fmt.Sprintf("2025-%02d-%02d", month+1, day)

			a, okA := ParseDeadline(token, testLoc)
			b, okB := ParseDeadline(iso, testLoc)
			require.True(t, okA, token)
			require.True(t, okB, iso)
			assert.True(t, a.Equal(b), "%s vs %s", token, iso)
			assert.Equal(t, time.Month(month+1), a.Month())
			assert.Equal(t, day, a.Day())
		}
	}
}

func TestParseDeadlineNilLocationUsesLocal(t *testing.T) {
	got, ok := ParseDeadline("2025-03-04", nil)
	require.True(t, ok)
	assert.Equal(t, time.Local, got.Location())
}

func TestFormatDeadline(t *testing.T) {
	assert.Equal(t, "10 Jan 2025", FormatDeadline("Date(2025,0,10)", testLoc))
	assert.Equal(t, "05 Mar 2024", FormatDeadline("2024-03-05", testLoc))
	assert.Equal(t, NoDeadline, FormatDeadline("", testLoc))
	assert.Equal(t, NoDeadline, FormatDeadline("whenever", testLoc))
}

func TestMaxDeadlineIsAfterEverything(t *testing.T) {
	far := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, MaxDeadline.After(far))
	assert.Equal(t, 275760, MaxDeadline.Year())
}
