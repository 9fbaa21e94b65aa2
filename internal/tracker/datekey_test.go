package tracker

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDateKey(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
		want  string
	}{
		{2024, time.March, 5, "2024-03-05"},
		{2024, time.December, 31, "2024-12-31"},
		{1999, time.January, 1, "1999-01-01"},
	}

	for _, tc := range cases {
		if got := FormatDateKey(tc.year, tc.month, tc.day); got != tc.want {
			t.Fatalf("FormatDateKey(%d,%d,%d) = %q, want %q", tc.year, tc.month, tc.day, got, tc.want)
		}
	}

	now := time.Date(2025, time.July, 4, 23, 59, 0, 0, time.Local)
	if got := DateKeyOf(now); got != "2025-07-04" {
		t.Fatalf("DateKeyOf = %q", got)
	}
}

func TestParseDateKey(t *testing.T) {
	valid := []string{"2024-03-05", "2024-02-29", "2000-12-31"}
	for _, raw := range valid {
		parsed, err := ParseDateKey(raw)
		if err != nil {
			t.Fatalf("ParseDateKey(%q) returned error: %v", raw, err)
		}
		if DateKeyOf(parsed) != raw {
			t.Fatalf("round trip of %q produced %q", raw, DateKeyOf(parsed))
		}
	}

	invalid := []string{"", "2024-3-5", "2023-02-29", "2024/03/05", "2024-03-05T00:00:00Z", " 2024-03-05"}
	for _, raw := range invalid {
		if _, err := ParseDateKey(raw); !errors.Is(err, ErrInvalidDateKey) {
			t.Fatalf("ParseDateKey(%q) expected ErrInvalidDateKey, got %v", raw, err)
		}
	}
}
