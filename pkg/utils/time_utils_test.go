package utils

import (
	"testing"
	"time"
)

func TestParseTripDate(t *testing.T) {
	want := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-01-10", " 2025-01-10 ", "2025-01-10T00:00:00Z", "2025/01/10", "Jan 10, 2025"} {
		got, ok := ParseTripDate(in)
		if !ok || !got.Equal(want) {
			t.Fatalf("ParseTripDate(%q) = %v, %v", in, got, ok)
		}
	}
	for _, in := range []string{"", "next tuesday", "2025-13-40"} {
		if _, ok := ParseTripDate(in); ok {
			t.Fatalf("ParseTripDate(%q) should fail", in)
		}
	}
}
