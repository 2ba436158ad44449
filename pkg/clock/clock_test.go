package clock

import (
	"testing"
	"time"
)

func TestNewRejectsUnknownZone(t *testing.T) {
	if _, err := New("Mars/Olympus"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestFixedReportsGivenTime(t *testing.T) {
	want := time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)
	c := Fixed(want)

	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
	if c.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", c.Location())
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 10, 1, 23, 59, 59, 0, loc)

	got := DateOf(in)
	want := time.Date(2024, 10, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("DateOf(%v) = %v, want %v", in, got, want)
	}
	if got.Location() != loc {
		t.Errorf("DateOf changed location to %v", got.Location())
	}
}

func TestDateString(t *testing.T) {
	in := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	if got := DateString(in); got != "2024-02-03" {
		t.Errorf("DateString = %q, want 2024-02-03", got)
	}
}
