package service

import (
	"testing"
	"time"

	"AttendEase/internal/model"
	pkgerrors "AttendEase/pkg/errors"
)

func TestParseCutoff(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"10:00", 600, false},
		{"09:30", 570, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"10", 0, true},
		{"", 0, true},
		{"ten:00", 0, true},
	}

	for _, tt := range tests {
		got, err := parseCutoff(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCutoff(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCutoff(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCutoff(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSummarizeCheckIns(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	at := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
	}
	ptr := func(t time.Time) *time.Time { return &t }

	t.Run("averages over mixed checkouts", func(t *testing.T) {
		checkIns := []*model.CheckIn{
			{CheckInTime: at(9, 0), CheckOutTime: ptr(at(17, 0))},
			{CheckInTime: at(10, 0), CheckOutTime: ptr(at(19, 0))},
			{CheckInTime: at(11, 0)}, // 还没签退
		}

		avgIn, avgOut, lastOut := summarizeCheckIns(checkIns, loc)

		if avgIn == nil || *avgIn != "10:00:00" {
			t.Errorf("avgIn = %v, want 10:00:00", avgIn)
		}
		if avgOut == nil || *avgOut != "18:00:00" {
			t.Errorf("avgOut = %v, want 18:00:00", avgOut)
		}
		if lastOut == nil || *lastOut != at(19, 0).Format(time.RFC3339) {
			t.Errorf("lastOut = %v, want %s", lastOut, at(19, 0).Format(time.RFC3339))
		}
	})

	t.Run("no checkouts yet", func(t *testing.T) {
		checkIns := []*model.CheckIn{
			{CheckInTime: at(9, 15)},
			{CheckInTime: at(9, 45)},
		}

		avgIn, avgOut, lastOut := summarizeCheckIns(checkIns, loc)

		if avgIn == nil || *avgIn != "09:30:00" {
			t.Errorf("avgIn = %v, want 09:30:00", avgIn)
		}
		if avgOut != nil {
			t.Errorf("avgOut = %v, want nil", *avgOut)
		}
		if lastOut != nil {
			t.Errorf("lastOut = %v, want nil", *lastOut)
		}
	})

	t.Run("latest checkout wins regardless of order", func(t *testing.T) {
		checkIns := []*model.CheckIn{
			{CheckInTime: at(9, 0), CheckOutTime: ptr(at(20, 0))},
			{CheckInTime: at(9, 0), CheckOutTime: ptr(at(17, 0))},
		}

		_, _, lastOut := summarizeCheckIns(checkIns, loc)

		if lastOut == nil || *lastOut != at(20, 0).Format(time.RFC3339) {
			t.Errorf("lastOut = %v, want %s", lastOut, at(20, 0).Format(time.RFC3339))
		}
	})
}

func TestLockKeyFor(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	got := lockKeyFor("EMPJoh1234", now)
	want := "checkin:EMPJoh1234:2026-03-02"
	if got != want {
		t.Errorf("lockKeyFor = %q, want %q", got, want)
	}
}

func TestLockDeniedError(t *testing.T) {
	if got := lockDeniedError(true); got != pkgerrors.AlreadyCheckedIn {
		t.Errorf("check-in contention = %v, want %v", got, pkgerrors.AlreadyCheckedIn)
	}
	// 签退撞锁是并发重试场景，不能伪装成“没有未签退记录”。
	if got := lockDeniedError(false); got != pkgerrors.TooManyRequests {
		t.Errorf("check-out contention = %v, want %v", got, pkgerrors.TooManyRequests)
	}
}
