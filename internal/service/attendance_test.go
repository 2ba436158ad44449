package service

import (
	"errors"
	"testing"
	"time"

	pkgerrors "AttendEase/pkg/errors"
)

func TestAttendanceOrderExpr(t *testing.T) {
	tests := []struct {
		col     string
		order   string
		want    string
		wantErr bool
	}{
		{"attendance_date", "asc", "attendances.attendance_date asc", false},
		{"attendance_date", "desc", "attendances.attendance_date desc", false},
		{"status", "bogus", "attendances.status asc", false}, // 非 desc 一律回落 asc
		{"id", "asc", "attendances.id asc", false},
		{"users.name", "asc", "", true},
		{"attendance_date; DROP TABLE users", "asc", "", true},
		{"", "asc", "", true},
	}

	for _, tt := range tests {
		got, err := attendanceOrderExpr(tt.col, tt.order)
		if tt.wantErr {
			if !errors.Is(err, pkgerrors.InvalidSortColumn) {
				t.Errorf("attendanceOrderExpr(%q) error = %v, want InvalidSortColumn", tt.col, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("attendanceOrderExpr(%q) unexpected error: %v", tt.col, err)
			continue
		}
		if got != tt.want {
			t.Errorf("attendanceOrderExpr(%q, %q) = %q, want %q", tt.col, tt.order, got, tt.want)
		}
	}
}

func TestParseDateRange(t *testing.T) {
	t.Run("both missing", func(t *testing.T) {
		start, end, err := parseDateRange("", "")
		if err != nil || start != nil || end != nil {
			t.Errorf("empty range should be (nil, nil, nil), got (%v, %v, %v)", start, end, err)
		}
	})

	t.Run("one missing disables filter", func(t *testing.T) {
		start, end, err := parseDateRange("2026-03-01", "")
		if err != nil || start != nil || end != nil {
			t.Errorf("partial range should be (nil, nil, nil), got (%v, %v, %v)", start, end, err)
		}
	})

	t.Run("valid range", func(t *testing.T) {
		start, end, err := parseDateRange("2026-03-01", "2026-03-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start == nil || !start.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("start = %v", start)
		}
		if end == nil || !end.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("end = %v", end)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		_, _, err := parseDateRange("03/01/2026", "2026-03-31")
		if !errors.Is(err, pkgerrors.ValidationFailed) {
			t.Errorf("error = %v, want ValidationFailed", err)
		}
	})
}
