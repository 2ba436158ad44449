package model

import (
	"testing"
	"time"
)

func TestDeriveEntryStatus(t *testing.T) {
	cutoff := 10 * 60 // 10:00

	tests := []struct {
		name string
		at   time.Time
		want AttendanceStatus
	}{
		{"well before cutoff", time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC), StatusActive},
		{"one minute before", time.Date(2026, 3, 2, 9, 59, 0, 0, time.UTC), StatusActive},
		{"exactly on cutoff", time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), StatusActive},
		{"seconds past cutoff stay on-time", time.Date(2026, 3, 2, 10, 0, 59, 0, time.UTC), StatusActive},
		{"one minute late", time.Date(2026, 3, 2, 10, 1, 0, 0, time.UTC), StatusLate},
		{"afternoon arrival", time.Date(2026, 3, 2, 14, 45, 0, 0, time.UTC), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveEntryStatus(tt.at, cutoff); got != tt.want {
				t.Errorf("DeriveEntryStatus(%v) = %s, want %s", tt.at, got, tt.want)
			}
		})
	}
}

func TestDeriveExitStatus(t *testing.T) {
	fullDay := 8

	tests := []struct {
		name    string
		elapsed time.Duration
		want    AttendanceStatus
	}{
		{"short shift", 30 * time.Minute, StatusHalfDayPresent},
		{"just under full day", 7*time.Hour + 59*time.Minute, StatusHalfDayPresent},
		{"whole hours floor", 7*time.Hour + 59*time.Minute + 59*time.Second, StatusHalfDayPresent},
		{"exactly full day", 8 * time.Hour, StatusActive},
		{"overtime", 11*time.Hour + 15*time.Minute, StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveExitStatus(tt.elapsed, fullDay); got != tt.want {
				t.Errorf("DeriveExitStatus(%v) = %s, want %s", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	now := time.Now()

	c := CheckIn{CheckInTime: now}
	if !c.Open() {
		t.Error("check-in without checkout should be open")
	}

	c.CheckOutTime = &now
	if c.Open() {
		t.Error("check-in with checkout should not be open")
	}
}

func TestAdminActions(t *testing.T) {
	for _, status := range CountedStatuses {
		if !AdminActions[status] {
			t.Errorf("counted status %s should be a valid admin action", status)
		}
	}

	// 引擎推导出的大写状态不在管理端动作集合里
	for _, status := range []AttendanceStatus{StatusActive, StatusLate, StatusHalfDayPresent} {
		if AdminActions[status] {
			t.Errorf("engine status %s should not be a valid admin action", status)
		}
	}
}
