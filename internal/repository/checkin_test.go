package repository

import (
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"AttendEase/internal/model"
)

// dryRunDB 返回只构造 SQL、不连库的 gorm 实例
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db
}

func TestRecentCheckInsQuery(t *testing.T) {
	since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty user id keeps listing unfiltered", func(t *testing.T) {
		var out []*model.CheckIn
		stmt := recentCheckInsQuery(dryRunDB(t), "", since, 20).Find(&out).Statement

		sql := stmt.SQL.String()
		if strings.Contains(sql, "employee_id") {
			t.Errorf("unfiltered listing must not constrain employee_id, got %q", sql)
		}
		if !strings.Contains(sql, "check_in_time >=") {
			t.Errorf("window filter missing from %q", sql)
		}
	})

	t.Run("user id narrows to one employee", func(t *testing.T) {
		var out []*model.CheckIn
		stmt := recentCheckInsQuery(dryRunDB(t), "EMPJoh1234", since, 20).Find(&out).Statement

		sql := stmt.SQL.String()
		if !strings.Contains(sql, "employee_id") {
			t.Errorf("employee filter missing from %q", sql)
		}

		var bound bool
		for _, v := range stmt.Vars {
			if v == "EMPJoh1234" {
				bound = true
			}
		}
		if !bound {
			t.Errorf("user id not bound in %v", stmt.Vars)
		}
	})
}
