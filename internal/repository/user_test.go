package repository

import (
	"strings"
	"testing"
)

func TestTrashUserUpdateSkipsAlreadyTrashed(t *testing.T) {
	stmt := trashUserUpdate(dryRunDB(t), 7).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "trash = 0") {
		t.Errorf("update must only hit untrashed rows, got %q", sql)
	}

	// 重复回收时影响行数为 0，上层据此返回 404
	var boundID bool
	for _, v := range stmt.Vars {
		if v == int64(7) {
			boundID = true
		}
	}
	if !boundID {
		t.Errorf("primary key not bound in %v", stmt.Vars)
	}
}
