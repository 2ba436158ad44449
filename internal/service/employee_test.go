package service

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateEmployeeID(t *testing.T) {
	pattern := regexp.MustCompile(`^EMP.{0,3}\d{4}$`)

	tests := []struct {
		name       string
		wantPrefix string
	}{
		{"Johnathan", "EMPJoh"},
		{"Ada", "EMPAda"},
		{"Li", "EMPLi"},
		{"", "EMP"},
	}

	for _, tt := range tests {
		got := GenerateEmployeeID(tt.name)
		if !strings.HasPrefix(got, tt.wantPrefix) {
			t.Errorf("GenerateEmployeeID(%q) = %q, want prefix %q", tt.name, got, tt.wantPrefix)
		}
		if !pattern.MatchString(got) {
			t.Errorf("GenerateEmployeeID(%q) = %q, does not match %s", tt.name, got, pattern)
		}
	}
}

func TestGenerateEmployeeIDRandomSuffix(t *testing.T) {
	// 随机四位数落在 1000~9999
	for i := 0; i < 50; i++ {
		got := GenerateEmployeeID("Marie")
		suffix := got[len(got)-4:]
		if suffix < "1000" || suffix > "9999" {
			t.Fatalf("GenerateEmployeeID suffix %q out of range", suffix)
		}
	}
}

func TestEmployeeSortColumns(t *testing.T) {
	// 白名单键值一一对应，防止映射里混进未加前缀的裸列名
	for key, mapped := range employeeSortColumns {
		if key != mapped {
			t.Errorf("employeeSortColumns[%q] = %q, expected identity mapping", key, mapped)
		}
		if !strings.Contains(mapped, ".") {
			t.Errorf("column %q is not table-qualified", mapped)
		}
	}

	if _, ok := employeeSortColumns["users.password"]; ok {
		t.Error("users.password must never be sortable")
	}
}
