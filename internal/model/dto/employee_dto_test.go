package dto

import "testing"

func TestListEmployeesQueryNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query ListEmployeesQuery
		want  ListEmployeesQuery
	}{
		{
			"defaults",
			ListEmployeesQuery{},
			ListEmployeesQuery{SortOrder: "asc", Col: "employees.id", Limit: 10, Page: 1},
		},
		{
			"limit capped at 100",
			ListEmployeesQuery{Limit: 500},
			ListEmployeesQuery{SortOrder: "asc", Col: "employees.id", Limit: 100, Page: 1},
		},
		{
			"limit at cap untouched",
			ListEmployeesQuery{Limit: 100, Page: 2},
			ListEmployeesQuery{SortOrder: "asc", Col: "employees.id", Limit: 100, Page: 2},
		},
		{
			"explicit column kept",
			ListEmployeesQuery{Col: "users.name", SortOrder: "desc"},
			ListEmployeesQuery{Col: "users.name", SortOrder: "desc", Limit: 10, Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			q.Normalize()
			if q != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", q, tt.want)
			}
		})
	}
}
