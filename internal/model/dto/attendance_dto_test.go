package dto

import "testing"

func TestListAttendanceQueryNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query ListAttendanceQuery
		want  ListAttendanceQuery
	}{
		{
			"defaults",
			ListAttendanceQuery{},
			ListAttendanceQuery{SortOrder: "asc", Col: "attendance_date", Limit: 10, Page: 1},
		},
		{
			"desc preserved",
			ListAttendanceQuery{SortOrder: "desc", Col: "status", Limit: 25, Page: 3},
			ListAttendanceQuery{SortOrder: "desc", Col: "status", Limit: 25, Page: 3},
		},
		{
			"unknown order falls back to asc",
			ListAttendanceQuery{SortOrder: "sideways"},
			ListAttendanceQuery{SortOrder: "asc", Col: "attendance_date", Limit: 10, Page: 1},
		},
		{
			"negative paging reset",
			ListAttendanceQuery{Limit: -5, Page: -2},
			ListAttendanceQuery{SortOrder: "asc", Col: "attendance_date", Limit: 10, Page: 1},
		},
		{
			// 这边刻意不设 limit 上限
			"huge limit untouched",
			ListAttendanceQuery{Limit: 100000},
			ListAttendanceQuery{SortOrder: "asc", Col: "attendance_date", Limit: 100000, Page: 1},
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

func TestListAttendanceQueryOffset(t *testing.T) {
	tests := []struct {
		limit, page, want int
	}{
		{10, 1, 0},
		{10, 2, 10},
		{25, 4, 75},
	}

	for _, tt := range tests {
		q := ListAttendanceQuery{Limit: tt.limit, Page: tt.page}
		if got := q.Offset(); got != tt.want {
			t.Errorf("Offset(limit=%d, page=%d) = %d, want %d", tt.limit, tt.page, got, tt.want)
		}
	}
}
