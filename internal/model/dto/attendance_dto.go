package dto

import "AttendEase/internal/model"

// ========== Attendance 相关 DTO ==========

// ListAttendanceQuery 考勤列表查询参数
type ListAttendanceQuery struct {
	Status    string `query:"status"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	SortOrder string `query:"sort_order"`
	Col       string `query:"col"`
	Limit     int    `query:"limit"`
	Page      int    `query:"page"`
}

// Normalize 填充默认值。这里刻意不给 limit 设上限
// （员工列表那边限 100，两边行为不一致是沿袭下来的）。
func (q *ListAttendanceQuery) Normalize() {
	if q.SortOrder != "desc" {
		q.SortOrder = "asc"
	}
	if q.Col == "" {
		q.Col = "attendance_date"
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Page <= 0 {
		q.Page = 1
	}
}

// Offset 返回分页偏移
func (q *ListAttendanceQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// AttendanceListData 考勤列表数据
type AttendanceListData struct {
	Records []*model.Attendance `json:"records"`
}

// StatusTotals 各状态聚合计数，键是固定状态枚举
type StatusTotals map[string]int64

// AttendanceActionRequest 管理端状态覆写请求
type AttendanceActionRequest struct {
	Action string `json:"action" binding:"required"`
}
