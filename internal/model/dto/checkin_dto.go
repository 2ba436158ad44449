package dto

import "AttendEase/internal/model"

// ========== CheckIn 相关 DTO ==========

// CheckInRequest 签到请求
type CheckInRequest struct {
	UserID      string  `json:"user_id" binding:"required"`
	CheckInInfo *string `json:"check_in_info"`
}

// CheckOutRequest 签退请求
type CheckOutRequest struct {
	UserID       string  `json:"user_id" binding:"required"`
	CheckOutInfo *string `json:"check_out_info"`
}

// CheckInData 签到成功响应
type CheckInData struct {
	CheckIn *model.CheckIn `json:"check_in"`
}

// CheckOutData 签退成功响应。Attendance 可能为 null：
// 当日汇总行不存在属于可容忍的部分成功，不算失败。
type CheckOutData struct {
	CheckOut   *model.CheckIn    `json:"check_out"`
	Attendance *model.Attendance `json:"attendance"`
}

// RecentCheckInsQuery 近期签到查询参数
type RecentCheckInsQuery struct {
	UserID string `query:"user_id"`
}

// RecentCheckInsData 近期签到响应：最近 30 天内最多 20 条，
// 附平均签到/签退时刻和最近一次签退时间。
type RecentCheckInsData struct {
	CheckIns            []*model.CheckIn `json:"check_ins"`
	AverageCheckInTime  *string          `json:"average_check_in_time"`
	AverageCheckOutTime *string          `json:"average_check_out_time"`
	LastCheckOutTime    *string          `json:"last_check_out_time"`
}
