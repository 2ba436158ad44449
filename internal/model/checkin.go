package model

import "time"

// AttendanceStatus 签到/考勤状态。两套取值并存：
// 引擎推导出 Active/Late/HalfDayPresent，管理端覆写用小写枚举
// （present/absent/late/fullday/halfday），统计也按小写枚举聚合。
type AttendanceStatus string

const (
	StatusActive         AttendanceStatus = "Active"
	StatusLate           AttendanceStatus = "Late"
	StatusHalfDayPresent AttendanceStatus = "HalfDayPresent"

	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusFullDay AttendanceStatus = "fullday"
	StatusHalfDay AttendanceStatus = "halfday"
	StatusLateTag AttendanceStatus = "late"
)

// AdminActions 是管理端允许直接覆写的状态集合。
var AdminActions = map[AttendanceStatus]bool{
	StatusPresent: true,
	StatusAbsent:  true,
	StatusLateTag: true,
	StatusFullDay: true,
	StatusHalfDay: true,
}

// CountedStatuses 是列表接口按状态聚合计数的固定枚举顺序。
var CountedStatuses = []AttendanceStatus{
	StatusAbsent,
	StatusHalfDay,
	StatusFullDay,
	StatusLateTag,
	StatusPresent,
}

// CheckIn 签到事件日志。签到时创建，签退时更新一次，正常流程不删除。
// CheckInDate 冗余存日历日，支撑 (employee_id, check_in_date) 上
// 针对未签退记录的部分唯一索引。
type CheckIn struct {
	BaseModel
	PublicID     int64            `gorm:"uniqueIndex;not null" json:"public_id"`
	EmployeeID   string           `gorm:"type:varchar(32);not null;index:idx_check_ins_employee_date" json:"employee_id"`
	UserName     string           `gorm:"type:varchar(255);not null" json:"user_name"`
	Email        string           `gorm:"type:varchar(255);not null" json:"email"`
	Role         UserRole         `gorm:"type:varchar(16);not null" json:"role"`
	CheckInTime  time.Time        `gorm:"type:timestamptz;not null" json:"check_in_time"`
	CheckInDate  time.Time        `gorm:"type:date;not null;index:idx_check_ins_employee_date" json:"check_in_date"`
	CheckInInfo  *string          `gorm:"type:text" json:"check_in_info"`
	CheckOutTime *time.Time       `gorm:"type:timestamptz" json:"check_out_time"`
	CheckOutInfo *string          `gorm:"type:text" json:"check_out_info"`
	Status       AttendanceStatus `gorm:"type:varchar(16);not null" json:"status"`
}

// TableName 指定表名
func (CheckIn) TableName() string {
	return "check_ins"
}

// Open 表示员工仍在班上（未签退）。
func (c *CheckIn) Open() bool {
	return c.CheckOutTime == nil
}

// DeriveEntryStatus 按签到时刻推导状态。cutoffMinutes 是迟到分界
// （分钟数，10:00 即 600）。沿用整分比较：10:00:59 仍算准点，
// 10:01 起算迟到。
func DeriveEntryStatus(t time.Time, cutoffMinutes int) AttendanceStatus {
	minutes := t.Hour()*60 + t.Minute()
	if minutes > cutoffMinutes {
		return StatusLate
	}
	return StatusActive
}

// DeriveExitStatus 按在班时长推导签退状态。时长向下取整到小时：
// 7h59m 算半天，满 8h 整算全勤。
func DeriveExitStatus(elapsed time.Duration, fullDayHours int) AttendanceStatus {
	if int(elapsed.Hours()) < fullDayHours {
		return StatusHalfDayPresent
	}
	return StatusActive
}
