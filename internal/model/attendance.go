package model

import "time"

// EntryDescription 是签到成功时写入考勤单的固定描述。
const EntryDescription = "Entry Successful"

// Attendance 每日考勤汇总，一人一天一行。随首次签到创建、随签退更新；
// 管理端可以绕过引擎直接改状态或删除，这条旁路不会回写 CheckIn。
type Attendance struct {
	BaseModel
	UserID              string           `gorm:"type:varchar(32);not null;index:idx_attendances_user_date" json:"user_id"`
	AttendanceDate      time.Time        `gorm:"type:date;not null;index:idx_attendances_user_date" json:"attendance_date"`
	CheckInTime         time.Time        `gorm:"type:timestamptz;not null" json:"check_in_time"`
	CheckInDescription  string           `gorm:"type:text" json:"check_in_description"`
	CheckOutTime        *time.Time       `gorm:"type:timestamptz" json:"check_out_time"`
	CheckOutDescription *string          `gorm:"type:text" json:"check_out_description"`
	Status              AttendanceStatus `gorm:"type:varchar(16);not null;index:idx_attendances_status" json:"status"`
}

// TableName 指定表名
func (Attendance) TableName() string {
	return "attendances"
}
