package repository

import (
	"time"

	"gorm.io/gorm"

	"AttendEase/internal/model"
)

// AttendanceFilter 列表/聚合共用的过滤条件
type AttendanceFilter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// attendanceBase 构造基础查询：考勤行联回收站之外的用户。
func attendanceBase(db *gorm.DB, filter AttendanceFilter) *gorm.DB {
	q := db.Model(&model.Attendance{}).
		Joins("JOIN users ON users.user_id = attendances.user_id").
		Where("users.trash = 0 AND users.deleted_at IS NULL")

	if filter.Status != "" {
		q = q.Where("attendances.status = ?", filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("attendances.attendance_date >= ? AND attendances.attendance_date <= ?",
			*filter.StartDate, *filter.EndDate)
	}

	return q
}

// CountAttendance 统计满足过滤条件的总行数
func CountAttendance(db *gorm.DB, filter AttendanceFilter) (int64, error) {
	var total int64
	err := attendanceBase(db, filter).Count(&total).Error
	return total, err
}

// ListAttendance 分页查询考勤记录，orderExpr 由调用方按白名单拼好
func ListAttendance(db *gorm.DB, filter AttendanceFilter, orderExpr string, limit, offset int) ([]*model.Attendance, error) {
	var records []*model.Attendance
	err := attendanceBase(db, filter).
		Select("attendances.*").
		Order(orderExpr).
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountAttendanceByStatus 按单个状态统计（日期过滤与列表一致，状态独立）
func CountAttendanceByStatus(db *gorm.DB, status model.AttendanceStatus, startDate, endDate *time.Time) (int64, error) {
	filter := AttendanceFilter{
		Status:    string(status),
		StartDate: startDate,
		EndDate:   endDate,
	}

	var count int64
	err := attendanceBase(db, filter).Count(&count).Error
	return count, err
}

// CreateAttendance 创建考勤汇总行
func CreateAttendance(db *gorm.DB, attendance *model.Attendance) error {
	return db.Create(attendance).Error
}

// GetAttendanceByUserAndDate 查询某用户某日历日的考勤行
func GetAttendanceByUserAndDate(db *gorm.DB, userID string, day time.Time) (*model.Attendance, error) {
	var attendance model.Attendance
	err := db.Where("user_id = ? AND attendance_date = ?", userID, day).First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// GetAttendanceByID 按主键查询考勤行
func GetAttendanceByID(db *gorm.DB, id int64) (*model.Attendance, error) {
	var attendance model.Attendance
	if err := db.First(&attendance, id).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

// SaveAttendance 保存考勤行更新
func SaveAttendance(db *gorm.DB, attendance *model.Attendance) error {
	return db.Save(attendance).Error
}

// HardDeleteAttendance 物理删除考勤行，返回影响行数。
// 管理端删除是硬删除，绕过 gorm 的软删除。
func HardDeleteAttendance(db *gorm.DB, id int64) (int64, error) {
	result := db.Unscoped().Delete(&model.Attendance{}, id)
	return result.RowsAffected, result.Error
}
