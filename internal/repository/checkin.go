package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"AttendEase/internal/model"
)

// GetOpenCheckInForDay 查询某员工某日历日未签退的记录。
// 事务内调用时带 FOR UPDATE 行锁，守住“先查后写”的窗口。
func GetOpenCheckInForDay(db *gorm.DB, employeeID string, day time.Time, forUpdate bool) (*model.CheckIn, error) {
	q := db.Where("employee_id = ? AND check_in_date = ? AND check_out_time IS NULL", employeeID, day)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var checkIn model.CheckIn
	if err := q.First(&checkIn).Error; err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// CreateCheckIn 创建签到记录
func CreateCheckIn(db *gorm.DB, checkIn *model.CheckIn) error {
	return db.Create(checkIn).Error
}

// SaveCheckIn 保存签退字段更新
func SaveCheckIn(db *gorm.DB, checkIn *model.CheckIn) error {
	return db.Save(checkIn).Error
}

// recentCheckInsQuery 构造近期签到查询。userID 为空时不按员工过滤，
// 返回全员记录。
func recentCheckInsQuery(db *gorm.DB, userID string, since time.Time, limit int) *gorm.DB {
	q := db.Where("check_in_time >= ?", since).Order("check_in_time DESC").Limit(limit)
	if userID != "" {
		q = q.Where("employee_id = ?", userID)
	}
	return q
}

// ListRecentCheckIns 查询 since 之后的签到记录，时间倒序，最多 limit 条。
func ListRecentCheckIns(db *gorm.DB, userID string, since time.Time, limit int) ([]*model.CheckIn, error) {
	var checkIns []*model.CheckIn
	if err := recentCheckInsQuery(db, userID, since, limit).Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}
