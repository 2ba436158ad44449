package database

import (
	"AttendEase/internal/model"
	"AttendEase/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate 运行数据库迁移，创建所有表
func Migrate() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	// 迁移所有模型
	err := db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.CheckIn{},
		&model.Attendance{},
	)

	if err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	// 同一员工同一天最多一条未签退记录。AutoMigrate 建不了部分索引，
	// 这条约束是防止并发签到穿过读检查的最后一道闸。
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_check_ins_open_per_day
		ON check_ins (employee_id, check_in_date)
		WHERE check_out_time IS NULL AND deleted_at IS NULL
	`).Error
	if err != nil {
		logger.Logger.Error("Failed to create open check-in unique index", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}
