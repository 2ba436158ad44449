package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AttendEase/internal/model"
	"AttendEase/internal/model/dto"
	"AttendEase/internal/repository"
	pkgerrors "AttendEase/pkg/errors"
	"AttendEase/pkg/logger"
	"AttendEase/storage/database"
)

// AttendanceService 负责考勤记录的查询和管理端旁路
// （状态覆写、删除——不经过对账引擎，也不回写 CheckIn）。
type AttendanceService struct{}

var (
	attendanceService *AttendanceService
	attendanceOnce    sync.Once
)

func Attendance() *AttendanceService {
	attendanceOnce.Do(func() {
		attendanceService = &AttendanceService{}
	})
	return attendanceService
}

// 排序列白名单，防止把查询参数直接拼进 ORDER BY
var attendanceSortColumns = map[string]string{
	"id":              "attendances.id",
	"user_id":         "attendances.user_id",
	"attendance_date": "attendances.attendance_date",
	"check_in_time":   "attendances.check_in_time",
	"check_out_time":  "attendances.check_out_time",
	"status":          "attendances.status",
	"created_at":      "attendances.created_at",
	"updated_at":      "attendances.updated_at",
}

// OrderExpr 把 (col, order) 规整成白名单内的 ORDER BY 表达式
func attendanceOrderExpr(col, order string) (string, error) {
	mapped, ok := attendanceSortColumns[col]
	if !ok {
		return "", pkgerrors.InvalidSortColumn
	}
	if order != "desc" {
		order = "asc"
	}
	return mapped + " " + order, nil
}

// parseDateRange 解析 startDate/endDate，两者都给才生效
func parseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	if startDate == "" || endDate == "" {
		return nil, nil, nil
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, nil, pkgerrors.ValidationFailed
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, nil, pkgerrors.ValidationFailed
	}

	return &start, &end, nil
}

// List 分页查询考勤记录（仅联回收站之外的用户），并在同一日期
// 过滤下按固定状态枚举逐个统计。状态计数独立于列表自身的
// status 过滤和分页。
func (s *AttendanceService) List(
	ctx context.Context,
	query dto.ListAttendanceQuery,
) ([]*model.Attendance, int64, dto.StatusTotals, error) {
	query.Normalize()

	orderExpr, err := attendanceOrderExpr(query.Col, query.SortOrder)
	if err != nil {
		return nil, 0, nil, err
	}

	startDate, endDate, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, 0, nil, err
	}

	db := database.DB().WithContext(ctx)
	filter := repository.AttendanceFilter{
		Status:    query.Status,
		StartDate: startDate,
		EndDate:   endDate,
	}

	total, err := repository.CountAttendance(db, filter)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to count attendance: %w", err)
	}

	records, err := repository.ListAttendance(db, filter, orderExpr, query.Limit, query.Offset())
	if err != nil {
		logger.Logger.Error("Failed to list attendance",
			zap.String("col", query.Col),
			zap.Error(err),
		)
		return nil, 0, nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	totals := make(dto.StatusTotals, len(model.CountedStatuses))
	for _, status := range model.CountedStatuses {
		count, err := repository.CountAttendanceByStatus(db, status, startDate, endDate)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("failed to count status %s: %w", status, err)
		}
		totals[string(status)] = count
	}

	return records, total, totals, nil
}

// SetStatus 管理端直接覆写考勤状态。这是刻意的旁路：
// 不碰同一天的 CheckIn，对账引擎也不会把两边重新同步。
func (s *AttendanceService) SetStatus(
	ctx context.Context,
	attendanceID int64,
	action string,
) (*model.Attendance, error) {
	if !model.AdminActions[model.AttendanceStatus(action)] {
		return nil, pkgerrors.InvalidAction
	}

	db := database.DB().WithContext(ctx)

	attendance, err := repository.GetAttendanceByID(db, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.AttendanceNotFound
		}
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}

	attendance.Status = model.AttendanceStatus(action)
	if err := repository.SaveAttendance(db, attendance); err != nil {
		logger.Logger.Error("Failed to override attendance status",
			zap.Int64("attendance_id", attendanceID),
			zap.String("action", action),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}

	logger.Logger.Info("Attendance status overridden",
		zap.Int64("attendance_id", attendanceID),
		zap.String("action", action),
	)

	return attendance, nil
}

// Delete 物理删除考勤行，同样绕过对账引擎。
func (s *AttendanceService) Delete(ctx context.Context, attendanceID int64) error {
	db := database.DB().WithContext(ctx)

	affected, err := repository.HardDeleteAttendance(db, attendanceID)
	if err != nil {
		logger.Logger.Error("Failed to delete attendance",
			zap.Int64("attendance_id", attendanceID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if affected == 0 {
		return pkgerrors.AttendanceNotFound
	}

	logger.Logger.Info("Attendance record deleted",
		zap.Int64("attendance_id", attendanceID),
	)

	return nil
}
