package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AttendEase/config"
	"AttendEase/internal/cache"
	"AttendEase/internal/model"
	"AttendEase/internal/model/dto"
	"AttendEase/internal/repository"
	"AttendEase/pkg/clock"
	pkgerrors "AttendEase/pkg/errors"
	"AttendEase/pkg/logger"
	"AttendEase/pkg/snowflake"
	"AttendEase/storage/database"
)

const (
	recentCheckInWindowDays = 30
	recentCheckInLimit      = 20

	// 签到/签退锁的 TTL，只需要盖住一次请求的事务
	checkInLockTTL = 10 * time.Second
)

// CheckInService 是考勤对账引擎：签到/签退事件驱动
// check_ins 和 attendances 两张表的成对变更。
type CheckInService struct {
	clk           clock.Clock
	cutoffMinutes int
	fullDayHours  int
}

var (
	checkInService *CheckInService
	checkInOnce    sync.Once
)

func CheckIn() *CheckInService {
	checkInOnce.Do(func() {
		clk, err := clock.New(config.Cfg.AttendanceTimezone)
		if err != nil {
			logger.Logger.Fatal("Failed to load attendance timezone", zap.Error(err))
		}

		cutoff, err := parseCutoff(config.Cfg.LateCutoff)
		if err != nil {
			logger.Logger.Fatal("Failed to parse late cutoff", zap.Error(err))
		}

		checkInService = NewCheckInService(clk, cutoff, config.Cfg.FullDayHours)
	})

	return checkInService
}

// NewCheckInService 构造引擎，时钟显式注入，测试时可固定时间。
func NewCheckInService(clk clock.Clock, cutoffMinutes, fullDayHours int) *CheckInService {
	return &CheckInService{
		clk:           clk,
		cutoffMinutes: cutoffMinutes,
		fullDayHours:  fullDayHours,
	}
}

// parseCutoff 把 HH:MM 解析成当日分钟数
func parseCutoff(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid cutoff %q, expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid cutoff hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid cutoff minute in %q", s)
	}

	return hour*60 + minute, nil
}

// usableUser 取用户并校验考勤可用性（在职且未回收）。
// 走缓存，未命中回源数据库并回填。
func (s *CheckInService) usableUser(ctx context.Context, userID string) (*cache.UserAvailability, error) {
	availability, err := cache.GetUserAvailability(ctx, userID)
	if err != nil {
		// 缓存故障降级为直查
		logger.Logger.Warn("User availability cache unavailable",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	if availability == nil {
		user, err := repository.GetUserByUserID(database.DB().WithContext(ctx), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.UserUnavailable
			}
			return nil, fmt.Errorf("failed to query user: %w", err)
		}

		availability = &cache.UserAvailability{
			UserID:   user.UserID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     string(user.Role),
			Usable:   user.Usable(),
			CachedAt: s.clk.Now().Unix(),
		}

		if err := cache.SetUserAvailability(ctx, userID, availability); err != nil {
			logger.Logger.Warn("Failed to cache user availability",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	if !availability.Usable {
		return nil, pkgerrors.UserUnavailable
	}

	return availability, nil
}

// ProcessCheckIn 处理签到：校验用户可用、当日无未签退记录，
// 按时刻推导 Active/Late，在一个事务里同时落 CheckIn 和当日 Attendance。
func (s *CheckInService) ProcessCheckIn(
	ctx context.Context,
	req dto.CheckInRequest,
) (*dto.CheckInData, error) {
	user, err := s.usableUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	day := clock.DateOf(now)

	// 员工+日历日粒度的分布式锁，读检查和双行写之间不给并发请求留窗口。
	// redis 不可用时放行，部分唯一索引仍然兜底。
	lockKey := lockKeyFor(req.UserID, now)
	acquired, err := cache.TryLock(ctx, lockKey, checkInLockTTL)
	if err != nil {
		logger.Logger.Warn("Check-in lock unavailable, relying on unique index",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
	} else if !acquired {
		return nil, lockDeniedError(true)
	} else {
		defer func() {
			if err := cache.Unlock(ctx, lockKey); err != nil {
				logger.Logger.Warn("Failed to release check-in lock",
					zap.String("user_id", req.UserID),
					zap.Error(err),
				)
			}
		}()
	}

	status := model.DeriveEntryStatus(now, s.cutoffMinutes)

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate check-in id: %w", err)
	}

	checkIn := &model.CheckIn{
		PublicID:    publicID,
		EmployeeID:  user.UserID,
		UserName:    user.Name,
		Email:       user.Email,
		Role:        model.UserRole(user.Role),
		CheckInTime: now,
		CheckInDate: day,
		CheckInInfo: req.CheckInInfo,
		Status:      status,
	}

	attendance := &model.Attendance{
		UserID:             user.UserID,
		AttendanceDate:     day,
		CheckInTime:        now,
		CheckInDescription: model.EntryDescription,
		Status:             status,
	}

	// 两行写在同一个事务里，任一失败全部回滚
	err = database.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := repository.GetOpenCheckInForDay(tx, user.UserID, day, true)
		if err == nil {
			return pkgerrors.AlreadyCheckedIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query open check-in: %w", err)
		}

		if err := repository.CreateCheckIn(tx, checkIn); err != nil {
			return fmt.Errorf("failed to create check-in: %w", err)
		}
		if err := repository.CreateAttendance(tx, attendance); err != nil {
			return fmt.Errorf("failed to create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		var def pkgerrors.Definition
		if errors.As(err, &def) {
			return nil, def
		}
		logger.Logger.Error("Check-in transaction failed",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Logger.Info("Check-in recorded",
		zap.String("user_id", user.UserID),
		zap.String("status", string(status)),
		zap.Time("check_in_time", now),
	)

	return &dto.CheckInData{CheckIn: checkIn}, nil
}

// ProcessCheckOut 处理签退：找到当日未签退记录，按在班时长推导状态，
// 更新 CheckIn，并在同一事务里同步当日 Attendance（汇总行不存在时容忍）。
func (s *CheckInService) ProcessCheckOut(
	ctx context.Context,
	req dto.CheckOutRequest,
) (*dto.CheckOutData, error) {
	user, err := s.usableUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	day := clock.DateOf(now)

	lockKey := lockKeyFor(req.UserID, now)
	acquired, err := cache.TryLock(ctx, lockKey, checkInLockTTL)
	if err != nil {
		logger.Logger.Warn("Check-out lock unavailable",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
	} else if !acquired {
		return nil, lockDeniedError(false)
	} else {
		defer func() {
			if err := cache.Unlock(ctx, lockKey); err != nil {
				logger.Logger.Warn("Failed to release check-out lock",
					zap.String("user_id", req.UserID),
					zap.Error(err),
				)
			}
		}()
	}

	var checkIn *model.CheckIn
	var attendance *model.Attendance

	err = database.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		checkIn, err = repository.GetOpenCheckInForDay(tx, user.UserID, day, true)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.NoOpenCheckIn
			}
			return fmt.Errorf("failed to query open check-in: %w", err)
		}

		status := model.DeriveExitStatus(now.Sub(checkIn.CheckInTime), s.fullDayHours)

		checkIn.CheckOutTime = &now
		checkIn.CheckOutInfo = req.CheckOutInfo
		checkIn.Status = status
		if err := repository.SaveCheckIn(tx, checkIn); err != nil {
			return fmt.Errorf("failed to update check-in: %w", err)
		}

		attendance, err = repository.GetAttendanceByUserAndDate(tx, user.UserID, day)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 汇总行可能由旁路创建或删除，缺失不算失败
				attendance = nil
				return nil
			}
			return fmt.Errorf("failed to query attendance: %w", err)
		}

		attendance.CheckOutTime = &now
		attendance.CheckOutDescription = req.CheckOutInfo
		attendance.Status = status
		if err := repository.SaveAttendance(tx, attendance); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		var def pkgerrors.Definition
		if errors.As(err, &def) {
			return nil, def
		}
		logger.Logger.Error("Check-out transaction failed",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	if attendance == nil {
		logger.Logger.Warn("Check-out without matching attendance row",
			zap.String("user_id", user.UserID),
			zap.Time("day", day),
		)
	}

	logger.Logger.Info("Check-out recorded",
		zap.String("user_id", user.UserID),
		zap.String("status", string(checkIn.Status)),
		zap.Time("check_out_time", now),
	)

	return &dto.CheckOutData{CheckOut: checkIn, Attendance: attendance}, nil
}

// GetRecentCheckIns 查询最近 30 天的签到记录（最多 20 条，时间倒序），
// 并附平均签到/签退时刻和最近一次签退时间。
func (s *CheckInService) GetRecentCheckIns(
	ctx context.Context,
	userID string,
) (*dto.RecentCheckInsData, error) {
	db := database.DB().WithContext(ctx)

	if userID != "" {
		if _, err := repository.GetUserByUserID(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.ValidationFailed
			}
			return nil, fmt.Errorf("failed to query user: %w", err)
		}
	}

	since := s.clk.Now().AddDate(0, 0, -recentCheckInWindowDays)
	checkIns, err := repository.ListRecentCheckIns(db, userID, since, recentCheckInLimit)
	if err != nil {
		logger.Logger.Error("Failed to list recent check-ins",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to list recent check-ins: %w", err)
	}

	if len(checkIns) == 0 {
		return nil, pkgerrors.NoCheckInsFound
	}

	avgIn, avgOut, lastOut := summarizeCheckIns(checkIns, s.clk.Location())

	return &dto.RecentCheckInsData{
		CheckIns:            checkIns,
		AverageCheckInTime:  avgIn,
		AverageCheckOutTime: avgOut,
		LastCheckOutTime:    lastOut,
	}, nil
}

// summarizeCheckIns 计算平均签到/签退时刻（HH:MM:SS）和最近签退时间。
// 平均值取原始 epoch 秒的均值再格式化为当地时刻，跨午夜时结果
// 有偏差，这是沿袭下来的既定口径，不要在这里修。
func summarizeCheckIns(checkIns []*model.CheckIn, loc *time.Location) (avgIn, avgOut, lastOut *string) {
	var totalInSeconds, totalOutSeconds int64
	var inCount, outCount int
	var lastCheckOut *time.Time

	for _, c := range checkIns {
		totalInSeconds += c.CheckInTime.Unix()
		inCount++

		if c.CheckOutTime != nil {
			totalOutSeconds += c.CheckOutTime.Unix()
			outCount++

			if lastCheckOut == nil || c.CheckOutTime.After(*lastCheckOut) {
				lastCheckOut = c.CheckOutTime
			}
		}
	}

	if inCount > 0 {
		v := time.Unix(totalInSeconds/int64(inCount), 0).In(loc).Format("15:04:05")
		avgIn = &v
	}
	if outCount > 0 {
		v := time.Unix(totalOutSeconds/int64(outCount), 0).In(loc).Format("15:04:05")
		avgOut = &v
	}
	if lastCheckOut != nil {
		v := lastCheckOut.In(loc).Format(time.RFC3339)
		lastOut = &v
	}

	return avgIn, avgOut, lastOut
}

func lockKeyFor(userID string, now time.Time) string {
	return "checkin:" + userID + ":" + clock.DateString(now)
}

// lockDeniedError 拿不到“员工+日历日”锁时的业务错误。
// 签到撞锁几乎只会是同一员工的重复签到；签退撞锁是瞬时并发，
// 报 429 让调用方稍后重试，而不是谎报没有未签退记录。
func lockDeniedError(checkingIn bool) pkgerrors.Definition {
	if checkingIn {
		return pkgerrors.AlreadyCheckedIn
	}
	return pkgerrors.TooManyRequests
}
