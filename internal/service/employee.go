package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AttendEase/config"
	"AttendEase/internal/cache"
	"AttendEase/internal/model"
	"AttendEase/internal/model/dto"
	"AttendEase/internal/repository"
	pkgerrors "AttendEase/pkg/errors"
	"AttendEase/pkg/logger"
	"AttendEase/storage/database"
	"AttendEase/utils"
)

// EmployeeService 员工目录管理：建档、列表、回收站。
type EmployeeService struct{}

var (
	employeeService *EmployeeService
	employeeOnce    sync.Once
)

func Employee() *EmployeeService {
	employeeOnce.Do(func() {
		employeeService = &EmployeeService{}
	})
	return employeeService
}

// 员工列表排序列白名单（原样保留 users/employees 前缀写法）
var employeeSortColumns = map[string]string{
	"employees.id":         "employees.id",
	"users.name":           "users.name",
	"users.email":          "users.email",
	"employees.position":   "employees.position",
	"employees.department": "employees.department",
	"employees.created_at": "employees.created_at",
	"employees.status":     "employees.status",
}

// GenerateEmployeeID 生成业务 user_id："EMP" + 姓名前三个字符 + 随机四位数。
// 不做碰撞检测（沿袭行为）；users.user_id 的唯一索引会把撞上的
// 请求打回成存储错误而不是悄悄覆盖。
func GenerateEmployeeID(name string) string {
	prefix := name
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("EMP%s%04d", prefix, 1000+rand.Intn(9000))
}

// Create 创建员工：User + Employee 两行在一个事务里落库，
// 密码用占位密码的 bcrypt 哈希。
func (s *EmployeeService) Create(
	ctx context.Context,
	req dto.CreateEmployeeRequest,
) (*dto.CreateEmployeeData, error) {
	db := database.DB().WithContext(ctx)

	if _, err := repository.GetUserByEmail(db, req.UserEmail); err == nil {
		return nil, pkgerrors.EmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	hashed, err := utils.HashPassword(config.Cfg.DefaultEmployeePassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	userID := GenerateEmployeeID(req.UserName)
	now := time.Now()

	user := &model.User{
		UserID:   userID,
		Name:     req.UserName,
		Email:    req.UserEmail,
		Password: hashed,
		Role:     model.UserRole(req.AccountType),
		Mobile:   req.Phone,
		Country:  req.Country,
		State:    req.State,
		Address:  req.Address,
		Status:   model.UserStatusActive,
		Trash:    0,
	}

	employee := &model.Employee{
		UserID:      userID,
		Position:    req.Position,
		Designation: req.Designation,
		HireDate:    now,
		Status:      model.UserStatusActive,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := repository.CreateUser(tx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := repository.CreateEmployee(tx, employee); err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Logger.Error("Employee creation failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Logger.Info("Employee created",
		zap.String("user_id", userID),
		zap.String("role", req.AccountType),
	)

	return &dto.CreateEmployeeData{
		User: dto.UserProfile{
			ID:      user.ID,
			UserID:  user.UserID,
			Name:    user.Name,
			Email:   user.Email,
			Phone:   user.Mobile,
			Country: user.Country,
			State:   user.State,
			Address: user.Address,
			Role:    string(user.Role),
		},
		Employee: dto.EmployeeProfile{
			UserID:      employee.UserID,
			Position:    employee.Position,
			Designation: employee.Designation,
			Department:  employee.Department,
			HireDate:    employee.HireDate,
			Status:      string(employee.Status),
		},
	}, nil
}

// List 分页查询员工（users ⋈ employees，排除回收站用户），limit 上限 100。
func (s *EmployeeService) List(
	ctx context.Context,
	query dto.ListEmployeesQuery,
) ([]*dto.EmployeeRow, int64, error) {
	query.Normalize()

	mapped, ok := employeeSortColumns[query.Col]
	if !ok {
		return nil, 0, pkgerrors.InvalidSortColumn
	}
	orderExpr := mapped + " " + query.SortOrder

	startDate, endDate, err := parseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, 0, err
	}

	db := database.DB().WithContext(ctx)
	filter := repository.EmployeeFilter{
		Status:    query.Status,
		StartDate: startDate,
		EndDate:   endDate,
	}

	total, err := repository.CountEmployees(db, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	rows, err := repository.ListEmployees(db, filter, orderExpr, query.Limit, query.Offset())
	if err != nil {
		logger.Logger.Error("Failed to list employees", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	return rows, total, nil
}

// Trash 把用户移入回收站（软删除标记），之后该用户被所有
// 考勤操作和列表排除。不物理删除任何行。
func (s *EmployeeService) Trash(ctx context.Context, id int64) error {
	db := database.DB().WithContext(ctx)

	// 先取业务 user_id，trash 之后要主动失效可用性缓存
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.EmployeeNotFound
		}
		return fmt.Errorf("failed to query user: %w", err)
	}

	affected, err := repository.MarkUserTrashed(db, id)
	if err != nil {
		logger.Logger.Error("Failed to update trash status",
			zap.Int64("id", id),
			zap.Error(err),
		)
		return fmt.Errorf("failed to update trash status: %w", err)
	}
	if affected == 0 {
		return pkgerrors.EmployeeNotFound
	}

	if err := cache.InvalidateUserAvailability(ctx, user.UserID); err != nil {
		logger.Logger.Warn("Failed to invalidate user availability cache",
			zap.String("user_id", user.UserID),
			zap.Error(err),
		)
	}

	logger.Logger.Info("User trashed",
		zap.Int64("id", id),
		zap.String("user_id", user.UserID),
	)

	return nil
}
