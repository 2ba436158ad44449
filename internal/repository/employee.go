package repository

import (
	"time"

	"gorm.io/gorm"

	"AttendEase/internal/model"
	"AttendEase/internal/model/dto"
)

// EmployeeFilter 员工列表过滤条件
type EmployeeFilter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

func employeeBase(db *gorm.DB, filter EmployeeFilter) *gorm.DB {
	q := db.Model(&model.Employee{}).
		Joins("JOIN users ON users.user_id = employees.user_id").
		Where("users.trash = 0 AND users.deleted_at IS NULL")

	if filter.Status != "" {
		q = q.Where("employees.status = ?", filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("employees.created_at BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}

	return q
}

// CountEmployees 统计满足过滤条件的员工数
func CountEmployees(db *gorm.DB, filter EmployeeFilter) (int64, error) {
	var total int64
	err := employeeBase(db, filter).Count(&total).Error
	return total, err
}

// ListEmployees 分页查询员工行（users ⋈ employees）
func ListEmployees(db *gorm.DB, filter EmployeeFilter, orderExpr string, limit, offset int) ([]*dto.EmployeeRow, error) {
	var rows []*dto.EmployeeRow
	err := employeeBase(db, filter).
		Select("employees.id, employees.user_id, users.name AS user_name, users.email AS user_email, " +
			"employees.position, employees.designation, employees.department, employees.hire_date, " +
			"employees.status, employees.created_at").
		Order(orderExpr).
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateEmployee 创建员工档案
func CreateEmployee(db *gorm.DB, employee *model.Employee) error {
	return db.Create(employee).Error
}
