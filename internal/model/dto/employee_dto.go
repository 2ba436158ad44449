package dto

import "time"

// ========== Employee 相关 DTO ==========

// CreateEmployeeRequest 新建员工请求
type CreateEmployeeRequest struct {
	UserName    string `json:"user_name" binding:"required,max=255"`
	UserEmail   string `json:"user_email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,max=15"`
	Country     string `json:"country" binding:"required,max=100"`
	State       string `json:"state" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=255"`
	Designation string `json:"designation" binding:"required,max=255"`
	Position    string `json:"position" binding:"required,max=255"`
	AccountType string `json:"account_type" binding:"required,oneof=admin employee"`
}

// CreateEmployeeData 新建员工响应
type CreateEmployeeData struct {
	User     UserProfile     `json:"user"`
	Employee EmployeeProfile `json:"employee"`
}

// EmployeeProfile 员工档案画像
type EmployeeProfile struct {
	UserID      string    `json:"user_id"`
	Position    string    `json:"position"`
	Designation string    `json:"designation"`
	Department  string    `json:"department"`
	HireDate    time.Time `json:"hire_date"`
	Status      string    `json:"status"`
}

// ListEmployeesQuery 员工列表查询参数
type ListEmployeesQuery struct {
	Status    string `query:"status"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	SortOrder string `query:"sort_order"`
	Col       string `query:"col"`
	Limit     int    `query:"limit"`
	Page      int    `query:"page"`
}

// Normalize 填充默认值，limit 上限 100。
func (q *ListEmployeesQuery) Normalize() {
	if q.SortOrder != "desc" {
		q.SortOrder = "asc"
	}
	if q.Col == "" {
		q.Col = "employees.id"
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Page <= 0 {
		q.Page = 1
	}
}

// Offset 返回分页偏移
func (q *ListEmployeesQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// EmployeeRow 员工列表行（users ⋈ employees）
type EmployeeRow struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	Position    string    `json:"position"`
	Designation string    `json:"designation"`
	Department  string    `json:"department"`
	HireDate    time.Time `json:"hire_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
