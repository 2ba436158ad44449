package model

import "time"

// Employee 员工档案，和 User 共享业务主键 user_id。
type Employee struct {
	BaseModel
	UserID      string     `gorm:"uniqueIndex;type:varchar(32);not null" json:"user_id"`
	Position    string     `gorm:"type:varchar(255);not null" json:"position"`
	Designation string     `gorm:"type:varchar(255);not null" json:"designation"`
	Department  string     `gorm:"type:varchar(255)" json:"department"`
	HireDate    time.Time  `gorm:"type:date;not null" json:"hire_date"`
	Status      UserStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
}

// TableName 指定表名
func (Employee) TableName() string {
	return "employees"
}
