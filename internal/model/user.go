package model

// UserStatus 用户状态枚举
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// UserRole 账号类型
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployee UserRole = "employee"
)

// User 用户模型。UserID 是业务主键（EMPxxx1234），考勤记录都通过它关联。
type User struct {
	BaseModel
	UserID   string     `gorm:"uniqueIndex;type:varchar(32);not null" json:"user_id"`
	Name     string     `gorm:"type:varchar(255);not null" json:"name"`
	Email    string     `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	Password string     `gorm:"type:varchar(255);not null" json:"-"` // bcrypt 哈希，不对外暴露
	Role     UserRole   `gorm:"type:varchar(16);not null;default:'employee'" json:"role"`
	Mobile   string     `gorm:"type:varchar(15)" json:"mobile"`
	Country  string     `gorm:"type:varchar(100)" json:"country"`
	State    string     `gorm:"type:varchar(100)" json:"state"`
	Address  string     `gorm:"type:varchar(255)" json:"address"`
	Status   UserStatus `gorm:"type:varchar(16);not null;default:'active';index:idx_users_status" json:"status"`
	Trash    int        `gorm:"not null;default:0;index:idx_users_trash" json:"trash"` // 软删除标记，1 表示已移入回收站
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// Usable 判断用户是否可参与考勤：在职且未进回收站。
func (u *User) Usable() bool {
	return u.Status == UserStatusActive && u.Trash == 0
}
