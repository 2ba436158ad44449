package repository

import (
	"gorm.io/gorm"

	"AttendEase/internal/model"
)

// 查询函数都接收 *gorm.DB，service 层传入带 ctx 的连接或事务句柄。

// GetUserByUserID 根据业务 user_id 查询用户
func GetUserByUserID(db *gorm.DB, userID string) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 根据邮箱查询用户
func GetUserByEmail(db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser 创建用户
func CreateUser(db *gorm.DB, user *model.User) error {
	return db.Create(user).Error
}

// trashUserUpdate 只命中 trash = 0 的行，重复回收不算命中
// （Postgres 会把同值更新也算进影响行数，所以条件要落在 WHERE 上）。
func trashUserUpdate(db *gorm.DB, id int64) *gorm.DB {
	return db.Model(&model.User{}).Where("id = ? AND trash = 0", id).Update("trash", 1)
}

// MarkUserTrashed 按数据库主键置 trash 标记，返回影响行数
func MarkUserTrashed(db *gorm.DB, id int64) (int64, error) {
	result := trashUserUpdate(db, id)
	return result.RowsAffected, result.Error
}
