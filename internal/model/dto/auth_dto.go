package dto

// ========== Auth 相关 DTO ==========

// LoginRequest 管理端登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginData 登录成功响应
type LoginData struct {
	User         UserProfile `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int         `json:"expires_in"`
}

// RefreshTokenRequest 刷新访问令牌请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenData 刷新访问令牌响应
type RefreshTokenData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// UserProfile 对外的用户画像（登录和员工创建响应共用）
type UserProfile struct {
	ID      int64  `json:"id"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	State   string `json:"state"`
	Address string `json:"address"`
	Role    string `json:"role"`
}
