package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AttendEase/internal/model/dto"
	"AttendEase/internal/repository"
	pkgerrors "AttendEase/pkg/errors"
	"AttendEase/pkg/logger"
	"AttendEase/pkg/token"
	"AttendEase/storage/database"
	"AttendEase/utils"
)

// AuthService 登录换取 token。
type AuthService struct{}

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

// Login 校验邮箱+密码，发放 access/refresh token 对。
// 找不到用户和密码不对返回同一个错误，不泄露账号是否存在。
func (s *AuthService) Login(
	ctx context.Context,
	req dto.LoginRequest,
) (*dto.LoginData, error) {
	db := database.DB().WithContext(ctx)

	user, err := repository.GetUserByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.InvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, pkgerrors.InvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(user.UserID)
	if err != nil {
		logger.Logger.Error("Failed to generate token pair",
			zap.String("user_id", user.UserID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	logger.Logger.Info("Login successful",
		zap.String("user_id", user.UserID),
	)

	return &dto.LoginData{
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
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// Refresh 用 refresh token 换新的 token 对。
func (s *AuthService) Refresh(
	ctx context.Context,
	req dto.RefreshTokenRequest,
) (*dto.RefreshTokenData, error) {
	userID, err := token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, pkgerrors.Unauthorized
	}

	// 用户可能在 token 有效期内被回收，刷新时重新校验
	db := database.DB().WithContext(ctx)
	user, err := repository.GetUserByUserID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Unauthorized
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if !user.Usable() {
		return nil, pkgerrors.Unauthorized
	}

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return &dto.RefreshTokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}
