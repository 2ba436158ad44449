package cache

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"AttendEase/pkg/logger"
	"AttendEase/storage/redis"
)

// 缓存用户的考勤可用性判定（在职且未回收），签到签退每次都要查，
// 避免频繁打到数据库。trash/status 变更时主动失效。

const (
	userAvailabilityPrefix = "user:availability"
	userAvailabilityTTL    = 10 * time.Minute
)

// UserAvailability 用户可用性缓存结构
type UserAvailability struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Usable   bool   `json:"usable"`
	CachedAt int64  `json:"cached_at"`
}

func SetUserAvailability(ctx context.Context, userID string, availability *UserAvailability) error {
	key := redis.Key(userAvailabilityPrefix, userID)

	payload, err := json.Marshal(availability)
	if err != nil {
		return err
	}

	return redis.Client().Set(ctx, key, payload, userAvailabilityTTL).Err()
}

// GetUserAvailability 读取用户可用性缓存，未命中返回 (nil, nil)。
func GetUserAvailability(ctx context.Context, userID string) (*UserAvailability, error) {
	key := redis.Key(userAvailabilityPrefix, userID)

	payload, err := redis.Client().Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var availability UserAvailability
	if err := json.Unmarshal(payload, &availability); err != nil {
		// 缓存坏了当未命中处理，删掉重建
		logger.Logger.Warn("Corrupted user availability cache entry",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		_ = redis.Client().Del(ctx, key).Err()
		return nil, nil
	}

	return &availability, nil
}

// InvalidateUserAvailability 用户状态变更后主动失效缓存
func InvalidateUserAvailability(ctx context.Context, userID string) error {
	key := redis.Key(userAvailabilityPrefix, userID)
	return redis.Client().Del(ctx, key).Err()
}
