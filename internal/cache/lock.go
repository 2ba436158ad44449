package cache

import (
	"context"
	"time"

	"AttendEase/storage/redis"
)

// 通过 SetNX 实现分布式锁。签到/签退按“员工+日历日”持锁，
// 把读检查和双行写串成一个逻辑临界区。

const (
	lockPrefix = "lock"
)

func TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {

	fullkey := redis.Key(lockPrefix, key)

	result, err := redis.Client().SetNX(ctx, fullkey, 1, ttl).Result()

	if err != nil {
		return false, err
	}

	return result, err
}

func Unlock(ctx context.Context, key string) error {
	fullkey := redis.Key(lockPrefix, key)

	return redis.Client().Del(ctx, fullkey).Err()
}
