package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InFlightGuard 同一用户同一功能同时只允许一个生成请求，第二个直接拒绝
type InFlightGuard interface {
	Acquire(ctx context.Context, userID, feature string) (bool, error)
	Release(ctx context.Context, userID, feature string)
}

type MemoryGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{inFlight: make(map[string]struct{})}
}

func guardKey(userID, feature string) string {
	return fmt.Sprintf("study:inflight:%s:%s", userID, feature)
}

func (g *MemoryGuard) Acquire(_ context.Context, userID, feature string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := guardKey(userID, feature)
	if _, ok := g.inFlight[key]; ok {
		return false, nil
	}
	g.inFlight[key] = struct{}{}
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, userID, feature string) {
	g.mu.Lock()
	delete(g.inFlight, guardKey(userID, feature))
	g.mu.Unlock()
}

// RedisGuard 多实例部署时使用，TTL 防止进程崩溃后锁不释放
type RedisGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGuard(rdb *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisGuard) Acquire(ctx context.Context, userID, feature string) (bool, error) {
	return g.rdb.SetNX(ctx, guardKey(userID, feature), 1, g.ttl).Result()
}

func (g *RedisGuard) Release(ctx context.Context, userID, feature string) {
	// 请求上下文可能已取消，释放用独立上下文
	if err := g.rdb.Del(context.WithoutCancel(ctx), guardKey(userID, feature)).Err(); err != nil {
		logger.Log.Warn("Failed to release in-flight guard", zap.String("feature", feature), zap.Error(err))
	}
}

// runGuarded 持有守卫执行 fn，已有请求在进行时返回 ErrRequestInFlight
func runGuarded(ctx context.Context, guard InFlightGuard, userID, feature string, fn func() error) error {
	ok, err := guard.Acquire(ctx, userID, feature)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrRequestInFlight
	}
	defer guard.Release(ctx, userID, feature)
	return fn()
}
