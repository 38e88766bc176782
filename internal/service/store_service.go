package service

import (
	"context"
	"encoding/json"

	"study_boost_backend/internal/repository"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

// StoreService 用户 JSON 数据的读写入口，各功能服务共用
type StoreService struct {
	repo repository.KVStore
}

func NewStoreService(repo repository.KVStore) *StoreService {
	return &StoreService{repo: repo}
}

// LoadJSON 读取并解析一个键；不存在、读取失败或格式错误都视为空
func LoadJSON[T any](ctx context.Context, s *StoreService, userID, key string) (T, bool) {
	var out T
	raw, found, err := s.repo.Get(ctx, userID, key)
	if err != nil {
		logger.Log.Warn("Failed to read store entry", zap.String("key", key), zap.Error(err))
		return out, false
	}
	if !found || raw == "" {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Log.Warn("Discarding malformed store entry", zap.String("key", key), zap.Error(err))
		var zero T
		return zero, false
	}
	return out, true
}

func (s *StoreService) SaveJSON(ctx context.Context, userID, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, userID, key, string(data)); err != nil {
		logger.Log.Error("Failed to write store entry", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *StoreService) Delete(ctx context.Context, userID, key string) error {
	return s.repo.Delete(ctx, userID, key)
}

func (s *StoreService) Keys(ctx context.Context, userID string) ([]string, error) {
	return s.repo.Keys(ctx, userID)
}
