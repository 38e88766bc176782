package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study_boost_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore 按用户划分的扁平键值存储，值为 JSON 文本
type KVStore interface {
	Get(ctx context.Context, userID, key string) (string, bool, error)
	Set(ctx context.Context, userID, key, value string) error
	Delete(ctx context.Context, userID, key string) error
	Keys(ctx context.Context, userID string) ([]string, error)
}

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

func (r *StoreRepository) Get(ctx context.Context, userID, key string) (string, bool, error) {
	var entry model.StoreEntry
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND store_key = ?", userID, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set 覆盖写入，(user_id, store_key) 冲突时更新
func (r *StoreRepository) Set(ctx context.Context, userID, key, value string) error {
	entry := model.StoreEntry{
		UserID:   userID,
		StoreKey: key,
		Value:    value,
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value, "updated_at": time.Now()}),
	}).Create(&entry).Error
}

func (r *StoreRepository) Delete(ctx context.Context, userID, key string) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND store_key = ?", userID, key).
		Delete(&model.StoreEntry{}).Error
}

func (r *StoreRepository) Keys(ctx context.Context, userID string) ([]string, error) {
	var keys []string
	err := r.DB.WithContext(ctx).Model(&model.StoreEntry{}).
		Where("user_id = ?", userID).
		Order("store_key").
		Pluck("store_key", &keys).Error
	return keys, err
}

// UserIDs 所有拥有指定键的用户，供离线迁移脚本使用
func (r *StoreRepository) UserIDs(ctx context.Context, key string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.StoreEntry{}).
		Where("store_key = ?", key).
		Pluck("user_id", &ids).Error
	return ids, err
}

// RedisStoreRepository 每个用户一个 hash
type RedisStoreRepository struct {
	rdb *redis.Client
}

func NewRedisStoreRepository(rdb *redis.Client) *RedisStoreRepository {
	return &RedisStoreRepository{rdb: rdb}
}

func storeHashKey(userID string) string {
	return fmt.Sprintf("study:store:%s", userID)
}

func (r *RedisStoreRepository) Get(ctx context.Context, userID, key string) (string, bool, error) {
	val, err := r.rdb.HGet(ctx, storeHashKey(userID), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisStoreRepository) Set(ctx context.Context, userID, key, value string) error {
	return r.rdb.HSet(ctx, storeHashKey(userID), key, value).Err()
}

func (r *RedisStoreRepository) Delete(ctx context.Context, userID, key string) error {
	return r.rdb.HDel(ctx, storeHashKey(userID), key).Err()
}

func (r *RedisStoreRepository) Keys(ctx context.Context, userID string) ([]string, error) {
	return r.rdb.HKeys(ctx, storeHashKey(userID)).Result()
}
