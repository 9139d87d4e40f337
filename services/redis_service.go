package services

import (
	"context"
	"encoding/json"
	"time"

	"frontdesk/dto"

	"github.com/redis/go-redis/v9"
)

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// SaveLastFilters lưu bộ lọc đã commit để mở lại màn hình còn nguyên
func SaveLastFilters(ctx context.Context, rdb *redis.Client, sessionID string, filters dto.FilterCriteria) error {
	return SetToRedis(ctx, rdb, "last_filters:"+sessionID, filters, 30*time.Minute)
}

// GetLastFilters đọc lại bộ lọc của phiên trước
func GetLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.FilterCriteria, error) {
	val, err := rdb.Get(ctx, "last_filters:"+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.FilterCriteria
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

// ClearLastFilters xóa bộ lọc đã lưu của phiên
func ClearLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return DeleteFromRedis(ctx, rdb, "last_filters:"+sessionID)
}
