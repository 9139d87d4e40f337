package services

import (
	"context"
	"time"

	"frontdesk/dto"

	"github.com/redis/go-redis/v9"
)

// Tùy chọn trợ năng lưu 30 ngày theo người vận hành
const preferenceTTL = 30 * 24 * time.Hour

func preferenceKey(ownerID string) string {
	return "preferences:" + ownerID
}

// GetPreferences đọc tùy chọn trợ năng, trả về mặc định nếu chưa lưu
func GetPreferences(ctx context.Context, rdb *redis.Client, ownerID string) (dto.Preferences, error) {
	prefs := dto.Preferences{Language: "vi"}
	if err := GetFromRedis(ctx, rdb, preferenceKey(ownerID), &prefs); err != nil {
		return prefs, err
	}
	return prefs, nil
}

// SavePreferences lưu tùy chọn trợ năng của người vận hành
func SavePreferences(ctx context.Context, rdb *redis.Client, ownerID string, prefs dto.Preferences) error {
	return SetToRedis(ctx, rdb, preferenceKey(ownerID), prefs, preferenceTTL)
}
