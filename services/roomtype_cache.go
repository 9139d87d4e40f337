package services

import (
	"context"
	"log"
	"time"

	"frontdesk/models"

	"github.com/redis/go-redis/v9"
)

const roomTypeCacheKey = "roomtypes:all"

// RoomTypeLister lấy danh sách loại phòng từ backend
type RoomTypeLister interface {
	ListRoomTypes(ctx context.Context) ([]models.RoomType, error)
}

// GetRoomTypes trả về danh sách loại phòng, ưu tiên cache Redis.
// Loại phòng không đổi trong phiên làm việc nên cache 60 phút
func GetRoomTypes(ctx context.Context, rdb *redis.Client, client RoomTypeLister) ([]models.RoomType, error) {
	var types []models.RoomType

	if err := GetFromRedis(ctx, rdb, roomTypeCacheKey, &types); err == nil && len(types) > 0 {
		return types, nil
	}

	types, err := client.ListRoomTypes(ctx)
	if err != nil {
		return nil, err
	}

	if err := SetToRedis(ctx, rdb, roomTypeCacheKey, types, 60*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu loại phòng vào Redis: %v", err)
	}
	return types, nil
}

// WarmRoomTypeCache nạp lại cache loại phòng, gọi từ cron
func WarmRoomTypeCache(ctx context.Context, rdb *redis.Client, client RoomTypeLister) error {
	types, err := client.ListRoomTypes(ctx)
	if err != nil {
		return err
	}
	return SetToRedis(ctx, rdb, roomTypeCacheKey, types, 60*time.Minute)
}
