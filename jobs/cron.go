package jobs

import (
	"context"
	"log"
	"time"

	"frontdesk/services"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// Phiên xem không hoạt động quá mức này sẽ bị dọn
const maxViewIdle = 30 * time.Minute

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, views *services.ViewRegistry, rdb *redis.Client, upstream *services.Upstream) error {
	// Nạp lại cache loại phòng lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := services.WarmRoomTypeCache(context.Background(), rdb, upstream); err != nil {
			log.Printf("Lỗi khi nạp lại cache loại phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Dọn phiên xem bỏ quên mỗi 10 phút để không còn listener treo
	_, err = c.AddFunc("*/10 * * * *", func() {
		views.SweepIdle(maxViewIdle)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
