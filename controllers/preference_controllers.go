package controllers

import (
	"fmt"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

// preferenceOwner ưu tiên userID đã đăng nhập, fallback sessionId
func preferenceOwner(c *gin.Context) string {
	if val, ok := c.Get("userID"); ok {
		if id, ok := val.(uint); ok && id > 0 {
			return fmt.Sprintf("user:%d", id)
		}
	}
	return "session:" + sessionID(c)
}

// GetPreferences trả về tùy chọn trợ năng của người vận hành
func GetPreferences(c *gin.Context) {
	prefs, err := services.GetPreferences(c.Request.Context(), config.RedisClient, preferenceOwner(c))
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, prefs)
}

// UpdatePreferences lưu tùy chọn trợ năng
func UpdatePreferences(c *gin.Context) {
	var prefs dto.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := services.SavePreferences(c.Request.Context(), config.RedisClient, preferenceOwner(c), prefs); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, prefs)
}
