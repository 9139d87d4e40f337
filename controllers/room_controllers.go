package controllers

import (
	"strconv"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

// RoomController phục vụ form tạo số phòng và đổi trạng thái housekeeping
type RoomController struct {
	views    *services.ViewRegistry
	upstream *services.Upstream
}

func NewRoomController(views *services.ViewRegistry, upstream *services.Upstream) *RoomController {
	return &RoomController{views: views, upstream: upstream}
}

// BulkCreateRoomNumbers forward form tạo hàng loạt lên backend.
// Payload giữ nguyên shape {roomTypeId, startNumber, endNumber, floor, prefix}
func (ctl *RoomController) BulkCreateRoomNumbers(c *gin.Context) {
	var req dto.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBulkCreate(req); err != nil {
		response.ValidationError(c, errors.MessageOr(err, "Form tạo số phòng không hợp lệ"))
		return
	}

	if err := ctl.upstream.BulkCreateRoomNumbers(c.Request.Context(), req); err != nil {
		// Form vẫn mở để sửa lại, lệnh coi như chưa có hiệu lực
		response.Error(c, 0, errors.MessageOr(err, "Không thể tạo số phòng"))
		return
	}
	response.Success(c, nil)
}

// ChangeRoomStatus đổi trạng thái phòng trực tiếp, bỏ qua luồng gán đơn.
// Chỉ dành cho housekeeping: Available/Maintenance/OutOfService
func (ctl *RoomController) ChangeRoomStatus(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}

	var req dto.RoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := view.Fetcher.FindRoom(req.RoomID)
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidateStatusChange(room.EffectiveStatus(), req.Status); err != nil {
		response.ValidationError(c, errors.MessageOr(err, "Trạng thái không hợp lệ"))
		return
	}

	if err := ctl.upstream.ChangeRoomStatus(c.Request.Context(), req.RoomID, req.Status); err != nil {
		response.Error(c, 0, errors.MessageOr(err, "Không thể đổi trạng thái phòng"))
		return
	}

	// Fire-and-forget: hiệu ứng đảm bảo duy nhất là refresh lại toàn bộ grid
	view.Fetcher.Refresh(c.Request.Context(), view.Filters.Committed())
	response.Success(c, nil)
}

// GetRoomTypes trả về danh sách loại phòng, cache theo phiên làm việc
func (ctl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := services.GetRoomTypes(c.Request.Context(), config.RedisClient, ctl.upstream)
	if err != nil {
		response.Error(c, 0, errors.MessageOr(err, "Không thể tải danh sách loại phòng"))
		return
	}
	response.Success(c, types)
}

// SuggestRoomTypes gợi ý loại phòng cho ô nhập liệu của form
func (ctl *RoomController) SuggestRoomTypes(c *gin.Context) {
	query := c.DefaultQuery("q", "")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		limit = 5
	}

	types, err := services.GetRoomTypes(c.Request.Context(), config.RedisClient, ctl.upstream)
	if err != nil {
		response.Error(c, 0, errors.MessageOr(err, "Không thể tải danh sách loại phòng"))
		return
	}
	response.Success(c, services.SuggestRoomTypes(query, types, limit))
}
