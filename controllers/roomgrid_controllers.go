package controllers

import (
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

// RoomGridController phục vụ màn hình quản lý số phòng
type RoomGridController struct {
	views *services.ViewRegistry
}

func NewRoomGridController(views *services.ViewRegistry) *RoomGridController {
	return &RoomGridController{views: views}
}

func sessionID(c *gin.Context) string {
	if val, ok := c.Get("sessionId"); ok {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return ""
}

// OpenRoomGrid mở phiên xem: bật invalidator, nạp lại bộ lọc cũ nếu có
func (ctl *RoomGridController) OpenRoomGrid(c *gin.Context) {
	view, err := ctl.views.Open(c.Request.Context(), sessionID(c))
	if err != nil {
		response.Error(c, 0, errors.MessageOr(err, "Không thể mở màn hình phòng"))
		return
	}
	response.Success(c, dto.RoomGridView{
		Rooms:     view.Fetcher.Rooms(),
		Filters:   view.Filters.Current(),
		LastError: view.Fetcher.LastError(),
	})
}

// CloseRoomGrid đóng phiên xem và gỡ toàn bộ listener
func (ctl *RoomGridController) CloseRoomGrid(c *gin.Context) {
	ctl.views.Close(sessionID(c))
	response.Success(c, nil)
}

// GetRoomGrid trả về snapshot hiện tại của grid
func (ctl *RoomGridController) GetRoomGrid(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}
	response.Success(c, dto.RoomGridView{
		Rooms:     view.Fetcher.Rooms(),
		Filters:   view.Filters.Current(),
		LastError: view.Fetcher.LastError(),
	})
}

// UpdateFilters nhận update từng phần của bộ lọc từ form.
// Fetch chỉ chạy sau debounce, gõ liên tục không bắn request liên tục
func (ctl *RoomGridController) UpdateFilters(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}

	var patch dto.FilterUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateFilterUpdate(patch); err != nil {
		response.ValidationError(c, errors.MessageOr(err, "Bộ lọc không hợp lệ"))
		return
	}

	current := view.Filters.Update(patch)
	response.Success(c, current)
}

// ClearFilters xóa toàn bộ bộ lọc, kể cả khoảng ngày
func (ctl *RoomGridController) ClearFilters(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}
	view.Filters.Clear()
	response.Success(c, view.Filters.Current())
}

// RefreshRoomGrid là nút retry: fetch lại với bộ lọc đã commit
func (ctl *RoomGridController) RefreshRoomGrid(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}

	err = view.Fetcher.Refresh(c.Request.Context(), view.Filters.Committed())
	if err == errors.ErrMissingDateRange {
		response.ValidationError(c, "Cần chọn ngày nhận và trả phòng trước")
		return
	}
	response.Success(c, dto.RoomGridView{
		Rooms:     view.Fetcher.Rooms(),
		Filters:   view.Filters.Current(),
		LastError: view.Fetcher.LastError(),
	})
}
