package controllers

import (
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

// AllocationController phục vụ modal gán phòng cho đơn đặt
type AllocationController struct {
	views *services.ViewRegistry
}

func NewAllocationController(views *services.ViewRegistry) *AllocationController {
	return &AllocationController{views: views}
}

// OpenAllocation mở modal cho một phòng trống và load danh sách đơn phù hợp
func (ctl *AllocationController) OpenAllocation(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}

	var req dto.OpenAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := view.Fetcher.FindRoom(req.RoomID)
	if err != nil {
		response.NotFound(c)
		return
	}

	if err := view.Allocation.Open(c.Request.Context(), room); err != nil {
		if err == errors.ErrModalClosed {
			response.Success(c, view.Allocation.View())
			return
		}
		response.Error(c, 0, errors.MessageOr(err, "Không thể mở luồng gán phòng"))
		return
	}
	response.Success(c, view.Allocation.View())
}

// SelectBooking chọn một đơn trong danh sách candidate
func (ctl *AllocationController) SelectBooking(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}

	var req dto.SelectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := view.Allocation.Select(req.BookingID); err != nil {
		response.ValidationError(c, errors.MessageOr(err, "Không chọn được đơn"))
		return
	}
	response.Success(c, view.Allocation.View())
}

// SubmitAllocation gửi lệnh gán phòng.
// Chưa chọn đơn thì lỗi validation tại chỗ, không đụng tới backend
func (ctl *AllocationController) SubmitAllocation(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}

	if err := view.Allocation.Submit(c.Request.Context()); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeNoSelection {
			response.ValidationError(c, appErr.Message)
			return
		}
		// Modal vẫn mở với selection cũ, operator sửa rồi gửi lại
		response.Error(c, 0, errors.MessageOr(err, "Không thể gán phòng cho đơn"))
		return
	}
	response.Success(c, view.Allocation.View())
}

// CloseAllocation đóng modal, kết quả load đang bay sẽ bị bỏ
func (ctl *AllocationController) CloseAllocation(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}
	view.Allocation.Close()
	response.Success(c, nil)
}

// GetAllocation trả về trạng thái modal hiện tại
func (ctl *AllocationController) GetAllocation(c *gin.Context) {
	view, err := ctl.views.Get(sessionID(c))
	if err != nil {
		response.BadRequest(c, errors.MessageOr(err, "Màn hình phòng chưa được mở"))
		return
	}
	response.Success(c, view.Allocation.View())
}
