package controllers

import (
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

// AuthController forward luồng quên mật khẩu lên backend.
// Việc gửi email và lưu code là của backend, tầng này chỉ validate form
type AuthController struct {
	upstream *services.Upstream
}

func NewAuthController(upstream *services.Upstream) *AuthController {
	return &AuthController{upstream: upstream}
}

// ForgetPassword gửi yêu cầu quên mật khẩu
func (ctl *AuthController) ForgetPassword(c *gin.Context) {
	var req dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateEmail(req.Email); err != nil {
		response.ValidationError(c, errors.MessageOr(err, "Email không hợp lệ"))
		return
	}

	if err := ctl.upstream.ForgotPassword(c.Request.Context(), req); err != nil {
		response.Error(c, 0, errors.MessageOr(err, "Không thể gửi yêu cầu quên mật khẩu"))
		return
	}
	response.Success(c, nil)
}

// ResetPassword đặt mật khẩu mới với code xác nhận
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePassword(req.NewPassword); err != nil {
		response.ValidationError(c, errors.MessageOr(err, "Mật khẩu không hợp lệ"))
		return
	}

	if err := ctl.upstream.ResetPassword(c.Request.Context(), req); err != nil {
		response.Error(c, 0, errors.MessageOr(err, "Không thể đặt lại mật khẩu"))
		return
	}
	response.Success(c, nil)
}
