package dto

// ForgetPasswordRequest gửi yêu cầu quên mật khẩu lên backend
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest đặt mật khẩu mới với code xác nhận
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
