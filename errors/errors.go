package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Upstream errors
	ErrCodeUpstream       ErrorCode = "UPSTREAM_ERROR"
	ErrCodeUpstreamDecode ErrorCode = "UPSTREAM_DECODE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"

	// View session errors
	ErrCodeNoSession    ErrorCode = "NO_SESSION"
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
	ErrCodeNoSelection  ErrorCode = "NO_SELECTION"
	ErrCodeRoomNotFound ErrorCode = "ROOM_NOT_FOUND"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// MessageOr trả về message của AppError, hoặc fallback nếu không phải AppError.
// Dùng để ưu tiên message từ server, fallback message chung theo từng thao tác
func MessageOr(err error, fallback string) string {
	if appErr := GetAppError(err); appErr != nil && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

var (
	ErrViewNotOpen      = errors.New("view session not open")
	ErrModalClosed      = errors.New("allocation modal closed")
	ErrStaleResponse    = errors.New("stale response discarded")
	ErrMissingDateRange = errors.New("missing check-in/check-out range")
)
