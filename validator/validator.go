package validator

import (
	"regexp"
	"strconv"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
)

var (
	digitsRegex = regexp.MustCompile(`^[0-9]*$`)
	nameRegex   = regexp.MustCompile(`^[\p{L} ]*$`)
)

// ValidateFilterUpdate kiểm tra input form trước khi vào store:
// số phòng chỉ nhận chữ số, tên khách chỉ nhận chữ và khoảng trắng
func ValidateFilterUpdate(patch dto.FilterUpdate) error {
	if patch.RoomNumber != nil && !digitsRegex.MatchString(*patch.RoomNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số phòng chỉ được chứa chữ số", nil)
	}
	if patch.CustomerName != nil && !nameRegex.MatchString(*patch.CustomerName) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Tên khách chỉ được chứa chữ cái", nil)
	}
	if patch.CheckInDate != nil && *patch.CheckInDate != "" {
		if _, err := time.Parse("2006-01-02", *patch.CheckInDate); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
		}
	}
	if patch.CheckOutDate != nil && *patch.CheckOutDate != "" {
		if _, err := time.Parse("2006-01-02", *patch.CheckOutDate); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
		}
	}
	return nil
}

// ValidateBulkCreate kiểm tra form tạo số phòng hàng loạt
func ValidateBulkCreate(req dto.BulkCreateRequest) error {
	if req.RoomTypeID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}

	start, err := strconv.Atoi(req.StartNumber)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số bắt đầu phải là số", err)
	}
	end, err := strconv.Atoi(req.EndNumber)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số kết thúc phải là số", err)
	}
	if end < start {
		return errors.NewAppError(errors.ErrCodeValidation, "Số kết thúc phải lớn hơn hoặc bằng số bắt đầu", nil)
	}
	return nil
}

// ValidateStatusChange chỉ cho đổi trực tiếp giữa các trạng thái housekeeping
func ValidateStatusChange(currentStatus, newStatus string) error {
	if !constants.IsManualStatus(currentStatus) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Phòng đang có đơn, không đổi trạng thái trực tiếp được", nil)
	}
	if !constants.IsManualStatus(newStatus) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái mới không hợp lệ", nil)
	}
	return nil
}

// ValidateReview kiểm tra form đánh giá
func ValidateReview(req dto.ReviewRequest) error {
	if req.BookingID == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID đơn đặt phòng không được để trống", nil)
	}
	if req.Star < 1 || req.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 8 ký tự", nil)
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email không hợp lệ", nil)
	}
	return nil
}
