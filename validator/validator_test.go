package validator

import (
	"testing"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateFilterUpdateRoomNumberDigitsOnly(t *testing.T) {
	assert.NoError(t, ValidateFilterUpdate(dto.FilterUpdate{RoomNumber: strPtr("204")}))
	assert.NoError(t, ValidateFilterUpdate(dto.FilterUpdate{RoomNumber: strPtr("")}))

	err := ValidateFilterUpdate(dto.FilterUpdate{RoomNumber: strPtr("20A")})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)
}

func TestValidateFilterUpdateCustomerName(t *testing.T) {
	assert.NoError(t, ValidateFilterUpdate(dto.FilterUpdate{CustomerName: strPtr("Nguyễn Văn An")}))
	assert.NoError(t, ValidateFilterUpdate(dto.FilterUpdate{CustomerName: strPtr("Asha")}))

	err := ValidateFilterUpdate(dto.FilterUpdate{CustomerName: strPtr("An123")})
	require.Error(t, err)
}

func TestValidateFilterUpdateDates(t *testing.T) {
	assert.NoError(t, ValidateFilterUpdate(dto.FilterUpdate{CheckInDate: strPtr("2024-05-01")}))
	assert.NoError(t, ValidateFilterUpdate(dto.FilterUpdate{CheckOutDate: strPtr("")}))

	err := ValidateFilterUpdate(dto.FilterUpdate{CheckInDate: strPtr("01/05/2024")})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidDate, errors.GetAppError(err).Code)

	err = ValidateFilterUpdate(dto.FilterUpdate{CheckOutDate: strPtr("2024-13-40")})
	require.Error(t, err)
}

func TestValidateBulkCreate(t *testing.T) {
	valid := dto.BulkCreateRequest{RoomTypeID: "t1", StartNumber: "201", EndNumber: "210"}
	assert.NoError(t, ValidateBulkCreate(valid))

	err := ValidateBulkCreate(dto.BulkCreateRequest{StartNumber: "201", EndNumber: "210"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	err = ValidateBulkCreate(dto.BulkCreateRequest{RoomTypeID: "t1", StartNumber: "abc", EndNumber: "210"})
	require.Error(t, err)

	err = ValidateBulkCreate(dto.BulkCreateRequest{RoomTypeID: "t1", StartNumber: "210", EndNumber: "201"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
}

func TestValidateStatusChange(t *testing.T) {
	assert.NoError(t, ValidateStatusChange(constants.RoomStatusAvailable, constants.RoomStatusMaintenance))
	assert.NoError(t, ValidateStatusChange(constants.RoomStatusMaintenance, constants.RoomStatusAvailable))

	// Phòng đang có đơn thì không đổi trực tiếp
	err := ValidateStatusChange(constants.RoomStatusOccupied, constants.RoomStatusAvailable)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidStatus, errors.GetAppError(err).Code)

	err = ValidateStatusChange(constants.RoomStatusAvailable, constants.RoomStatusOccupied)
	require.Error(t, err)
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(dto.ReviewRequest{BookingID: "b1", Star: 5}))

	err := ValidateReview(dto.ReviewRequest{Star: 3})
	require.Error(t, err)

	err = ValidateReview(dto.ReviewRequest{BookingID: "b1", Star: 0})
	require.Error(t, err)

	err = ValidateReview(dto.ReviewRequest{BookingID: "b1", Star: 6})
	require.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("an.nguyen@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("a@b"))
}
