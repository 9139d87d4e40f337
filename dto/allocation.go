package dto

import "frontdesk/models"

// AllocationRequest là payload gửi lên backend khi gán phòng cho đơn
type AllocationRequest struct {
	RoomID       string `json:"roomId"`
	BookingID    string `json:"bookingId"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// OpenAllocationRequest mở modal gán phòng cho một phòng cụ thể
type OpenAllocationRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

// SelectBookingRequest chọn một đơn trong danh sách candidate
type SelectBookingRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// AllocationView là trạng thái modal trả về cho trình duyệt
type AllocationView struct {
	State      string                  `json:"state"`
	Room       *models.RoomUnit        `json:"room,omitempty"`
	Candidates []models.PendingBooking `json:"candidates"`
	SelectedID string                  `json:"selectedId,omitempty"`
	LastError  string                  `json:"lastError,omitempty"`
}
