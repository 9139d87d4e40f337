package constants

// Room unit status
const (
	RoomStatusAvailable    = "Available"
	RoomStatusAllocated    = "Allocated"
	RoomStatusOccupied     = "Occupied"
	RoomStatusMaintenance  = "Maintenance"
	RoomStatusOutOfService = "OutOfService"
)

// Booking status
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// Các sự kiện push từ backend, chỉ dùng làm tín hiệu invalidate
const (
	EventBookingStatusChange = "bookingStatusChange"
	EventNewBooking          = "newBooking"
	EventBookingUpdated      = "bookingUpdated"
)

// ManualStatuses là các trạng thái được phép đổi trực tiếp (housekeeping)
var ManualStatuses = []string{
	RoomStatusAvailable,
	RoomStatusMaintenance,
	RoomStatusOutOfService,
}

// IsManualStatus kiểm tra status có nằm trong nhóm housekeeping không
func IsManualStatus(status string) bool {
	for _, s := range ManualStatuses {
		if s == status {
			return true
		}
	}
	return false
}
