package models

// PendingBooking là đơn đặt phòng chưa được gán phòng, chỉ tồn tại tạm thời
// trong luồng gán phòng sau mỗi lần load candidate
type PendingBooking struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId"`
	GuestName    string      `json:"fullName"`
	Status       string      `json:"status"`
	Room         RoomTypeRef `json:"room"`
	RoomID       string      `json:"roomId"`
	CheckInDate  string      `json:"checkInDate"`
	CheckOutDate string      `json:"checkOutDate"`
	TotalPrice   float64     `json:"totalPrice"`
}

// Unassigned cho biết đơn đã có phòng hay chưa
func (b *PendingBooking) Unassigned() bool {
	return b.RoomID == ""
}
