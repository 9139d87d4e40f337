package models

// CurrentAllocation là thông tin đặt phòng đang gắn với phòng (nếu có)
type CurrentAllocation struct {
	CustomerName string `json:"customerName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	BookingRef   string `json:"bookingRef"`
}

// RoomUnit là view model của một phòng trong màn hình quản lý số phòng.
// Được build lại toàn bộ sau mỗi lần fetch, không mutate tại chỗ.
type RoomUnit struct {
	ID                string             `json:"id"`
	RoomNumber        string             `json:"roomNumber"`
	Floor             string             `json:"floor"`
	Room              RoomTypeRef        `json:"room"`
	Status            string             `json:"status"`
	DateWiseStatus    string             `json:"dateWiseStatus,omitempty"`
	CurrentAllocation *CurrentAllocation `json:"currentAllocation,omitempty"`
}

// EffectiveStatus trả về trạng thái hiển thị: dateWiseStatus luôn thắng status
// khi đang lọc theo khoảng ngày
func (r *RoomUnit) EffectiveStatus() string {
	if r.DateWiseStatus != "" {
		return r.DateWiseStatus
	}
	return r.Status
}
