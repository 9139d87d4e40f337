package dto

import "net/url"

// FilterCriteria là bộ lọc của màn hình quản lý số phòng
type FilterCriteria struct {
	RoomTypeID   string `json:"roomTypeId"`
	Status       string `json:"status"`
	Floor        string `json:"floor"`
	RoomNumber   string `json:"roomNumber"`
	CustomerName string `json:"customerName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// FilterUpdate là update từng phần từ form, field nil nghĩa là không đổi
type FilterUpdate struct {
	RoomTypeID   *string `json:"roomTypeId"`
	Status       *string `json:"status"`
	Floor        *string `json:"floor"`
	RoomNumber   *string `json:"roomNumber"`
	CustomerName *string `json:"customerName"`
	CheckInDate  *string `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
}

// HasDateRange kiểm tra đã chọn đủ khoảng ngày chưa, fetch chỉ chạy khi đủ
func (f FilterCriteria) HasDateRange() bool {
	return f.CheckInDate != "" && f.CheckOutDate != ""
}

// QueryValues serialize các field khác rỗng thành query param
func (f FilterCriteria) QueryValues() url.Values {
	values := url.Values{}
	set := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}
	set("roomTypeId", f.RoomTypeID)
	set("status", f.Status)
	set("floor", f.Floor)
	set("roomNumber", f.RoomNumber)
	set("customerName", f.CustomerName)
	set("checkInDate", f.CheckInDate)
	set("checkOutDate", f.CheckOutDate)
	return values
}
