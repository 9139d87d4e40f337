package dto

import "frontdesk/models"

// BulkCreateRequest là payload của form tạo số phòng hàng loạt.
// Được forward nguyên shape lên backend
type BulkCreateRequest struct {
	RoomTypeID  string `json:"roomTypeId" binding:"required"`
	StartNumber string `json:"startNumber" binding:"required"`
	EndNumber   string `json:"endNumber" binding:"required"`
	Floor       string `json:"floor"`
	Prefix      string `json:"prefix"`
}

// RoomStatusRequest đổi trạng thái phòng trực tiếp (housekeeping)
type RoomStatusRequest struct {
	RoomID string `json:"roomId" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// RoomGridView là snapshot màn hình phòng trả về cho trình duyệt
type RoomGridView struct {
	Rooms     []models.RoomUnit `json:"rooms"`
	Filters   FilterCriteria    `json:"filters"`
	LastError string            `json:"lastError,omitempty"`
}

// SuggestResponse là một gợi ý loại phòng cho ô nhập liệu
type SuggestResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
