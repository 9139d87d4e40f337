package dto

// ReviewRequest là form đánh giá sau kỳ lưu trú
type ReviewRequest struct {
	BookingID string   `json:"bookingId" binding:"required"`
	Star      int      `json:"star" binding:"required"`
	Comment   string   `json:"comment"`
	Images    []string `json:"images"`
}
