package controllers

import (
	"strconv"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

// ReviewController phục vụ form đánh giá sau kỳ lưu trú
type ReviewController struct {
	upstream *services.Upstream
}

func NewReviewController(upstream *services.Upstream) *ReviewController {
	return &ReviewController{upstream: upstream}
}

// CreateReview nhận form multipart: nội dung đánh giá + ảnh đính kèm.
// Ảnh upload lên Cloudinary trước, URL gửi kèm đánh giá lên backend
func (ctl *ReviewController) CreateReview(c *gin.Context) {
	star, err := strconv.Atoi(c.PostForm("star"))
	if err != nil {
		response.BadRequest(c, "Số sao không hợp lệ")
		return
	}

	req := dto.ReviewRequest{
		BookingID: c.PostForm("bookingId"),
		Star:      star,
		Comment:   c.PostForm("comment"),
	}

	if err := validator.ValidateReview(req); err != nil {
		response.ValidationError(c, errors.MessageOr(err, "Form đánh giá không hợp lệ"))
		return
	}

	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["images"]
		if len(files) > 0 {
			imageURLs, err = services.UploadReviewImages(c.Request.Context(), config.Cloudinary, files)
			if err != nil {
				response.Error(c, 0, errors.MessageOr(err, "Upload ảnh thất bại"))
				return
			}
		}
	}

	if err := services.SubmitReview(c.Request.Context(), ctl.upstream, req, imageURLs); err != nil {
		response.Error(c, 0, errors.MessageOr(err, "Không thể gửi đánh giá"))
		return
	}
	response.Success(c, nil)
}
