package services

import (
	"context"
	"mime/multipart"

	"frontdesk/dto"
	"frontdesk/errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadReviewImages upload ảnh đính kèm đánh giá lên Cloudinary,
// trả về danh sách URL để gửi kèm đánh giá lên backend
func UploadReviewImages(ctx context.Context, cld *cloudinary.Cloudinary, files []*multipart.FileHeader) ([]string, error) {
	var urls []string
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Lỗi khi mở file", err)
		}

		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "reviews"})
		src.Close()
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeUpstream, "Upload thất bại", err)
		}
		urls = append(urls, resp.SecureURL)
	}
	return urls, nil
}

// ReviewSender forward đánh giá lên backend
type ReviewSender interface {
	SubmitReview(ctx context.Context, req dto.ReviewRequest) error
}

// SubmitReview gửi đánh giá kèm URL ảnh đã upload
func SubmitReview(ctx context.Context, client ReviewSender, req dto.ReviewRequest, imageURLs []string) error {
	req.Images = imageURLs
	return client.SubmitReview(ctx, req)
}
