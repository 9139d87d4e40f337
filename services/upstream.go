package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
)

// upstreamEnvelope là cấu trúc response chung của backend
type upstreamEnvelope struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data"`
}

// Upstream là client gọi REST API của backend đặt phòng
type Upstream struct {
	BaseURL string
	Client  *http.Client
	Token   string
}

// NewUpstream tạo client với timeout mặc định
func NewUpstream(baseURL string) *Upstream {
	return &Upstream{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *Upstream) do(ctx context.Context, method, path string, query url.Values, body interface{}, target interface{}, fallback string) error {
	fullURL := u.BaseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, fallback, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeUpstream, fallback, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if u.Token != "" {
		req.Header.Set("Authorization", "Bearer "+u.Token)
	}

	resp, err := u.Client.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeUpstream, fallback, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeUpstream, fallback, err)
	}

	var envelope upstreamEnvelope
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Ưu tiên message từ server, fallback message chung của thao tác
		message := fallback
		if decodeErr == nil && envelope.Mess != "" {
			message = envelope.Mess
		}
		return errors.NewAppError(errors.ErrCodeUpstream, message, fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	if target == nil {
		return nil
	}
	if decodeErr != nil {
		return errors.NewAppError(errors.ErrCodeUpstreamDecode, fallback, decodeErr)
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return errors.NewAppError(errors.ErrCodeUpstreamDecode, fallback, err)
	}
	return nil
}

// ListRoomNumbers lấy danh sách phòng theo bộ lọc đã commit
func (u *Upstream) ListRoomNumbers(ctx context.Context, filters dto.FilterCriteria) ([]models.RoomUnit, error) {
	var rooms []models.RoomUnit
	err := u.do(ctx, http.MethodGet, "/room-numbers", filters.QueryValues(), nil, &rooms, "Không thể tải danh sách phòng")
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListRoomTypes lấy danh sách loại phòng, mỗi phiên chỉ cần một lần
func (u *Upstream) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	query := url.Values{}
	query.Set("limit", "100")
	var types []models.RoomType
	err := u.do(ctx, http.MethodGet, "/rooms", query, nil, &types, "Không thể tải danh sách loại phòng")
	if err != nil {
		return nil, err
	}
	return types, nil
}

// BulkCreateRoomNumbers forward nguyên payload của form tạo hàng loạt
func (u *Upstream) BulkCreateRoomNumbers(ctx context.Context, req dto.BulkCreateRequest) error {
	return u.do(ctx, http.MethodPost, "/room-numbers/bulk-create", nil, req, nil, "Không thể tạo số phòng")
}

// ChangeRoomStatus đổi trạng thái phòng trực tiếp
func (u *Upstream) ChangeRoomStatus(ctx context.Context, roomID, status string) error {
	body := map[string]string{"status": status}
	return u.do(ctx, http.MethodPut, "/room-numbers/"+roomID+"/status", nil, body, nil, "Không thể đổi trạng thái phòng")
}

// ListCandidateBookings lấy các đơn Pending/Confirmed chưa gán phòng.
// Backend chưa hỗ trợ lọc theo loại phòng nên phía này lọc sau khi nhận,
// tối đa 100 đơn và chưa có phân trang
func (u *Upstream) ListCandidateBookings(ctx context.Context) ([]models.PendingBooking, error) {
	query := url.Values{}
	query.Set("status", constants.BookingStatusPending+","+constants.BookingStatusConfirmed)
	query.Set("limit", "100")
	var bookings []models.PendingBooking
	err := u.do(ctx, http.MethodGet, "/admin/bookings", query, nil, &bookings, "Không thể tải danh sách đơn đặt phòng")
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// AllocateRoom gán phòng cho đơn đã chọn
func (u *Upstream) AllocateRoom(ctx context.Context, req dto.AllocationRequest) error {
	return u.do(ctx, http.MethodPost, "/room-numbers/"+req.RoomID+"/allocate", nil, req, nil, "Không thể gán phòng cho đơn")
}

// SubmitReview forward đánh giá của khách lên backend
func (u *Upstream) SubmitReview(ctx context.Context, req dto.ReviewRequest) error {
	return u.do(ctx, http.MethodPost, "/reviews", nil, req, nil, "Không thể gửi đánh giá")
}

// ForgotPassword forward yêu cầu quên mật khẩu
func (u *Upstream) ForgotPassword(ctx context.Context, req dto.ForgetPasswordRequest) error {
	return u.do(ctx, http.MethodPost, "/forgetPassword", nil, req, nil, "Không thể gửi yêu cầu quên mật khẩu")
}

// ResetPassword forward yêu cầu đặt mật khẩu mới
func (u *Upstream) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	return u.do(ctx, http.MethodPost, "/newPassword", nil, req, nil, "Không thể đặt lại mật khẩu")
}
