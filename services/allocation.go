package services

import (
	"context"
	"sort"
	"sync"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
)

// Trạng thái của modal gán phòng
const (
	AllocationIdle              = "Idle"
	AllocationCandidatesLoading = "CandidatesLoading"
	AllocationCandidatesReady   = "CandidatesReady"
	AllocationSubmitting        = "Submitting"
)

// AllocationClient là phần backend mà luồng gán phòng cần
type AllocationClient interface {
	ListCandidateBookings(ctx context.Context) ([]models.PendingBooking, error)
	AllocateRoom(ctx context.Context, req dto.AllocationRequest) error
}

// AllocationFlow là state machine của modal gán phòng:
// Idle → CandidatesLoading → CandidatesReady → Submitting → Committed/Failed.
// Failed quay về CandidatesReady và giữ nguyên selection để retry
type AllocationFlow struct {
	mu          sync.Mutex
	client      AllocationClient
	state       string
	room        *models.RoomUnit
	candidates  []models.PendingBooking
	selectedID  string
	lastError   string
	gen         uint64 // tăng khi đóng modal, load candidate về trễ sẽ bị bỏ
	onCommitted func()
}

// NewAllocationFlow tạo luồng gán phòng, onCommitted chạy sau khi gán thành công
// để grid refresh và hiện trạng thái Allocated
func NewAllocationFlow(client AllocationClient, onCommitted func()) *AllocationFlow {
	return &AllocationFlow{
		client:      client,
		state:       AllocationIdle,
		onCommitted: onCommitted,
	}
}

// Open mở modal cho một phòng Available và load danh sách đơn candidate
func (a *AllocationFlow) Open(ctx context.Context, room *models.RoomUnit) error {
	a.mu.Lock()
	if a.state != AllocationIdle {
		a.mu.Unlock()
		return errors.NewAppError(errors.ErrCodeInvalidState, "Đang có luồng gán phòng khác", nil)
	}
	if room.EffectiveStatus() != constants.RoomStatusAvailable {
		a.mu.Unlock()
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Chỉ gán được phòng đang trống", nil)
	}
	a.state = AllocationCandidatesLoading
	a.room = room
	a.candidates = nil
	a.selectedID = ""
	a.lastError = ""
	myGen := a.gen
	a.mu.Unlock()

	bookings, err := a.client.ListCandidateBookings(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	// Modal đã bị đóng trong lúc load, không apply kết quả
	if myGen != a.gen || a.state != AllocationCandidatesLoading {
		return errors.ErrModalClosed
	}

	if err != nil {
		a.state = AllocationIdle
		a.room = nil
		return errors.NewAppError(errors.ErrCodeUpstream,
			errors.MessageOr(err, "Không thể tải danh sách đơn đặt phòng"), err)
	}

	a.candidates = filterCandidates(bookings, room.Room.TypeID())
	a.state = AllocationCandidatesReady
	return nil
}

// filterCandidates giữ lại đơn đúng loại phòng và chưa được gán phòng.
// Sort theo ngày nhận phòng chỉ để dễ nhìn, logic không phụ thuộc thứ tự
func filterCandidates(bookings []models.PendingBooking, roomTypeID string) []models.PendingBooking {
	var matched []models.PendingBooking
	for _, booking := range bookings {
		if !booking.Unassigned() {
			continue
		}
		if booking.Room.TypeID() != roomTypeID {
			continue
		}
		matched = append(matched, booking)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CheckInDate < matched[j].CheckInDate
	})
	return matched
}

// Select chọn một đơn trong danh sách candidate
func (a *AllocationFlow) Select(bookingID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != AllocationCandidatesReady {
		return errors.NewAppError(errors.ErrCodeInvalidState, "Modal chưa sẵn sàng để chọn đơn", nil)
	}
	for _, booking := range a.candidates {
		if booking.ID == bookingID {
			a.selectedID = bookingID
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeValidation, "Đơn không nằm trong danh sách", nil)
}

// Submit gửi lệnh gán phòng với đơn đã chọn.
// Chưa chọn đơn thì báo lỗi ngay tại chỗ, không gọi lên backend
func (a *AllocationFlow) Submit(ctx context.Context) error {
	a.mu.Lock()
	if a.state != AllocationCandidatesReady {
		a.mu.Unlock()
		return errors.NewAppError(errors.ErrCodeInvalidState, "Modal chưa sẵn sàng để gửi", nil)
	}
	if a.selectedID == "" {
		a.mu.Unlock()
		return errors.NewAppError(errors.ErrCodeNoSelection, "Vui lòng chọn đơn đặt phòng", nil)
	}

	var selected *models.PendingBooking
	for i := range a.candidates {
		if a.candidates[i].ID == a.selectedID {
			selected = &a.candidates[i]
			break
		}
	}
	if selected == nil {
		a.mu.Unlock()
		return errors.NewAppError(errors.ErrCodeNoSelection, "Vui lòng chọn đơn đặt phòng", nil)
	}

	req := dto.AllocationRequest{
		RoomID:       a.room.ID,
		BookingID:    selected.ID,
		CustomerID:   selected.CustomerID,
		CustomerName: selected.GuestName,
		CheckInDate:  selected.CheckInDate,
		CheckOutDate: selected.CheckOutDate,
	}
	a.state = AllocationSubmitting
	myGen := a.gen
	a.mu.Unlock()

	err := a.client.AllocateRoom(ctx, req)

	a.mu.Lock()
	// Modal đã bị đóng trong lúc submit, không apply kết quả
	if myGen != a.gen || a.state != AllocationSubmitting {
		a.mu.Unlock()
		return errors.ErrModalClosed
	}

	if err != nil {
		// Quay về CandidatesReady, giữ selection để chọn lại hoặc retry
		a.state = AllocationCandidatesReady
		a.lastError = errors.MessageOr(err, "Không thể gán phòng cho đơn")
		a.mu.Unlock()
		return err
	}

	// Committed: đóng modal và refresh grid
	a.reset()
	callback := a.onCommitted
	a.mu.Unlock()

	if callback != nil {
		callback()
	}
	return nil
}

// Close đóng modal, load đang chạy sẽ bị bỏ khi về
func (a *AllocationFlow) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.reset()
}

// reset đưa modal về Idle, caller phải đang giữ lock
func (a *AllocationFlow) reset() {
	a.state = AllocationIdle
	a.room = nil
	a.candidates = nil
	a.selectedID = ""
	a.lastError = ""
}

// View trả về snapshot trạng thái modal cho trình duyệt
func (a *AllocationFlow) View() dto.AllocationView {
	a.mu.Lock()
	defer a.mu.Unlock()
	candidates := make([]models.PendingBooking, len(a.candidates))
	copy(candidates, a.candidates)
	return dto.AllocationView{
		State:      a.state,
		Room:       a.room,
		Candidates: candidates,
		SelectedID: a.selectedID,
		LastError:  a.lastError,
	}
}
