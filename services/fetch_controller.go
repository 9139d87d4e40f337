package services

import (
	"context"
	"log"
	"sync"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
)

// RoomLister lấy danh sách phòng theo bộ lọc
type RoomLister interface {
	ListRoomNumbers(ctx context.Context, filters dto.FilterCriteria) ([]models.RoomUnit, error)
}

// FetchController giữ danh sách phòng hiện tại của một phiên xem.
// Mỗi lần fetch mang một generation, response về trễ của fetch cũ bị bỏ,
// danh sách hiển thị luôn là kết quả của fetch mới nhất đã resolve
type FetchController struct {
	mu        sync.Mutex
	client    RoomLister
	rooms     []models.RoomUnit
	lastError string
	gen       uint64
	onReplace func([]models.RoomUnit)
}

// NewFetchController tạo controller với callback chạy sau mỗi lần thay grid
func NewFetchController(client RoomLister, onReplace func([]models.RoomUnit)) *FetchController {
	return &FetchController{
		client:    client,
		onReplace: onReplace,
	}
}

// Refresh fetch danh sách phòng theo bộ lọc đã commit.
// Bỏ qua hoàn toàn nếu thiếu checkIn hoặc checkOut để không bắn query vô hạn
func (f *FetchController) Refresh(ctx context.Context, filters dto.FilterCriteria) error {
	if !filters.HasDateRange() {
		return errors.ErrMissingDateRange
	}

	f.mu.Lock()
	f.gen++
	myGen := f.gen
	f.mu.Unlock()

	rooms, err := f.client.ListRoomNumbers(ctx, filters)

	f.mu.Lock()
	defer f.mu.Unlock()

	// Đã có fetch mới hơn được bắn đi, kết quả này là stale
	if myGen != f.gen {
		return errors.ErrStaleResponse
	}

	if err != nil {
		// Giữ nguyên danh sách cũ, chỉ ghi nhận lỗi để UI còn retry được
		f.lastError = errors.MessageOr(err, "Không thể tải danh sách phòng")
		log.Printf("Lỗi khi tải danh sách phòng: %v", err)
		return err
	}

	f.rooms = rooms
	f.lastError = ""
	if f.onReplace != nil {
		f.onReplace(rooms)
	}
	return nil
}

// Rooms trả về bản copy của danh sách hiện tại
func (f *FetchController) Rooms() []models.RoomUnit {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.RoomUnit, len(f.rooms))
	copy(out, f.rooms)
	return out
}

// LastError trả về lỗi của lần fetch gần nhất, rỗng nếu thành công
func (f *FetchController) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

// FindRoom tìm một phòng theo id trong danh sách hiện tại
func (f *FetchController) FindRoom(roomID string) (*models.RoomUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rooms {
		if f.rooms[i].ID == roomID {
			room := f.rooms[i]
			return &room, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng trong danh sách", nil)
}
