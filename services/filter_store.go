package services

import (
	"sync"
	"time"

	"frontdesk/dto"
)

// FilterDebounce là khoảng chờ gõ phím trước khi commit bộ lọc
const FilterDebounce = 500 * time.Millisecond

// FilterStore giữ bộ lọc của màn hình quản lý số phòng.
// Mỗi thay đổi restart timer debounce, gõ liên tục chỉ sinh một lần commit
type FilterStore struct {
	mu        sync.Mutex
	current   dto.FilterCriteria
	committed dto.FilterCriteria
	timer     *time.Timer
	delay     time.Duration
	onCommit  func(dto.FilterCriteria)
}

// NewFilterStore tạo store với callback chạy khi bộ lọc được commit
func NewFilterStore(delay time.Duration, onCommit func(dto.FilterCriteria)) *FilterStore {
	return &FilterStore{
		delay:    delay,
		onCommit: onCommit,
	}
}

// Update nhận update từng phần từ form và giữ invariant ngày:
// checkOut không bao giờ sớm hơn checkIn, dời checkIn qua sau checkOut
// thì checkOut bị xóa
func (s *FilterStore) Update(patch dto.FilterUpdate) dto.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.RoomTypeID != nil {
		s.current.RoomTypeID = *patch.RoomTypeID
	}
	if patch.Status != nil {
		s.current.Status = *patch.Status
	}
	if patch.Floor != nil {
		s.current.Floor = *patch.Floor
	}
	if patch.RoomNumber != nil {
		s.current.RoomNumber = *patch.RoomNumber
	}
	if patch.CustomerName != nil {
		s.current.CustomerName = *patch.CustomerName
	}
	if patch.CheckOutDate != nil {
		s.current.CheckOutDate = *patch.CheckOutDate
	}
	if patch.CheckInDate != nil {
		s.current.CheckInDate = *patch.CheckInDate
	}

	if s.current.CheckInDate != "" && s.current.CheckOutDate != "" {
		checkIn, errIn := time.Parse("2006-01-02", s.current.CheckInDate)
		checkOut, errOut := time.Parse("2006-01-02", s.current.CheckOutDate)
		if errIn == nil && errOut == nil && checkOut.Before(checkIn) {
			s.current.CheckOutDate = ""
		}
	}

	s.scheduleLocked()
	return s.current
}

// Clear xóa toàn bộ bộ lọc, kể cả khoảng ngày
func (s *FilterStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = dto.FilterCriteria{}
	s.scheduleLocked()
}

// scheduleLocked restart timer debounce, luôn chỉ có một timer chờ
func (s *FilterStore) scheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.commit)
}

func (s *FilterStore) commit() {
	s.mu.Lock()
	s.committed = s.current
	snapshot := s.committed
	callback := s.onCommit
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// Current trả về bộ lọc đang nhập trên form
func (s *FilterStore) Current() dto.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Committed trả về snapshot đã commit, dùng cho fetch và invalidation
func (s *FilterStore) Committed() dto.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// Restore nạp lại bộ lọc đã lưu của phiên trước, không qua debounce
func (s *FilterStore) Restore(filters dto.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = filters
	s.committed = filters
}

// StopTimer hủy timer chờ khi đóng màn hình
func (s *FilterStore) StopTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
