package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

// ViewSession là toàn bộ state của một tab đang mở màn hình quản lý số phòng:
// bộ lọc + fetch + invalidator + modal gán phòng. Mỗi phiên sở hữu state
// của riêng mình, đóng màn hình là gỡ sạch
type ViewSession struct {
	ID          string
	Filters     *FilterStore
	Fetcher     *FetchController
	Invalidator *Invalidator
	Allocation  *AllocationFlow

	mu        sync.Mutex
	lastTouch time.Time
}

// Touch đánh dấu phiên còn được dùng
func (v *ViewSession) Touch() {
	v.mu.Lock()
	v.lastTouch = time.Now()
	v.mu.Unlock()
}

// IdleSince trả về thời điểm hoạt động cuối
func (v *ViewSession) IdleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastTouch
}

// ViewRegistry quản lý các phiên xem đang mở theo sessionId
type ViewRegistry struct {
	mu       sync.Mutex
	sessions map[string]*ViewSession
	upstream *Upstream
	rdb      *redis.Client
	ws       *melody.Melody
	pushURL  string
	logger   logger.Logger
}

// ViewRegistryOptions gom dependency của registry
type ViewRegistryOptions struct {
	Upstream *Upstream
	Redis    *redis.Client
	Melody   *melody.Melody
	PushURL  string
	Logger   logger.Logger
}

// NewViewRegistry tạo registry dùng chung cho các controller
func NewViewRegistry(opts ViewRegistryOptions) *ViewRegistry {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ViewRegistry{
		sessions: make(map[string]*ViewSession),
		upstream: opts.Upstream,
		rdb:      opts.Redis,
		ws:       opts.Melody,
		pushURL:  opts.PushURL,
		logger:   l,
	}
}

// Open tạo phiên xem mới cho sessionId và bật invalidator.
// Bộ lọc của phiên trước (nếu còn trong Redis) được nạp lại
func (r *ViewRegistry) Open(ctx context.Context, sessionID string) (*ViewSession, error) {
	r.mu.Lock()
	if existing, ok := r.sessions[sessionID]; ok {
		r.mu.Unlock()
		existing.Touch()
		return existing, nil
	}
	r.mu.Unlock()

	view := &ViewSession{ID: sessionID, lastTouch: time.Now()}

	view.Fetcher = NewFetchController(r.upstream, func(rooms []models.RoomUnit) {
		r.broadcastGrid(sessionID, rooms)
	})

	refresh := func() {
		committed := view.Filters.Committed()
		if err := view.Fetcher.Refresh(context.Background(), committed); err != nil {
			if err != errors.ErrMissingDateRange && err != errors.ErrStaleResponse {
				r.logger.Error("Lỗi refresh grid phiên %s: %v", sessionID, err)
			}
		}
	}

	view.Filters = NewFilterStore(FilterDebounce, func(committed dto.FilterCriteria) {
		// Snapshot rỗng không đáng giữ, xóa luôn key trong Redis
		if committed == (dto.FilterCriteria{}) {
			if err := ClearLastFilters(context.Background(), r.rdb, sessionID); err != nil {
				r.logger.Error("Lỗi xóa bộ lọc phiên %s: %v", sessionID, err)
			}
		} else if err := SaveLastFilters(context.Background(), r.rdb, sessionID, committed); err != nil {
			r.logger.Error("Lỗi lưu bộ lọc phiên %s: %v", sessionID, err)
		}
		refresh()
	})

	if saved, err := GetLastFilters(ctx, r.rdb, sessionID); err == nil && saved != nil {
		view.Filters.Restore(*saved)
	}

	view.Invalidator = NewInvalidator(r.pushURL, refresh)
	view.Allocation = NewAllocationFlow(r.upstream, refresh)

	if err := view.Invalidator.Start(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUpstream, "Không thể kết nối kênh thông báo", err)
	}

	r.mu.Lock()
	if existing, ok := r.sessions[sessionID]; ok {
		r.mu.Unlock()
		// Một request open khác đã đăng ký trước trong lúc mình dial,
		// gỡ những gì vừa dựng để không còn listener chạy vô chủ
		view.Invalidator.Stop()
		view.Filters.StopTimer()
		existing.Touch()
		return existing, nil
	}
	r.sessions[sessionID] = view
	r.mu.Unlock()
	return view, nil
}

// Get trả về phiên đang mở của sessionId
func (r *ViewRegistry) Get(sessionID string) (*ViewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	view, ok := r.sessions[sessionID]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeNoSession, "Màn hình phòng chưa được mở", errors.ErrViewNotOpen)
	}
	view.Touch()
	return view, nil
}

// Close đóng phiên: dừng invalidator, hủy debounce, đóng modal
func (r *ViewRegistry) Close(sessionID string) {
	r.mu.Lock()
	view, ok := r.sessions[sessionID]
	if ok {
		delete(r.sessions, sessionID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	view.Invalidator.Stop()
	view.Filters.StopTimer()
	view.Allocation.Close()
}

// SweepIdle đóng các phiên không hoạt động quá maxIdle, gọi từ cron
func (r *ViewRegistry) SweepIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	var stale []string
	cutoff := time.Now().Add(-maxIdle)
	for id, view := range r.sessions {
		if view.IdleSince().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	r.mu.Unlock()

	for _, id := range stale {
		r.Close(id)
	}
	if len(stale) > 0 {
		r.logger.Info("Đã dọn %d phiên xem không hoạt động", len(stale))
	}
	return len(stale)
}

// broadcastGrid đẩy grid mới tới các kết nối ws của đúng phiên đó
func (r *ViewRegistry) broadcastGrid(sessionID string, rooms []models.RoomUnit) {
	if r.ws == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type":      "roomGrid",
		"sessionId": sessionID,
		"rooms":     rooms,
	})
	if err != nil {
		r.logger.Error("Lỗi marshal grid: %v", err)
		return
	}
	r.ws.BroadcastFilter(payload, func(s *melody.Session) bool {
		val, exists := s.Get("sessionId")
		return exists && val == sessionID
	})
}
