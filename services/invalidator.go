package services

import (
	"log"
	"sync"

	"frontdesk/constants"

	"github.com/gorilla/websocket"
)

// pushEvent chỉ đọc tên sự kiện, payload không được dùng
type pushEvent struct {
	Event string `json:"event"`
}

// Invalidator nghe kênh push của backend và trigger refresh grid.
// Sự kiện chỉ là tín hiệu invalidate, không merge payload.
// Vòng đời khớp với màn hình: Start khi mở, Stop khi đóng, không để
// handler nào sống sót sau khi đóng. Reconnect là việc của transport,
// tầng này không retry
type Invalidator struct {
	mu      sync.Mutex
	url     string
	conn    *websocket.Conn
	done    chan struct{}
	started bool
	refresh func()
}

// NewInvalidator tạo invalidator với callback refresh theo bộ lọc đã commit
func NewInvalidator(url string, refresh func()) *Invalidator {
	return &Invalidator{
		url:     url,
		refresh: refresh,
	}
}

// Start kết nối kênh push và bắt đầu nghe sự kiện
func (i *Invalidator) Start() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.started {
		return nil
	}

	conn, _, err := websocket.DefaultDialer.Dial(i.url, nil)
	if err != nil {
		return err
	}

	i.conn = conn
	i.done = make(chan struct{})
	i.started = true
	go i.readLoop(conn, i.done)
	return nil
}

func (i *Invalidator) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		var event pushEvent
		if err := conn.ReadJSON(&event); err != nil {
			return
		}

		switch event.Event {
		case constants.EventBookingStatusChange,
			constants.EventNewBooking,
			constants.EventBookingUpdated:
			i.refresh()
		default:
			// Sự kiện khác không liên quan tới màn hình phòng
		}
	}
}

// Stop đóng kết nối và chờ goroutine đọc thoát hẳn
func (i *Invalidator) Stop() {
	i.mu.Lock()
	if !i.started {
		i.mu.Unlock()
		return
	}
	conn := i.conn
	done := i.done
	i.conn = nil
	i.started = false
	i.mu.Unlock()

	if err := conn.Close(); err != nil {
		log.Printf("Lỗi khi đóng kênh push: %v", err)
	}
	<-done
}

// Started cho biết invalidator còn đang nghe hay không
func (i *Invalidator) Started() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.started
}
