package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushServer giả kênh push của backend, đẩy sự kiện qua channel
type pushServer struct {
	server *httptest.Server
	events chan map[string]interface{}
}

func newPushServer(t *testing.T) *pushServer {
	t.Helper()
	upgrader := websocket.Upgrader{}
	ps := &pushServer{events: make(chan map[string]interface{}, 16)}
	ps.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for event := range ps.events {
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}))
	t.Cleanup(func() {
		close(ps.events)
		ps.server.Close()
	})
	return ps
}

func (ps *pushServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ps.server.URL, "http")
}

func TestInvalidatorRefreshesOnBookingEvents(t *testing.T) {
	ps := newPushServer(t)

	var refreshes int32
	inv := NewInvalidator(ps.wsURL(), func() {
		atomic.AddInt32(&refreshes, 1)
	})
	require.NoError(t, inv.Start())
	defer inv.Stop()

	ps.events <- map[string]interface{}{"event": "bookingStatusChange", "bookingId": "b1", "status": "Cancelled"}
	ps.events <- map[string]interface{}{"event": "newBooking", "bookingId": "b2"}
	ps.events <- map[string]interface{}{"event": "bookingUpdated", "bookingId": "b3"}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&refreshes) == 3
	}, time.Second, 10*time.Millisecond)
}

func TestInvalidatorIgnoresUnrelatedEvents(t *testing.T) {
	ps := newPushServer(t)

	var refreshes int32
	inv := NewInvalidator(ps.wsURL(), func() {
		atomic.AddInt32(&refreshes, 1)
	})
	require.NoError(t, inv.Start())
	defer inv.Stop()

	ps.events <- map[string]interface{}{"event": "chatMessage", "text": "hello"}
	ps.events <- map[string]interface{}{"event": "newBooking"}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&refreshes) == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
}

func TestInvalidatorStopEndsListening(t *testing.T) {
	ps := newPushServer(t)

	var refreshes int32
	inv := NewInvalidator(ps.wsURL(), func() {
		atomic.AddInt32(&refreshes, 1)
	})
	require.NoError(t, inv.Start())
	assert.True(t, inv.Started())

	inv.Stop()
	assert.False(t, inv.Started())

	// Sự kiện đến sau khi đóng không được xử lý
	ps.events <- map[string]interface{}{"event": "newBooking"}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&refreshes))

	// Stop lần hai không panic
	inv.Stop()
}

func TestInvalidatorStartFailsWhenUnreachable(t *testing.T) {
	inv := NewInvalidator("ws://127.0.0.1:1/ws", func() {})
	err := inv.Start()
	require.Error(t, err)
	assert.False(t, inv.Started())
}
