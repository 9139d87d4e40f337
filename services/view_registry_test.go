package services

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"frontdesk/errors"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRegistryForTest dựng registry trỏ vào một ws server đếm kết nối đang sống
func newRegistryForTest(t *testing.T) (*ViewRegistry, *int32) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	var active int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		atomic.AddInt32(&active, 1)
		defer atomic.AddInt32(&active, -1)
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	reg := NewViewRegistry(ViewRegistryOptions{
		Upstream: NewUpstream("http://127.0.0.1:1"),
		Redis:    redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}),
		PushURL:  "ws" + strings.TrimPrefix(server.URL, "http"),
	})
	return reg, &active
}

func TestViewRegistryConcurrentOpenSharesOneSession(t *testing.T) {
	reg, active := newRegistryForTest(t)

	var wg sync.WaitGroup
	views := make([]*ViewSession, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			views[i], errs[i] = reg.Open(context.Background(), "tab-1")
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Same(t, views[0], views[1])

	// Bên thua cuộc đua phải gỡ invalidator của mình, chỉ còn một kết nối push
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(active) == 1
	}, time.Second, 10*time.Millisecond)

	reg.Close("tab-1")
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(active) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestViewRegistryOpenTwiceReturnsSameSession(t *testing.T) {
	reg, active := newRegistryForTest(t)

	first, err := reg.Open(context.Background(), "tab-2")
	require.NoError(t, err)
	second, err := reg.Open(context.Background(), "tab-2")
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(active) == 1
	}, time.Second, 10*time.Millisecond)
	reg.Close("tab-2")
}

func TestViewRegistryGetUnopenedSession(t *testing.T) {
	reg := NewViewRegistry(ViewRegistryOptions{})

	_, err := reg.Get("ghost")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNoSession, errors.GetAppError(err).Code)
	assert.True(t, stderrors.Is(err, errors.ErrViewNotOpen))
}

func TestViewRegistrySweepIdleClosesStaleSessions(t *testing.T) {
	reg, active := newRegistryForTest(t)

	view, err := reg.Open(context.Background(), "tab-3")
	require.NoError(t, err)

	view.mu.Lock()
	view.lastTouch = time.Now().Add(-time.Hour)
	view.mu.Unlock()

	assert.Equal(t, 1, reg.SweepIdle(30*time.Minute))
	_, err = reg.Get("tab-3")
	assert.Error(t, err)
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(active) == 0
	}, time.Second, 10*time.Millisecond)
}
