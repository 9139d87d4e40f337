package services

import (
	"sync/atomic"
	"testing"
	"time"

	"frontdesk/dto"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFilterStoreDebounceSingleCommit(t *testing.T) {
	var commits int32
	store := NewFilterStore(30*time.Millisecond, func(dto.FilterCriteria) {
		atomic.AddInt32(&commits, 1)
	})

	// Gõ liên tục trong cửa sổ debounce
	store.Update(dto.FilterUpdate{RoomNumber: strPtr("2")})
	store.Update(dto.FilterUpdate{RoomNumber: strPtr("20")})
	store.Update(dto.FilterUpdate{RoomNumber: strPtr("204")})

	assert.Equal(t, int32(0), atomic.LoadInt32(&commits))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&commits) == 1
	}, time.Second, 10*time.Millisecond)

	// Không có commit thứ hai
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&commits))
	assert.Equal(t, "204", store.Committed().RoomNumber)
}

func TestFilterStoreCheckInAfterCheckOutClearsCheckOut(t *testing.T) {
	store := NewFilterStore(time.Hour, nil)

	store.Update(dto.FilterUpdate{
		CheckInDate:  strPtr("2024-05-01"),
		CheckOutDate: strPtr("2024-05-03"),
	})

	current := store.Update(dto.FilterUpdate{CheckInDate: strPtr("2024-05-10")})
	assert.Equal(t, "2024-05-10", current.CheckInDate)
	assert.Equal(t, "", current.CheckOutDate)
}

func TestFilterStoreCheckOutPreservedWhenOrderValid(t *testing.T) {
	store := NewFilterStore(time.Hour, nil)

	store.Update(dto.FilterUpdate{
		CheckInDate:  strPtr("2024-05-01"),
		CheckOutDate: strPtr("2024-05-03"),
	})

	current := store.Update(dto.FilterUpdate{CheckInDate: strPtr("2024-05-02")})
	assert.Equal(t, "2024-05-02", current.CheckInDate)
	assert.Equal(t, "2024-05-03", current.CheckOutDate)
}

func TestFilterStoreClearResetsEverything(t *testing.T) {
	store := NewFilterStore(10*time.Millisecond, nil)

	store.Update(dto.FilterUpdate{
		RoomTypeID:   strPtr("t1"),
		Status:       strPtr("Available"),
		Floor:        strPtr("3"),
		RoomNumber:   strPtr("301"),
		CustomerName: strPtr("Asha"),
		CheckInDate:  strPtr("2024-05-01"),
		CheckOutDate: strPtr("2024-05-03"),
	})

	store.Clear()
	assert.Equal(t, dto.FilterCriteria{}, store.Current())

	assert.Eventually(t, func() bool {
		return store.Committed() == dto.FilterCriteria{}
	}, time.Second, 5*time.Millisecond)
}

func TestFilterStoreRestoreSkipsDebounce(t *testing.T) {
	var commits int32
	store := NewFilterStore(10*time.Millisecond, func(dto.FilterCriteria) {
		atomic.AddInt32(&commits, 1)
	})

	saved := dto.FilterCriteria{RoomTypeID: "t1", CheckInDate: "2024-05-01", CheckOutDate: "2024-05-03"}
	store.Restore(saved)

	assert.Equal(t, saved, store.Current())
	assert.Equal(t, saved, store.Committed())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&commits))
}
