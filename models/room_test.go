package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTypeRefDecodeEmbeddedObject(t *testing.T) {
	var room RoomUnit
	raw := `{"id":"r1","roomNumber":"204","room":{"id":"t1","name":"Deluxe","basePrice":120},"status":"Available"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &room))

	assert.Equal(t, "t1", room.Room.TypeID())
	resolved, ok := room.Room.Resolved()
	require.True(t, ok)
	assert.Equal(t, "Deluxe", resolved.Name)
	assert.Equal(t, 120.0, resolved.BasePrice)
}

func TestRoomTypeRefDecodeStringID(t *testing.T) {
	var room RoomUnit
	raw := `{"id":"r1","roomNumber":"204","room":"t1","status":"Available"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &room))

	assert.Equal(t, "t1", room.Room.TypeID())
	_, ok := room.Room.Resolved()
	assert.False(t, ok)
}

func TestRoomTypeRefDecodeNumericID(t *testing.T) {
	var room RoomUnit
	raw := `{"id":"r1","roomNumber":"204","room":42,"status":"Available"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &room))
	assert.Equal(t, "42", room.Room.TypeID())
}

func TestRoomTypeRefDecodeNull(t *testing.T) {
	var room RoomUnit
	raw := `{"id":"r1","roomNumber":"204","room":null,"status":"Available"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &room))
	assert.Equal(t, "", room.Room.TypeID())
}

func TestEffectiveStatusDateWiseWins(t *testing.T) {
	room := RoomUnit{Status: "Available", DateWiseStatus: "Occupied"}
	assert.Equal(t, "Occupied", room.EffectiveStatus())
}

func TestEffectiveStatusFallsBackToStatus(t *testing.T) {
	room := RoomUnit{Status: "Maintenance"}
	assert.Equal(t, "Maintenance", room.EffectiveStatus())
}

func TestPendingBookingUnassigned(t *testing.T) {
	var booking PendingBooking
	raw := `{"id":"b1","fullName":"Asha","room":"t1","checkInDate":"2024-05-01"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &booking))
	assert.True(t, booking.Unassigned())

	booking.RoomID = "r9"
	assert.False(t, booking.Unassigned())
}
