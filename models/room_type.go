package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RoomType là loại phòng, fetch một lần mỗi phiên và không đổi ở tầng này
type RoomType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"basePrice"`
}

// RoomTypeRef xử lý field `room` từ backend: có thể là id hoặc object đầy đủ.
// Giải quyết một lần tại boundary, phía sau chỉ dùng TypeID()/Resolved()
type RoomTypeRef struct {
	ID       string
	Embedded *RoomType
}

// TypeID trả về id loại phòng bất kể backend trả dạng nào
func (r RoomTypeRef) TypeID() string {
	if r.Embedded != nil {
		return r.Embedded.ID
	}
	return r.ID
}

// Resolved trả về RoomType đầy đủ nếu backend có embed
func (r RoomTypeRef) Resolved() (*RoomType, bool) {
	if r.Embedded != nil {
		return r.Embedded, true
	}
	return nil, false
}

func (r *RoomTypeRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '{' {
		var rt RoomType
		if err := json.Unmarshal(b, &rt); err != nil {
			return fmt.Errorf("room không đúng định dạng object: %w", err)
		}
		r.Embedded = &rt
		return nil
	}

	// id dạng chuỗi hoặc số
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		r.ID = num.String()
		return nil
	}
	return fmt.Errorf("room không đúng định dạng id: %s", string(b))
}

func (r RoomTypeRef) MarshalJSON() ([]byte, error) {
	if r.Embedded != nil {
		return json.Marshal(r.Embedded)
	}
	return json.Marshal(r.ID)
}
