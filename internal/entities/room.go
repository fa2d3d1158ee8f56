package entities

// RoomInput is the staff-facing payload for creating a room.
type RoomInput struct {
	RoomNumber  string `json:"room_number"`
	RoomType    string `json:"room_type"`
	PriceCents  int64  `json:"price_cents"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// RoomUpdate is a partial edit of a room. Nil fields keep their current value.
type RoomUpdate struct {
	RoomType    *string `json:"room_type,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}
