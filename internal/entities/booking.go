package entities

import "time"

// BookingRequest carries everything needed to create a booking.
type BookingRequest struct {
	RoomNumber string    `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
	Notes      string    `json:"notes"`
}

// BookingUpdate is a partial edit of a pending booking. Nil fields keep
// their current value.
type BookingUpdate struct {
	RoomNumber *string    `json:"room_number,omitempty"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Guests     *int       `json:"guests,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

// SearchRequest asks which rooms are free for a date range.
type SearchRequest struct {
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	RoomType  string    `json:"room_type,omitempty"`
	MinGuests int       `json:"min_guests,omitempty"`
}
