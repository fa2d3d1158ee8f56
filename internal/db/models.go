package db

import "time"

const (
	RoomTypeSingle     = "single"
	RoomTypeDouble     = "double"
	RoomTypeSuite      = "suite"
	RoomTypeConference = "conference"
)

const (
	RoomStatusAvailable    = "available"
	RoomStatusBooked       = "booked"
	RoomStatusMaintenance  = "maintenance"
	RoomStatusOutOfService = "out_of_service"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusDeclined  = "declined"
	BookingStatusCancelled = "cancelled"
)

type Room struct {
	ID          int
	RoomNumber  string
	RoomType    string
	PriceCents  int64
	Capacity    int
	Status      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Operational reports whether the room can take bookings at all.
// Maintenance and out-of-service rooms never show up as available,
// regardless of what the booking ledger says.
func (r Room) Operational() bool {
	return r.Status != RoomStatusMaintenance && r.Status != RoomStatusOutOfService
}

type Booking struct {
	ID         int64
	UserID     int64
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalCents int64
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Blocking reports whether the booking occupies its date range for
// conflict purposes. Declined and cancelled bookings never block.
func (b Booking) Blocking() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusApproved
}

type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	IsStaff      bool
	CreatedAt    time.Time
}

func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeConference:
		return true
	}
	return false
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusBooked, RoomStatusMaintenance, RoomStatusOutOfService:
		return true
	}
	return false
}
