package repository

import (
	"time"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
)

// RoomFilter narrows ListRooms. Zero values mean "no filter".
type RoomFilter struct {
	RoomType    string
	MinCapacity int
}

// RoomStore is the room catalog persistence contract. Reads are never
// cached: a price or status change is visible to the next conflict check.
type RoomStore interface {
	GetRoom(roomNumber string) (*db.Room, error)
	ListRooms(filter RoomFilter) ([]db.Room, error)
	CreateRoom(room *db.Room) error
	UpdateRoom(room *db.Room) error
	DeleteRoom(roomNumber string) error
	CountRooms() (int, error)
	CountRoomsByType() (map[string]int, error)
}

// BookingStore is the booking ledger persistence contract.
type BookingStore interface {
	GetBooking(id int64) (*db.Booking, error)
	CreateBooking(b *db.Booking) error
	UpdateBooking(b *db.Booking) error
	SetBookingStatus(id int64, status string) error
	SetBookingStatuses(ids []int64, status string) error

	// HasOverlap reports whether any pending or approved booking for the
	// room intersects [checkIn, checkOut). excludeID skips one booking,
	// so an edit can be re-validated against everything but itself;
	// pass 0 to exclude nothing.
	HasOverlap(roomNumber string, checkIn, checkOut time.Time, excludeID int64) (bool, error)

	ListForUser(userID int64) ([]db.Booking, error) // check-in descending
	ListAll() ([]db.Booking, error)                 // creation time descending
	ListPending() ([]db.Booking, error)             // check-in ascending
	ListRecent(limit int) ([]db.Booking, error)

	CountBookings() (int, error)
	CountByStatus(status string) (int, error)
	CountApprovedCheckingIn(day time.Time) (int, error)
	CountBlockingForRoom(roomNumber string) (int, error)
	StalePendingIDs(before time.Time) ([]int64, error)
}

// UserStore persists account records for the identity layer.
type UserStore interface {
	GetUser(id int64) (*db.User, error)
	GetUserByEmail(email string) (*db.User, error)
	CreateUser(u *db.User) error
	CountUsers() (int, error)
}
