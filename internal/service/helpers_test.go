package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
)

var (
	guest      = auth.Principal{ID: 1}
	otherGuest = auth.Principal{ID: 2}
	staff      = auth.Principal{ID: 99, IsStaff: true}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRoom(t *testing.T, store *repository.MemoryStore, number string, capacity int, priceCents int64) {
	t.Helper()
	err := store.CreateRoom(&db.Room{
		RoomNumber: number,
		RoomType:   db.RoomTypeDouble,
		PriceCents: priceCents,
		Capacity:   capacity,
		Status:     db.RoomStatusAvailable,
	})
	require.NoError(t, err)
}

func stay(room string, checkIn, checkOut time.Time, guests int) entities.BookingRequest {
	return entities.BookingRequest{
		RoomNumber: room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
	}
}
