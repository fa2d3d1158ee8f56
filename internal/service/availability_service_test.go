package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
)

func newAvailabilityService(t *testing.T) (*AvailabilityService, *BookingService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewAvailabilityService(store, store), NewBookingService(store, store), store
}

func TestSearchReturnsRoomsSortedByNumber(t *testing.T) {
	avail, _, store := newAvailabilityService(t)
	seedRoom(t, store, "103", 2, 10000)
	seedRoom(t, store, "101", 2, 10000)
	seedRoom(t, store, "102", 2, 10000)

	rooms, err := avail.Search(entities.SearchRequest{
		CheckIn:  date(2024, time.February, 1),
		CheckOut: date(2024, time.February, 3),
	})
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "102", rooms[1].RoomNumber)
	assert.Equal(t, "103", rooms[2].RoomNumber)
}

func TestSearchExcludesConflictingRooms(t *testing.T) {
	avail, bookings, store := newAvailabilityService(t)
	seedRoom(t, store, "101", 2, 10000)
	seedRoom(t, store, "102", 2, 10000)

	_, err := bookings.Create(guest, stay("101", date(2024, time.February, 1), date(2024, time.February, 5), 1))
	require.NoError(t, err)

	rooms, err := avail.Search(entities.SearchRequest{
		CheckIn:  date(2024, time.February, 3),
		CheckOut: date(2024, time.February, 6),
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "102", rooms[0].RoomNumber)

	// A range that only touches the existing check-out is free.
	rooms, err = avail.Search(entities.SearchRequest{
		CheckIn:  date(2024, time.February, 5),
		CheckOut: date(2024, time.February, 7),
	})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestSearchExcludesNonOperationalRooms(t *testing.T) {
	avail, _, store := newAvailabilityService(t)
	seedRoom(t, store, "101", 2, 10000)
	require.NoError(t, store.CreateRoom(&db.Room{
		RoomNumber: "102", RoomType: db.RoomTypeDouble, PriceCents: 10000, Capacity: 2,
		Status: db.RoomStatusMaintenance,
	}))
	require.NoError(t, store.CreateRoom(&db.Room{
		RoomNumber: "103", RoomType: db.RoomTypeDouble, PriceCents: 10000, Capacity: 2,
		Status: db.RoomStatusOutOfService,
	}))

	rooms, err := avail.Search(entities.SearchRequest{
		CheckIn:  date(2024, time.February, 1),
		CheckOut: date(2024, time.February, 3),
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
}

func TestSearchAppliesFilters(t *testing.T) {
	avail, _, store := newAvailabilityService(t)
	require.NoError(t, store.CreateRoom(&db.Room{
		RoomNumber: "101", RoomType: db.RoomTypeSingle, PriceCents: 8000, Capacity: 1,
		Status: db.RoomStatusAvailable,
	}))
	require.NoError(t, store.CreateRoom(&db.Room{
		RoomNumber: "201", RoomType: db.RoomTypeSuite, PriceCents: 30000, Capacity: 4,
		Status: db.RoomStatusAvailable,
	}))

	rooms, err := avail.Search(entities.SearchRequest{
		CheckIn:  date(2024, time.February, 1),
		CheckOut: date(2024, time.February, 3),
		RoomType: db.RoomTypeSuite,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "201", rooms[0].RoomNumber)

	rooms, err = avail.Search(entities.SearchRequest{
		CheckIn:   date(2024, time.February, 1),
		CheckOut:  date(2024, time.February, 3),
		MinGuests: 3,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "201", rooms[0].RoomNumber)
}

func TestSearchRejectsInvalidRange(t *testing.T) {
	avail, _, store := newAvailabilityService(t)
	seedRoom(t, store, "101", 2, 10000)

	_, err := avail.Search(entities.SearchRequest{
		CheckIn:  date(2024, time.February, 3),
		CheckOut: date(2024, time.February, 1),
	})
	require.ErrorIs(t, err, apperr.ErrInvalidDateRange)

	_, err = avail.Search(entities.SearchRequest{
		CheckIn:  date(2024, time.February, 3),
		CheckOut: date(2024, time.February, 3),
	})
	require.ErrorIs(t, err, apperr.ErrInvalidDateRange)
}
