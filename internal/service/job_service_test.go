package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
)

func TestDeclineStalePending(t *testing.T) {
	store := repository.NewMemoryStore()
	job := NewJobService(store)

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	nextWeek := time.Now().UTC().AddDate(0, 0, 7)

	stalePending := &db.Booking{
		UserID: 1, RoomNumber: "101", Guests: 1,
		CheckIn: yesterday, CheckOut: yesterday.AddDate(0, 0, 2),
		Status: db.BookingStatusPending,
	}
	futurePending := &db.Booking{
		UserID: 1, RoomNumber: "101", Guests: 1,
		CheckIn: nextWeek, CheckOut: nextWeek.AddDate(0, 0, 2),
		Status: db.BookingStatusPending,
	}
	pastApproved := &db.Booking{
		UserID: 2, RoomNumber: "102", Guests: 1,
		CheckIn: yesterday, CheckOut: yesterday.AddDate(0, 0, 1),
		Status: db.BookingStatusApproved,
	}
	require.NoError(t, store.CreateBooking(stalePending))
	require.NoError(t, store.CreateBooking(futurePending))
	require.NoError(t, store.CreateBooking(pastApproved))

	require.NoError(t, job.DeclineStalePending())

	got, err := store.GetBooking(stalePending.ID)
	require.NoError(t, err)
	assert.Equal(t, db.BookingStatusDeclined, got.Status)

	got, err = store.GetBooking(futurePending.ID)
	require.NoError(t, err)
	assert.Equal(t, db.BookingStatusPending, got.Status, "future pending bookings stay untouched")

	got, err = store.GetBooking(pastApproved.ID)
	require.NoError(t, err)
	assert.Equal(t, db.BookingStatusApproved, got.Status, "approved bookings stay untouched")

	// Second pass finds nothing new.
	require.NoError(t, job.DeclineStalePending())
}
