package service

import (
	"time"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/utils"
)

// BookingService owns the booking lifecycle: create, edit, cancel,
// approve and decline. Every mutation re-validates dates, capacity, room
// status and overlap under a per-room lock, so validation and persistence
// act as one unit.
type BookingService struct {
	rooms    repository.RoomStore
	bookings repository.BookingStore
	locks    *roomLocks
}

func NewBookingService(rooms repository.RoomStore, bookings repository.BookingStore) *BookingService {
	return &BookingService{rooms: rooms, bookings: bookings, locks: newRoomLocks()}
}

// StayPrice returns the total price in cents for a stay: nights times the
// room's nightly rate.
func StayPrice(room *db.Room, checkIn, checkOut time.Time) (int64, error) {
	nights := utils.Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, apperr.ErrInvalidDateRange
	}
	return int64(nights) * room.PriceCents, nil
}

// HasConflict reports whether a pending or approved booking for the room
// intersects the half-open range [checkIn, checkOut). Touching boundaries
// do not conflict; pass excludeID to skip one booking, 0 for none.
func (s *BookingService) HasConflict(roomNumber string, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	return s.bookings.HasOverlap(roomNumber, checkIn, checkOut, excludeID)
}

func (s *BookingService) Create(p auth.Principal, req entities.BookingRequest) (*db.Booking, error) {
	room, err := s.rooms.GetRoom(req.RoomNumber)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(room.RoomNumber)
	defer unlock()

	total, err := s.validateStay(room, req.CheckIn, req.CheckOut, req.Guests, 0)
	if err != nil {
		return nil, err
	}

	b := &db.Booking{
		UserID:     p.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalCents: total,
		Status:     db.BookingStatusPending,
		Notes:      req.Notes,
	}
	if err := s.bookings.CreateBooking(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) Edit(p auth.Principal, id int64, upd entities.BookingUpdate) (*db.Booking, error) {
	// First read only determines which rooms to lock.
	b, err := s.bookings.GetBooking(id)
	if err != nil {
		return nil, err
	}
	targetRoom := b.RoomNumber
	if upd.RoomNumber != nil {
		targetRoom = *upd.RoomNumber
	}
	room, err := s.rooms.GetRoom(targetRoom)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquireAll(b.RoomNumber, room.RoomNumber)
	defer unlock()

	// Re-read and guard under the lock: a staff decision or another edit
	// may have landed since the first read.
	b, err = s.bookings.GetBooking(id)
	if err != nil {
		return nil, err
	}
	if b.UserID != p.ID {
		return nil, apperr.ErrForbidden
	}
	if b.Status != db.BookingStatusPending {
		return nil, apperr.ErrNotEditable
	}

	next := *b
	next.RoomNumber = room.RoomNumber
	if upd.CheckIn != nil {
		next.CheckIn = *upd.CheckIn
	}
	if upd.CheckOut != nil {
		next.CheckOut = *upd.CheckOut
	}
	if upd.Guests != nil {
		next.Guests = *upd.Guests
	}
	if upd.Notes != nil {
		next.Notes = *upd.Notes
	}

	// The booking being edited must not conflict with itself.
	total, err := s.validateStay(room, next.CheckIn, next.CheckOut, next.Guests, b.ID)
	if err != nil {
		return nil, err
	}
	next.TotalCents = total

	if err := s.bookings.UpdateBooking(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *BookingService) Cancel(p auth.Principal, id int64) (*db.Booking, error) {
	b, err := s.bookings.GetBooking(id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(b.RoomNumber)
	defer unlock()

	// Re-read and guard under the lock, same as Edit.
	b, err = s.bookings.GetBooking(id)
	if err != nil {
		return nil, err
	}
	if b.UserID != p.ID {
		return nil, apperr.ErrForbidden
	}
	if b.Status != db.BookingStatusPending {
		return nil, apperr.ErrNotCancellable
	}

	if err := s.bookings.SetBookingStatus(id, db.BookingStatusCancelled); err != nil {
		return nil, err
	}
	b.Status = db.BookingStatusCancelled
	return b, nil
}

func (s *BookingService) Approve(p auth.Principal, id int64) (*db.Booking, error) {
	return s.setStatusAsStaff(p, id, db.BookingStatusApproved)
}

func (s *BookingService) Decline(p auth.Principal, id int64) (*db.Booking, error) {
	return s.setStatusAsStaff(p, id, db.BookingStatusDeclined)
}

// setStatusAsStaff overwrites the booking status unconditionally: staff
// can re-approve a declined booking or decline an approved one.
func (s *BookingService) setStatusAsStaff(p auth.Principal, id int64, status string) (*db.Booking, error) {
	if !p.IsStaff {
		return nil, apperr.ErrForbidden
	}
	b, err := s.bookings.GetBooking(id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(b.RoomNumber)
	defer unlock()

	if err := s.bookings.SetBookingStatus(id, status); err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

// ListForUser returns the caller's own bookings, most recent check-in first.
func (s *BookingService) ListForUser(p auth.Principal) ([]db.Booking, error) {
	return s.bookings.ListForUser(p.ID)
}

// ListAll returns every booking, newest first. Staff only.
func (s *BookingService) ListAll(p auth.Principal) ([]db.Booking, error) {
	if !p.IsStaff {
		return nil, apperr.ErrForbidden
	}
	return s.bookings.ListAll()
}

// ListPending returns the approval queue ordered by check-in. Staff only.
func (s *BookingService) ListPending(p auth.Principal) ([]db.Booking, error) {
	if !p.IsStaff {
		return nil, apperr.ErrForbidden
	}
	return s.bookings.ListPending()
}

// validateStay runs every create/edit guard in order and returns the
// computed total price. Must be called with the room lock held.
func (s *BookingService) validateStay(room *db.Room, checkIn, checkOut time.Time, guests int, excludeID int64) (int64, error) {
	total, err := StayPrice(room, checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	if guests < 1 || guests > room.Capacity {
		return 0, apperr.ErrCapacityExceeded
	}
	if !room.Operational() {
		return 0, apperr.ErrRoomUnavailable
	}
	conflict, err := s.bookings.HasOverlap(room.RoomNumber, checkIn, checkOut, excludeID)
	if err != nil {
		return 0, err
	}
	if conflict {
		return 0, apperr.ErrConflict
	}
	return total, nil
}
