package service

import (
	"fmt"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
)

// RoomService exposes the room catalog plus the staff mutations. Catalog
// reads go straight to the store, so price and status edits are visible
// to the very next conflict check.
type RoomService struct {
	rooms    repository.RoomStore
	bookings repository.BookingStore
}

func NewRoomService(rooms repository.RoomStore, bookings repository.BookingStore) *RoomService {
	return &RoomService{rooms: rooms, bookings: bookings}
}

func (s *RoomService) Get(roomNumber string) (*db.Room, error) {
	return s.rooms.GetRoom(roomNumber)
}

func (s *RoomService) List(filter repository.RoomFilter) ([]db.Room, error) {
	return s.rooms.ListRooms(filter)
}

func (s *RoomService) Create(p auth.Principal, in entities.RoomInput) (*db.Room, error) {
	if !p.IsStaff {
		return nil, apperr.ErrForbidden
	}
	if in.Status == "" {
		in.Status = db.RoomStatusAvailable
	}
	if err := validateRoomInput(in); err != nil {
		return nil, err
	}
	room := &db.Room{
		RoomNumber:  in.RoomNumber,
		RoomType:    in.RoomType,
		PriceCents:  in.PriceCents,
		Capacity:    in.Capacity,
		Status:      in.Status,
		Description: in.Description,
	}
	if err := s.rooms.CreateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Update(p auth.Principal, roomNumber string, upd entities.RoomUpdate) (*db.Room, error) {
	if !p.IsStaff {
		return nil, apperr.ErrForbidden
	}
	room, err := s.rooms.GetRoom(roomNumber)
	if err != nil {
		return nil, err
	}
	if upd.RoomType != nil {
		room.RoomType = *upd.RoomType
	}
	if upd.PriceCents != nil {
		room.PriceCents = *upd.PriceCents
	}
	if upd.Capacity != nil {
		room.Capacity = *upd.Capacity
	}
	if upd.Status != nil {
		room.Status = *upd.Status
	}
	if upd.Description != nil {
		room.Description = *upd.Description
	}
	if err := validateRoomInput(entities.RoomInput{
		RoomNumber: room.RoomNumber,
		RoomType:   room.RoomType,
		PriceCents: room.PriceCents,
		Capacity:   room.Capacity,
		Status:     room.Status,
	}); err != nil {
		return nil, err
	}
	if err := s.rooms.UpdateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes a room. Rooms with pending or approved bookings cannot
// be deleted.
func (s *RoomService) Delete(p auth.Principal, roomNumber string) error {
	if !p.IsStaff {
		return apperr.ErrForbidden
	}
	if _, err := s.rooms.GetRoom(roomNumber); err != nil {
		return err
	}
	blocking, err := s.bookings.CountBlockingForRoom(roomNumber)
	if err != nil {
		return err
	}
	if blocking > 0 {
		return apperr.ErrRoomHasBookings
	}
	return s.rooms.DeleteRoom(roomNumber)
}

func validateRoomInput(in entities.RoomInput) error {
	if in.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", apperr.ErrInvalidInput)
	}
	if !db.ValidRoomType(in.RoomType) {
		return fmt.Errorf("%w: unknown room type %q", apperr.ErrInvalidInput, in.RoomType)
	}
	if !db.ValidRoomStatus(in.Status) {
		return fmt.Errorf("%w: unknown room status %q", apperr.ErrInvalidInput, in.Status)
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", apperr.ErrInvalidInput)
	}
	if in.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", apperr.ErrInvalidInput)
	}
	return nil
}
