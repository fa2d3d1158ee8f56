package service

import (
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/utils"
)

// AvailabilityService answers "which rooms are free for these dates".
type AvailabilityService struct {
	rooms    repository.RoomStore
	bookings repository.BookingStore
}

func NewAvailabilityService(rooms repository.RoomStore, bookings repository.BookingStore) *AvailabilityService {
	return &AvailabilityService{rooms: rooms, bookings: bookings}
}

// Search returns operational rooms matching the filters with no pending
// or approved booking overlapping the range, ordered by room number.
// Pure read, no side effects.
func (s *AvailabilityService) Search(req entities.SearchRequest) ([]db.Room, error) {
	if utils.Nights(req.CheckIn, req.CheckOut) <= 0 {
		return nil, apperr.ErrInvalidDateRange
	}

	candidates, err := s.rooms.ListRooms(repository.RoomFilter{
		RoomType:    req.RoomType,
		MinCapacity: req.MinGuests,
	})
	if err != nil {
		return nil, err
	}

	var available []db.Room
	for _, room := range candidates {
		if !room.Operational() {
			continue
		}
		conflict, err := s.bookings.HasOverlap(room.RoomNumber, req.CheckIn, req.CheckOut, 0)
		if err != nil {
			return nil, err
		}
		if !conflict {
			available = append(available, room)
		}
	}
	return available, nil
}
