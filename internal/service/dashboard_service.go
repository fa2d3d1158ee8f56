package service

import (
	"time"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
)

const recentBookingsLimit = 10

// DashboardService aggregates the figures for the staff overview page.
type DashboardService struct {
	rooms    repository.RoomStore
	bookings repository.BookingStore
	users    repository.UserStore
}

func NewDashboardService(rooms repository.RoomStore, bookings repository.BookingStore, users repository.UserStore) *DashboardService {
	return &DashboardService{rooms: rooms, bookings: bookings, users: users}
}

func (s *DashboardService) Summary(p auth.Principal) (*entities.DashboardSummary, error) {
	if !p.IsStaff {
		return nil, apperr.ErrForbidden
	}

	totalRooms, err := s.rooms.CountRooms()
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.CountBookings()
	if err != nil {
		return nil, err
	}
	pending, err := s.bookings.CountByStatus(db.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	approvedToday, err := s.bookings.CountApprovedCheckingIn(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.CountUsers()
	if err != nil {
		return nil, err
	}
	byType, err := s.rooms.CountRoomsByType()
	if err != nil {
		return nil, err
	}
	recent, err := s.bookings.ListRecent(recentBookingsLimit)
	if err != nil {
		return nil, err
	}
	queue, err := s.bookings.ListPending()
	if err != nil {
		return nil, err
	}

	return &entities.DashboardSummary{
		TotalRooms:      totalRooms,
		TotalBookings:   totalBookings,
		PendingBookings: pending,
		ApprovedToday:   approvedToday,
		TotalUsers:      totalUsers,
		RoomTypeCounts:  byType,
		RecentBookings:  recent,
		PendingQueue:    queue,
	}, nil
}
