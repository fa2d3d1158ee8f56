package service

import (
	"fmt"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
)

// Command is a tagged booking lifecycle request. Handlers build one and
// dispatch it through Apply; the switch there is the only dispatch point.
type Command interface {
	isCommand()
}

type CreateBooking struct {
	entities.BookingRequest
}

type EditBooking struct {
	ID     int64
	Update entities.BookingUpdate
}

type CancelBooking struct {
	ID int64
}

type ApproveBooking struct {
	ID int64
}

type DeclineBooking struct {
	ID int64
}

func (CreateBooking) isCommand()  {}
func (EditBooking) isCommand()    {}
func (CancelBooking) isCommand()  {}
func (ApproveBooking) isCommand() {}
func (DeclineBooking) isCommand() {}

// Apply executes cmd on behalf of p and returns the resulting booking.
func (s *BookingService) Apply(p auth.Principal, cmd Command) (*db.Booking, error) {
	switch c := cmd.(type) {
	case CreateBooking:
		return s.Create(p, c.BookingRequest)
	case EditBooking:
		return s.Edit(p, c.ID, c.Update)
	case CancelBooking:
		return s.Cancel(p, c.ID)
	case ApproveBooking:
		return s.Approve(p, c.ID)
	case DeclineBooking:
		return s.Decline(p, c.ID)
	default:
		return nil, fmt.Errorf("unknown booking command %T", cmd)
	}
}
