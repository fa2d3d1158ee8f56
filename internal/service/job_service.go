package service

import (
	"fmt"
	"log"
	"time"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
)

// JobService runs the scheduled maintenance passes over the ledger.
type JobService struct {
	bookings repository.BookingStore
}

func NewJobService(bookings repository.BookingStore) *JobService {
	return &JobService{bookings: bookings}
}

// DeclineStalePending declines pending bookings whose check-in date has
// already passed without staff action.
func (s *JobService) DeclineStalePending() error {
	log.Println("Cron Job: checking for stale pending bookings...")

	ids, err := s.bookings.StalePendingIDs(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to list stale pending bookings: %w", err)
	}
	if len(ids) == 0 {
		log.Println("Cron Job: no stale pending bookings found.")
		return nil
	}

	if err := s.bookings.SetBookingStatuses(ids, db.BookingStatusDeclined); err != nil {
		return fmt.Errorf("cron job: failed to decline stale bookings: %w", err)
	}

	log.Printf("Cron Job: declined %d stale pending booking(s). IDs: %v", len(ids), ids)
	return nil
}
