package errors

import (
	"errors"
	"fmt"
)

// Domain errors returned by the booking engine. Handlers translate these
// into HTTP status codes; callers can match them with errors.Is.
var (
	ErrInvalidDateRange = errors.New("check-in date must be before check-out date")
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
	ErrRoomUnavailable  = errors.New("room is under maintenance or out of service")
	ErrConflict         = errors.New("room is already booked for the chosen dates")
	ErrForbidden        = errors.New("operation not permitted for this user")
	ErrNotEditable      = errors.New("only pending bookings can be edited")
	ErrNotCancellable   = errors.New("only pending bookings can be cancelled")
	ErrNotFound         = errors.New("not found")
	ErrRoomHasBookings  = errors.New("room still has pending or approved bookings")
	ErrInvalidInput     = errors.New("invalid input")
)

// StorageError wraps a persistence-layer fault. The engine never masks
// these; they surface to the caller distinct from validation failures.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the given operation.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
