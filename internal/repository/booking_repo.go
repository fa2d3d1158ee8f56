package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
)

const bookingColumns = `id, user_id, room_number, check_in, check_out, guests, total_cents, status, notes, created_at, updated_at`

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

func (r *BookingRepository) GetBooking(id int64) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var b db.Booking
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.UserID, &b.RoomNumber, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.TotalCents, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get booking", err)
	}
	return &b, nil
}

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
		INSERT INTO bookings (user_id, room_number, check_in, check_out, guests, total_cents, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query,
		b.UserID, b.RoomNumber, b.CheckIn, b.CheckOut, b.Guests, b.TotalCents, b.Status, b.Notes,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return apperr.Storage("create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateBooking(b *db.Booking) error {
	query := `
		UPDATE bookings
		SET room_number = $1, check_in = $2, check_out = $3, guests = $4, total_cents = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`
	err := r.DB.QueryRow(query,
		b.RoomNumber, b.CheckIn, b.CheckOut, b.Guests, b.TotalCents, b.Notes, b.ID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return apperr.Storage("update booking", err)
	}
	return nil
}

func (r *BookingRepository) SetBookingStatus(id int64, status string) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id`
	err := r.DB.QueryRow(query, status, id).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return apperr.Storage("set booking status", err)
	}
	return nil
}

func (r *BookingRepository) SetBookingStatuses(ids []int64, status string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	if _, err := r.DB.Exec(query, status, pq.Array(ids)); err != nil {
		return apperr.Storage("set booking statuses", err)
	}
	return nil
}

func (r *BookingRepository) HasOverlap(roomNumber string, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_number = $1
			  AND status IN ('pending', 'approved')
			  AND check_in < $3
			  AND check_out > $2
			  AND id <> $4
		)`
	var overlap bool
	if err := r.DB.QueryRow(query, roomNumber, checkIn, checkOut, excludeID).Scan(&overlap); err != nil {
		return false, apperr.Storage("overlap check", err)
	}
	return overlap, nil
}

func (r *BookingRepository) ListForUser(userID int64) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY check_in DESC`
	return r.queryBookings("list bookings for user", query, userID)
}

func (r *BookingRepository) ListAll() ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	return r.queryBookings("list bookings", query)
}

func (r *BookingRepository) ListPending() ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'pending' ORDER BY check_in`
	return r.queryBookings("list pending bookings", query)
}

func (r *BookingRepository) ListRecent(limit int) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`
	return r.queryBookings("list recent bookings", query, limit)
}

func (r *BookingRepository) CountBookings() (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n); err != nil {
		return 0, apperr.Storage("count bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) CountByStatus(status string) (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, apperr.Storage("count bookings by status", err)
	}
	return n, nil
}

func (r *BookingRepository) CountApprovedCheckingIn(day time.Time) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM bookings WHERE status = 'approved' AND check_in = $1::date`
	if err := r.DB.QueryRow(query, day).Scan(&n); err != nil {
		return 0, apperr.Storage("count approved check-ins", err)
	}
	return n, nil
}

func (r *BookingRepository) CountBlockingForRoom(roomNumber string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM bookings WHERE room_number = $1 AND status IN ('pending', 'approved')`
	if err := r.DB.QueryRow(query, roomNumber).Scan(&n); err != nil {
		return 0, apperr.Storage("count blocking bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) StalePendingIDs(before time.Time) ([]int64, error) {
	query := `SELECT id FROM bookings WHERE status = 'pending' AND check_in < $1`
	rows, err := r.DB.Query(query, before)
	if err != nil {
		return nil, apperr.Storage("list stale pending bookings", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Storage("scan stale booking id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list stale pending bookings", err)
	}
	return ids, nil
}

func (r *BookingRepository) queryBookings(op, query string, args ...interface{}) ([]db.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperr.Storage(op, err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.RoomNumber, &b.CheckIn, &b.CheckOut,
			&b.Guests, &b.TotalCents, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, apperr.Storage(op, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(op, err)
	}
	return bookings, nil
}
