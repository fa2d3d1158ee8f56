package repository

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
)

const roomColumns = `id, room_number, room_type, price_cents, capacity, status, description, created_at, updated_at`

type RoomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(database *sql.DB) *RoomRepository {
	return &RoomRepository{DB: database}
}

func (r *RoomRepository) GetRoom(roomNumber string) (*db.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`
	var room db.Room
	err := r.DB.QueryRow(query, roomNumber).Scan(
		&room.ID, &room.RoomNumber, &room.RoomType, &room.PriceCents,
		&room.Capacity, &room.Status, &room.Description, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get room", err)
	}
	return &room, nil
}

func (r *RoomRepository) ListRooms(filter RoomFilter) ([]db.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.RoomType != "" {
		query += " AND room_type = $" + strconv.Itoa(idx)
		args = append(args, filter.RoomType)
		idx++
	}
	if filter.MinCapacity > 0 {
		query += " AND capacity >= $" + strconv.Itoa(idx)
		args = append(args, filter.MinCapacity)
		idx++
	}
	query += " ORDER BY room_number"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperr.Storage("list rooms", err)
	}
	defer rows.Close()

	var rooms []db.Room
	for rows.Next() {
		var room db.Room
		if err := rows.Scan(
			&room.ID, &room.RoomNumber, &room.RoomType, &room.PriceCents,
			&room.Capacity, &room.Status, &room.Description, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, apperr.Storage("scan room", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list rooms", err)
	}
	return rooms, nil
}

func (r *RoomRepository) CreateRoom(room *db.Room) error {
	query := `
		INSERT INTO rooms (room_number, room_type, price_cents, capacity, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query,
		room.RoomNumber, room.RoomType, room.PriceCents, room.Capacity, room.Status, room.Description,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return apperr.Storage("create room", err)
	}
	return nil
}

func (r *RoomRepository) UpdateRoom(room *db.Room) error {
	query := `
		UPDATE rooms
		SET room_type = $1, price_cents = $2, capacity = $3, status = $4, description = $5, updated_at = NOW()
		WHERE room_number = $6
		RETURNING id, updated_at`
	err := r.DB.QueryRow(query,
		room.RoomType, room.PriceCents, room.Capacity, room.Status, room.Description, room.RoomNumber,
	).Scan(&room.ID, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return apperr.Storage("update room", err)
	}
	return nil
}

func (r *RoomRepository) DeleteRoom(roomNumber string) error {
	query := `DELETE FROM rooms WHERE room_number = $1 RETURNING id`
	var id int
	err := r.DB.QueryRow(query, roomNumber).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.ErrNotFound
		}
		return apperr.Storage("delete room", err)
	}
	return nil
}

func (r *RoomRepository) CountRooms() (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&n); err != nil {
		return 0, apperr.Storage("count rooms", err)
	}
	return n, nil
}

func (r *RoomRepository) CountRoomsByType() (map[string]int, error) {
	rows, err := r.DB.Query(`SELECT room_type, COUNT(*) FROM rooms GROUP BY room_type`)
	if err != nil {
		return nil, apperr.Storage("count rooms by type", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var roomType string
		var n int
		if err := rows.Scan(&roomType, &n); err != nil {
			return nil, apperr.Storage("scan room type count", err)
		}
		counts[roomType] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("count rooms by type", err)
	}
	return counts, nil
}
