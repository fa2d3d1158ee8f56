package repository

import (
	"database/sql"
	"errors"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

func (r *UserRepository) GetUser(id int64) (*db.User, error) {
	query := `SELECT id, email, full_name, password_hash, is_staff, created_at FROM users WHERE id = $1`
	var u db.User
	err := r.DB.QueryRow(query, id).Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get user", err)
	}
	return &u, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*db.User, error) {
	query := `SELECT id, email, full_name, password_hash, is_staff, created_at FROM users WHERE email = $1`
	var u db.User
	err := r.DB.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("get user by email", err)
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(u *db.User) error {
	query := `
		INSERT INTO users (email, full_name, password_hash, is_staff, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`
	err := r.DB.QueryRow(query, u.Email, u.FullName, u.PasswordHash, u.IsStaff).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return apperr.Storage("create user", err)
	}
	return nil
}

func (r *UserRepository) CountUsers() (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, apperr.Storage("count users", err)
	}
	return n, nil
}
