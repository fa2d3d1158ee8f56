package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
)

// AuthService handles account registration and login. The booking engine
// itself never touches credentials; it only sees the principal the token
// resolves to.
type AuthService struct {
	users  repository.UserStore
	secret string
}

func NewAuthService(users repository.UserStore, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

func (s *AuthService) Register(email, fullName, password string) (*db.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password cannot be empty", apperr.ErrInvalidInput)
	}
	_, err := s.users.GetUserByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrInvalidInput)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &db.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		// An unknown email is an auth failure; a storage fault is not.
		if errors.Is(err, apperr.ErrNotFound) {
			return "", errors.New("invalid credentials")
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_staff": user.IsStaff,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
