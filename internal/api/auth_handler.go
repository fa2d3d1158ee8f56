package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.Service.Register(req.Email, req.FullName, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	token, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		var storageErr *apperr.StorageError
		if errors.As(err, &storageErr) {
			writeError(w, err)
			return
		}
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
