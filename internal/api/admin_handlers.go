package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/service"
)

type AdminHandler struct {
	Bookings  *service.BookingService
	Dashboard *service.DashboardService
}

func NewAdminHandler(bookings *service.BookingService, dashboard *service.DashboardService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Dashboard: dashboard}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	bookings, err := h.Bookings.ListAll(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *AdminHandler) ListPendingBookings(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	bookings, err := h.Bookings.ListPending(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

// BookingAction approves or declines a booking based on the posted action.
func (h *AdminHandler) BookingAction(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	var req BookingActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var cmd service.Command
	switch strings.ToLower(req.Action) {
	case "approve":
		cmd = service.ApproveBooking{ID: id}
	case "decline":
		cmd = service.DeclineBooking{ID: id}
	default:
		http.Error(w, "Invalid action", http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.Apply(p, cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(*booking))
}

func (h *AdminHandler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	summary, err := h.Dashboard.Summary(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(*summary))
}
