package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/service"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/utils"
)

type BookingHandler struct {
	Bookings     *service.BookingService
	Availability *service.AvailabilityService
}

func NewBookingHandler(bookings *service.BookingService, availability *service.AvailabilityService) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Availability: availability}
}

func (h *BookingHandler) SearchAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	checkIn, err := utils.ParseDate(q.Get("check_in"))
	if err != nil {
		http.Error(w, "Invalid check_in date", http.StatusBadRequest)
		return
	}
	checkOut, err := utils.ParseDate(q.Get("check_out"))
	if err != nil {
		http.Error(w, "Invalid check_out date", http.StatusBadRequest)
		return
	}

	guests := 0
	if s := q.Get("guests"); s != "" {
		guests, err = strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Invalid guests value", http.StatusBadRequest)
			return
		}
	}

	rooms, err := h.Availability.Search(entities.SearchRequest{
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		RoomType:  q.Get("room_type"),
		MinGuests: guests,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponses(rooms))
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		http.Error(w, "Invalid check_in date", http.StatusBadRequest)
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		http.Error(w, "Invalid check_out date", http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.Apply(p, service.CreateBooking{
		BookingRequest: entities.BookingRequest{
			RoomNumber: req.RoomNumber,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Guests:     req.Guests,
			Notes:      req.Notes,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(*booking))
}

func (h *BookingHandler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	bookings, err := h.Bookings.ListForUser(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	upd := entities.BookingUpdate{
		RoomNumber: req.RoomNumber,
		Guests:     req.Guests,
		Notes:      req.Notes,
	}
	if req.CheckIn != nil {
		t, err := utils.ParseDate(*req.CheckIn)
		if err != nil {
			http.Error(w, "Invalid check_in date", http.StatusBadRequest)
			return
		}
		upd.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, err := utils.ParseDate(*req.CheckOut)
		if err != nil {
			http.Error(w, "Invalid check_out date", http.StatusBadRequest)
			return
		}
		upd.CheckOut = &t
	}

	booking, err := h.Bookings.Apply(p, service.EditBooking{ID: id, Update: upd})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(*booking))
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.Apply(p, service.CancelBooking{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(*booking))
}
