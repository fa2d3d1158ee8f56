package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/service"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/utils"
)

type RoomHandler struct {
	Service *service.RoomService
}

func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.RoomFilter{RoomType: q.Get("room_type")}
	if s := q.Get("min_capacity"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Invalid min_capacity value", http.StatusBadRequest)
			return
		}
		filter.MinCapacity = n
	}

	rooms, err := h.Service.List(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponses(rooms))
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Service.Get(mux.Vars(r)["number"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponse(*room))
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	priceCents, err := utils.ParsePrice(req.Price)
	if err != nil {
		http.Error(w, "Invalid price", http.StatusBadRequest)
		return
	}

	room, err := h.Service.Create(p, entities.RoomInput{
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		PriceCents:  priceCents,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoomResponse(*room))
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	upd := entities.RoomUpdate{
		RoomType:    req.RoomType,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Description: req.Description,
	}
	if req.Price != nil {
		priceCents, err := utils.ParsePrice(*req.Price)
		if err != nil {
			http.Error(w, "Invalid price", http.StatusBadRequest)
			return
		}
		upd.PriceCents = &priceCents
	}

	room, err := h.Service.Update(p, mux.Vars(r)["number"], upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponse(*room))
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(p, mux.Vars(r)["number"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
