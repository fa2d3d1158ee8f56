package api

import (
	"time"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/entities"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/utils"
)

// Auth

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Bookings

type CreateBookingRequest struct {
	RoomNumber string `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
	Notes      string `json:"notes"`
}

type UpdateBookingRequest struct {
	RoomNumber *string `json:"room_number"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Guests     *int    `json:"guests"`
	Notes      *string `json:"notes"`
}

type BookingActionRequest struct {
	Action string `json:"action"`
}

type BookingResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RoomNumber string    `json:"room_number"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Guests     int       `json:"guests"`
	TotalPrice string    `json:"total_price"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Rooms

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number"`
	RoomType    string `json:"room_type"`
	Price       string `json:"price"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type UpdateRoomRequest struct {
	RoomType    *string `json:"room_type"`
	Price       *string `json:"price"`
	Capacity    *int    `json:"capacity"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

type RoomResponse struct {
	RoomNumber  string `json:"room_number"`
	RoomType    string `json:"room_type"`
	Price       string `json:"price"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

// Dashboard

type DashboardResponse struct {
	TotalRooms      int               `json:"total_rooms"`
	TotalBookings   int               `json:"total_bookings"`
	PendingBookings int               `json:"pending_bookings"`
	ApprovedToday   int               `json:"approved_today"`
	TotalUsers      int               `json:"total_users"`
	RoomTypeCounts  map[string]int    `json:"room_type_counts"`
	RecentBookings  []BookingResponse `json:"recent_bookings"`
	PendingQueue    []BookingResponse `json:"pending_queue"`
}

func toBookingResponse(b db.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		RoomNumber: b.RoomNumber,
		CheckIn:    b.CheckIn.Format(utils.DateLayout),
		CheckOut:   b.CheckOut.Format(utils.DateLayout),
		Guests:     b.Guests,
		TotalPrice: utils.FormatCents(b.TotalCents),
		Status:     b.Status,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
	}
}

func toBookingResponses(bookings []db.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

func toRoomResponse(r db.Room) RoomResponse {
	return RoomResponse{
		RoomNumber:  r.RoomNumber,
		RoomType:    r.RoomType,
		Price:       utils.FormatCents(r.PriceCents),
		Capacity:    r.Capacity,
		Status:      r.Status,
		Description: r.Description,
	}
}

func toRoomResponses(rooms []db.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	return out
}

func toDashboardResponse(s entities.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalRooms:      s.TotalRooms,
		TotalBookings:   s.TotalBookings,
		PendingBookings: s.PendingBookings,
		ApprovedToday:   s.ApprovedToday,
		TotalUsers:      s.TotalUsers,
		RoomTypeCounts:  s.RoomTypeCounts,
		RecentBookings:  toBookingResponses(s.RecentBookings),
		PendingQueue:    toBookingResponses(s.PendingQueue),
	}
}
