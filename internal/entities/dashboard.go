package entities

import "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"

// DashboardSummary aggregates the figures shown on the staff dashboard.
type DashboardSummary struct {
	TotalRooms      int            `json:"total_rooms"`
	TotalBookings   int            `json:"total_bookings"`
	PendingBookings int            `json:"pending_bookings"`
	ApprovedToday   int            `json:"approved_today"`
	TotalUsers      int            `json:"total_users"`
	RoomTypeCounts  map[string]int `json:"room_type_counts"`
	RecentBookings  []db.Booking   `json:"recent_bookings"`
	PendingQueue    []db.Booking   `json:"pending_queue"`
}
