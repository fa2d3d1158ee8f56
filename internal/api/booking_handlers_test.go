package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/service"
)

// asPrincipal stands in for the JWT middleware in handler tests.
func asPrincipal(p auth.Principal, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}

func newTestRouter(t *testing.T, p auth.Principal) (*mux.Router, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	require.NoError(t, store.CreateRoom(&db.Room{
		RoomNumber: "101",
		RoomType:   db.RoomTypeDouble,
		PriceCents: 10000,
		Capacity:   2,
		Status:     db.RoomStatusAvailable,
	}))

	bookingSvc := service.NewBookingService(store, store)
	availabilitySvc := service.NewAvailabilityService(store, store)
	dashboardSvc := service.NewDashboardService(store, store, store)

	bookingHandler := NewBookingHandler(bookingSvc, availabilitySvc)
	adminHandler := NewAdminHandler(bookingSvc, dashboardSvc)

	r := mux.NewRouter()
	r.HandleFunc("/api/availability", bookingHandler.SearchAvailability).Methods("GET")
	r.Handle("/api/bookings", asPrincipal(p, http.HandlerFunc(bookingHandler.CreateBooking))).Methods("POST")
	r.Handle("/api/bookings", asPrincipal(p, http.HandlerFunc(bookingHandler.ListMyBookings))).Methods("GET")
	r.Handle("/api/bookings/{id}", asPrincipal(p, http.HandlerFunc(bookingHandler.UpdateBooking))).Methods("PUT")
	r.Handle("/api/bookings/{id}", asPrincipal(p, http.HandlerFunc(bookingHandler.CancelBooking))).Methods("DELETE")
	r.Handle("/admin/bookings/{id}/action", asPrincipal(p, http.HandlerFunc(adminHandler.BookingAction))).Methods("POST")
	return r, store
}

func doJSON(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, auth.Principal{ID: 1})

	rec := doJSON(t, router, "POST", "/api/bookings",
		`{"room_number":"101","check_in":"2024-01-10","check_out":"2024-01-12","guests":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "101", resp.RoomNumber)
	assert.Equal(t, "200.00", resp.TotalPrice)
	assert.Equal(t, db.BookingStatusPending, resp.Status)

	// Overlapping request is a conflict.
	rec = doJSON(t, router, "POST", "/api/bookings",
		`{"room_number":"101","check_in":"2024-01-11","check_out":"2024-01-13","guests":1}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Malformed date is a bad request.
	rec = doJSON(t, router, "POST", "/api/bookings",
		`{"room_number":"101","check_in":"11/01/2024","check_out":"2024-01-13","guests":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchAvailabilityEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, auth.Principal{ID: 1})

	rec := doJSON(t, router, "GET", "/api/availability?check_in=2024-01-10&check_out=2024-01-12", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rooms []RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, "100.00", rooms[0].Price)

	rec = doJSON(t, router, "GET", "/api/availability?check_in=2024-01-12&check_out=2024-01-10", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, "GET", "/api/availability?check_in=bogus&check_out=2024-01-10", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBookingEndpoint(t *testing.T) {
	router, store := newTestRouter(t, auth.Principal{ID: 1})

	rec := doJSON(t, router, "POST", "/api/bookings",
		`{"room_number":"101","check_in":"2024-02-01","check_out":"2024-02-03","guests":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, "DELETE", "/api/bookings/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	b, err := store.GetBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, db.BookingStatusCancelled, b.Status)
}

func TestBookingActionEndpoint(t *testing.T) {
	staffRouter, store := newTestRouter(t, auth.Principal{ID: 99, IsStaff: true})

	require.NoError(t, store.CreateBooking(&db.Booking{
		UserID:     1,
		RoomNumber: "101",
		CheckIn:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		Guests:     1,
		Status:     db.BookingStatusPending,
	}))

	rec := doJSON(t, staffRouter, "POST", "/admin/bookings/1/action", `{"action":"approve"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, db.BookingStatusApproved, resp.Status)

	rec = doJSON(t, staffRouter, "POST", "/admin/bookings/1/action", `{"action":"shred"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, staffRouter, "POST", "/admin/bookings/42/action", `{"action":"decline"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
