package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/api"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/auth"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/repository"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/service"
)

func main() {
	godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	var (
		rooms    repository.RoomStore
		bookings repository.BookingStore
		users    repository.UserStore
	)
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		database, err := sql.Open("postgres", dbURL)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := database.Ping(); err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		rooms = repository.NewRoomRepository(database)
		bookings = repository.NewBookingRepository(database)
		users = repository.NewUserRepository(database)
		log.Println("Using Postgres storage")
	} else {
		mem := repository.NewMemoryStore()
		rooms, bookings, users = mem, mem, mem
		log.Println("DATABASE_URL not set, using in-memory storage")
	}

	bookingSvc := service.NewBookingService(rooms, bookings)
	availabilitySvc := service.NewAvailabilityService(rooms, bookings)
	roomSvc := service.NewRoomService(rooms, bookings)
	authSvc := service.NewAuthService(users, secret)
	dashboardSvc := service.NewDashboardService(rooms, bookings, users)
	jobSvc := service.NewJobService(bookings)

	authHandler := api.NewAuthHandler(authSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc, availabilitySvc)
	roomHandler := api.NewRoomHandler(roomSvc)
	adminHandler := api.NewAdminHandler(bookingSvc, dashboardSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/availability", bookingHandler.SearchAvailability).Methods("GET")
	r.HandleFunc("/api/rooms", roomHandler.ListRooms).Methods("GET")
	r.HandleFunc("/api/rooms/{number}", roomHandler.GetRoom).Methods("GET")

	// Authenticated user endpoints
	user := r.PathPrefix("/api/bookings").Subrouter()
	user.Use(auth.Middleware(secret))
	user.HandleFunc("", bookingHandler.CreateBooking).Methods("POST")
	user.HandleFunc("", bookingHandler.ListMyBookings).Methods("GET")
	user.HandleFunc("/{id}", bookingHandler.UpdateBooking).Methods("PUT")
	user.HandleFunc("/{id}", bookingHandler.CancelBooking).Methods("DELETE")

	// Staff endpoints
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware(secret), auth.RequireStaff)
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/pending", adminHandler.ListPendingBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}/action", adminHandler.BookingAction).Methods("POST")
	admin.HandleFunc("/rooms", roomHandler.CreateRoom).Methods("POST")
	admin.HandleFunc("/rooms/{number}", roomHandler.UpdateRoom).Methods("PUT")
	admin.HandleFunc("/rooms/{number}", roomHandler.DeleteRoom).Methods("DELETE")
	admin.HandleFunc("/dashboard", adminHandler.DashboardSummary).Methods("GET")

	// Stale pending bookings get declined on a schedule.
	schedule := os.Getenv("STALE_SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "@hourly"
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := jobSvc.DeclineStalePending(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid STALE_SWEEP_SCHEDULE: %v", err)
	}
	c.Start()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
