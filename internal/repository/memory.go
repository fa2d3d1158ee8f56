package repository

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/db"
	apperr "github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/errors"
	"github.com/KiptooAlvin/ReservO-Room-Reservation-System/internal/utils"
)

var errDuplicateRoom = errors.New("room number already exists")

// MemoryStore keeps rooms, bookings and users in process memory. It backs
// the local mode (no DATABASE_URL) and the test suite. All methods are
// safe for concurrent use; readers never observe a half-written record.
type MemoryStore struct {
	mu            sync.RWMutex
	rooms         map[string]db.Room
	bookings      map[int64]db.Booking
	users         map[int64]db.User
	nextRoomID    int
	nextBookingID int64
	nextUserID    int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:    make(map[string]db.Room),
		bookings: make(map[int64]db.Booking),
		users:    make(map[int64]db.User),
	}
}

// Room catalog

func (m *MemoryStore) GetRoom(roomNumber string) (*db.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[roomNumber]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &room, nil
}

func (m *MemoryStore) ListRooms(filter RoomFilter) ([]db.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rooms []db.Room
	for _, room := range m.rooms {
		if filter.RoomType != "" && room.RoomType != filter.RoomType {
			continue
		}
		if filter.MinCapacity > 0 && room.Capacity < filter.MinCapacity {
			continue
		}
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		return strings.Compare(rooms[i].RoomNumber, rooms[j].RoomNumber) < 0
	})
	return rooms, nil
}

func (m *MemoryStore) CreateRoom(room *db.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.rooms[room.RoomNumber]; exists {
		return apperr.Storage("create room", errDuplicateRoom)
	}
	m.nextRoomID++
	room.ID = m.nextRoomID
	now := time.Now().UTC()
	if room.CreatedAt.IsZero() {
		room.CreatedAt = now
	}
	room.UpdatedAt = now
	m.rooms[room.RoomNumber] = *room
	return nil
}

func (m *MemoryStore) UpdateRoom(room *db.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.rooms[room.RoomNumber]
	if !ok {
		return apperr.ErrNotFound
	}
	room.ID = current.ID
	room.CreatedAt = current.CreatedAt
	room.UpdatedAt = time.Now().UTC()
	m.rooms[room.RoomNumber] = *room
	return nil
}

func (m *MemoryStore) DeleteRoom(roomNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[roomNumber]; !ok {
		return apperr.ErrNotFound
	}
	delete(m.rooms, roomNumber)
	return nil
}

func (m *MemoryStore) CountRooms() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms), nil
}

func (m *MemoryStore) CountRoomsByType() (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[string]int)
	for _, room := range m.rooms {
		counts[room.RoomType]++
	}
	return counts, nil
}

// Booking ledger

func (m *MemoryStore) GetBooking(id int64) (*db.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &b, nil
}

func (m *MemoryStore) CreateBooking(b *db.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextBookingID++
	b.ID = m.nextBookingID
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	m.bookings[b.ID] = *b
	return nil
}

// UpdateBooking rewrites the booking's stay fields. Status is owned by
// SetBookingStatus and is never touched here, same as the SQL backend.
func (m *MemoryStore) UpdateBooking(b *db.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.bookings[b.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	b.Status = current.Status
	b.CreatedAt = current.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	m.bookings[b.ID] = *b
	return nil
}

func (m *MemoryStore) SetBookingStatus(id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return apperr.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	m.bookings[id] = b
	return nil
}

func (m *MemoryStore) SetBookingStatuses(ids []int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for _, id := range ids {
		b, ok := m.bookings[id]
		if !ok {
			continue
		}
		b.Status = status
		b.UpdatedAt = now
		m.bookings[id] = b
	}
	return nil
}

func (m *MemoryStore) HasOverlap(roomNumber string, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.RoomNumber != roomNumber || b.ID == excludeID || !b.Blocking() {
			continue
		}
		if checkIn.Before(b.CheckOut) && checkOut.After(b.CheckIn) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) ListForUser(userID int64) ([]db.Booking, error) {
	bookings := m.collect(func(b db.Booking) bool { return b.UserID == userID })
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CheckIn.After(bookings[j].CheckIn)
	})
	return bookings, nil
}

func (m *MemoryStore) ListAll() ([]db.Booking, error) {
	bookings := m.collect(func(db.Booking) bool { return true })
	sortByCreatedDesc(bookings)
	return bookings, nil
}

func (m *MemoryStore) ListPending() ([]db.Booking, error) {
	bookings := m.collect(func(b db.Booking) bool { return b.Status == db.BookingStatusPending })
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CheckIn.Before(bookings[j].CheckIn)
	})
	return bookings, nil
}

func (m *MemoryStore) ListRecent(limit int) ([]db.Booking, error) {
	bookings := m.collect(func(db.Booking) bool { return true })
	sortByCreatedDesc(bookings)
	if limit > 0 && len(bookings) > limit {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (m *MemoryStore) CountBookings() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings), nil
}

func (m *MemoryStore) CountByStatus(status string) (int, error) {
	return len(m.collect(func(b db.Booking) bool { return b.Status == status })), nil
}

func (m *MemoryStore) CountApprovedCheckingIn(day time.Time) (int, error) {
	return len(m.collect(func(b db.Booking) bool {
		return b.Status == db.BookingStatusApproved && utils.SameDay(b.CheckIn, day)
	})), nil
}

func (m *MemoryStore) CountBlockingForRoom(roomNumber string) (int, error) {
	return len(m.collect(func(b db.Booking) bool {
		return b.RoomNumber == roomNumber && b.Blocking()
	})), nil
}

func (m *MemoryStore) StalePendingIDs(before time.Time) ([]int64, error) {
	stale := m.collect(func(b db.Booking) bool {
		return b.Status == db.BookingStatusPending && b.CheckIn.Before(before)
	})
	ids := make([]int64, 0, len(stale))
	for _, b := range stale {
		ids = append(ids, b.ID)
	}
	return ids, nil
}

// Users

func (m *MemoryStore) GetUser(id int64) (*db.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &u, nil
}

func (m *MemoryStore) GetUserByEmail(email string) (*db.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (m *MemoryStore) CreateUser(u *db.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextUserID++
	u.ID = m.nextUserID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryStore) CountUsers() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users), nil
}

func (m *MemoryStore) collect(keep func(db.Booking) bool) []db.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var bookings []db.Booking
	for _, b := range m.bookings {
		if keep(b) {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

func sortByCreatedDesc(bookings []db.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
