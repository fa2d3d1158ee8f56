package service

import (
	"sort"
	"sync"
)

// roomLocks serializes ledger mutations per room. Two concurrent writers
// touching the same room cannot both pass the conflict check; writers on
// unrelated rooms never contend.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for the given room and returns its unlock func.
func (l *roomLocks) acquire(roomNumber string) func() {
	m := l.mutexFor(roomNumber)
	m.Lock()
	return m.Unlock
}

// acquireAll locks the mutexes for every given room, in sorted order so
// two callers can never deadlock on each other. Duplicates are locked once.
func (l *roomLocks) acquireAll(roomNumbers ...string) func() {
	sorted := append([]string(nil), roomNumbers...)
	sort.Strings(sorted)

	var held []*sync.Mutex
	var prev string
	for i, roomNumber := range sorted {
		if i > 0 && roomNumber == prev {
			continue
		}
		m := l.mutexFor(roomNumber)
		m.Lock()
		held = append(held, m)
		prev = roomNumber
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (l *roomLocks) mutexFor(roomNumber string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[roomNumber]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomNumber] = m
	}
	return m
}
