package reservation

import (
	"sync"
	"time"
)

type spaceDayKey struct {
	spaceID int64
	day     string
}

// spaceDayLocks serializes the check-then-create sequence and status changes
// per (space, date). Bookings against different spaces or different days
// never block each other.
type spaceDayLocks struct {
	mu    sync.Mutex
	locks map[spaceDayKey]*sync.Mutex
}

func newSpaceDayLocks() *spaceDayLocks {
	return &spaceDayLocks{locks: make(map[spaceDayKey]*sync.Mutex)}
}

// Lock acquires the mutex for the (space, date) pair and returns its unlock
// function. Mutexes are kept for the process lifetime; the key space is
// bounded by spaces x days actually booked.
func (l *spaceDayLocks) Lock(spaceID int64, date time.Time) func() {
	key := spaceDayKey{spaceID: spaceID, day: date.UTC().Format("2006-01-02")}

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
