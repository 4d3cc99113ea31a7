package utils

import (
	"sync"
	"time"
)

var clock struct {
	sync.Mutex
	last time.Time
}

// Now returns the current UTC time truncated to microseconds. Every result is
// strictly later than the previous one returned in this process, so rows
// stamped with it keep their insertion order on both SQLite and PostgreSQL.
func Now() time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)

	clock.Lock()
	defer clock.Unlock()
	if !now.After(clock.last) {
		now = clock.last.Add(time.Microsecond)
	}
	clock.last = now
	return now
}
