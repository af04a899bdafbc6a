package queue

import (
	"sync"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

const defaultFeedCapacity = 100

// ActivityFeed is a capped, mutex-guarded buffer of recent loan activity,
// newest first.
type ActivityFeed struct {
	mu      sync.RWMutex
	entries []domain.LoanActivity
	cap     int
}

// NewActivityFeed creates a feed keeping at most capacity entries.
// If capacity <= 0, defaultFeedCapacity is used.
func NewActivityFeed(capacity int) *ActivityFeed {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	return &ActivityFeed{cap: capacity}
}

// Append adds an entry, evicting the oldest once the feed is full.
func (f *ActivityFeed) Append(activity domain.LoanActivity) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, activity)
	if len(f.entries) > f.cap {
		f.entries = f.entries[len(f.entries)-f.cap:]
	}
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (f *ActivityFeed) Recent(limit int) []domain.LoanActivity {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := len(f.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.LoanActivity, 0, n)
	for i := len(f.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.entries[i])
	}
	return out
}
