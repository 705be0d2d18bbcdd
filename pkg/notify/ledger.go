package notify

import "sync"

// dailyLedger tracks per-key send counts for rate limiting. Keys combine
// dealer, lead and calendar date, so cardinality is bounded per day; entries
// are never expired, matching the single-process in-memory design.
type dailyLedger struct {
	mu     sync.Mutex
	counts map[string]int
}

func newDailyLedger() *dailyLedger {
	return &dailyLedger{counts: make(map[string]int)}
}

// reserve atomically checks the count against limit and increments it when
// below. The check and the increment happen under one lock so two concurrent
// callers can never both pass the check at the ceiling.
func (l *dailyLedger) reserve(key string, limit int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.counts[key] >= limit {
		return false
	}
	l.counts[key]++
	return true
}

// release returns a previously reserved slot, flooring at zero.
func (l *dailyLedger) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.counts[key] > 0 {
		l.counts[key]--
	}
}
