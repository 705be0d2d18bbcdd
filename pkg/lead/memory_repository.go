package lead

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository for development and tests.
// Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead // keyed dealerID:leadID
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{leads: make(map[string]*Lead)}
}

func memoryKey(dealerID, id string) string {
	return dealerID + ":" + id
}

// cloneLead copies the aggregate so callers cannot mutate stored state.
func cloneLead(l *Lead) *Lead {
	c := *l
	if l.Score != nil {
		score := *l.Score
		c.Score = &score
	}
	if l.Vehicle != nil {
		vehicle := *l.Vehicle
		if l.Vehicle.TradeInValue != nil {
			tradeIn := *l.Vehicle.TradeInValue
			vehicle.TradeInValue = &tradeIn
		}
		c.Vehicle = &vehicle
	}
	if l.Audit != nil {
		c.Audit = make([]AuditEntry, len(l.Audit))
		copy(c.Audit, l.Audit)
	}
	return &c
}

// Save inserts or replaces the lead.
func (r *MemoryRepository) Save(ctx context.Context, l *Lead) error {
	if l == nil {
		return ErrInvalidLead
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[memoryKey(l.DealerID, l.ID)] = cloneLead(l)
	return nil
}

// FindByIDAndDealerID returns the lead or ErrNotFound.
func (r *MemoryRepository) FindByIDAndDealerID(ctx context.Context, id, dealerID string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leads[memoryKey(dealerID, id)]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneLead(l), nil
}

// FindByDealerIDAndState lists a dealer's leads in the given state.
func (r *MemoryRepository) FindByDealerIDAndState(ctx context.Context, dealerID string, state State) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Lead
	for _, l := range r.leads {
		if l.DealerID == dealerID && l.State == state {
			out = append(out, cloneLead(l))
		}
	}
	return out, nil
}

// FindByDealerIDOrderByScore lists a dealer's leads best-first. Unscored
// leads sort after scored ones; ties break on most recent update.
func (r *MemoryRepository) FindByDealerIDOrderByScore(ctx context.Context, dealerID string) ([]*Lead, error) {
	r.mu.RLock()
	var out []*Lead
	for _, l := range r.leads {
		if l.DealerID == dealerID {
			out = append(out, cloneLead(l))
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Score != nil && b.Score == nil:
			return true
		case a.Score == nil && b.Score != nil:
			return false
		case a.Score != nil && b.Score != nil && *a.Score != *b.Score:
			return *a.Score > *b.Score
		default:
			return a.UpdatedAt.After(b.UpdatedAt)
		}
	})
	return out, nil
}
