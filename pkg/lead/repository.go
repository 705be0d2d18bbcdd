package lead

import "context"

// Repository is the persistence port for leads. Every read takes the dealer
// id so a repository can never leak leads across tenants.
type Repository interface {
	// Save inserts or updates the lead.
	Save(ctx context.Context, l *Lead) error

	// FindByIDAndDealerID returns the lead or ErrNotFound. A matching id
	// under a different dealer is ErrNotFound, not a permission error.
	FindByIDAndDealerID(ctx context.Context, id, dealerID string) (*Lead, error)

	// FindByDealerIDAndState lists a dealer's leads in the given state.
	FindByDealerIDAndState(ctx context.Context, dealerID string, state State) ([]*Lead, error)

	// FindByDealerIDOrderByScore lists a dealer's leads best-first: score
	// descending with unscored leads last, ties broken by most recent update.
	FindByDealerIDOrderByScore(ctx context.Context, dealerID string) ([]*Lead, error)
}
