package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealerdesk/leadkit/pkg/logger"
)

// Scorer produces a 0..100 score for a lead. *scoring.Engine satisfies it.
type Scorer interface {
	Score(ctx context.Context, l *Lead) (float64, error)
}

// Service is the application layer over the lead aggregate: construction,
// lifecycle transitions and scoring, all scoped by dealer id.
type Service struct {
	repo   Repository
	scorer Scorer
	log    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithScorer attaches a scoring engine. Without one the scoring operations
// return ErrNilScorer.
func WithScorer(s Scorer) ServiceOption {
	return func(svc *Service) {
		svc.scorer = s
	}
}

// WithServiceLogger sets the logger for lifecycle events.
func WithServiceLogger(log *slog.Logger) ServiceOption {
	return func(svc *Service) {
		if log != nil {
			svc.log = log
		}
	}
}

// NewService creates a lead service over the given repository.
func NewService(repo Repository, opts ...ServiceOption) (*Service, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}

	svc := &Service{
		repo: repo,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// VehicleParams carries the optional vehicle interest for lead creation.
type VehicleParams struct {
	Make         string
	Model        string
	Year         int
	TradeInValue *float64
}

// CreateParams carries raw input for lead creation. Value objects are built
// and validated inside Create.
type CreateParams struct {
	DealerID string
	TenantID string
	SiteID   string
	Source   Source

	Email            string
	PhoneCountryCode string
	PhoneNumber      string

	Vehicle *VehicleParams
}

// Create validates the params, builds the aggregate in state NEW and
// persists it.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Lead, error) {
	email, err := NewEmail(params.Email)
	if err != nil {
		return nil, err
	}

	var phone Phone
	if params.PhoneNumber != "" {
		phone, err = NewPhone(params.PhoneCountryCode, params.PhoneNumber)
		if err != nil {
			return nil, err
		}
	}

	var vehicle *VehicleInterest
	if params.Vehicle != nil {
		v, err := NewVehicleInterest(params.Vehicle.Make, params.Vehicle.Model, params.Vehicle.Year, params.Vehicle.TradeInValue)
		if err != nil {
			return nil, err
		}
		vehicle = &v
	}

	l, err := NewLead(params.DealerID, params.TenantID, params.SiteID, params.Source, email, phone, vehicle)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("persist new lead: %w", err)
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "Lead created",
		logger.DealerID(l.DealerID),
		logger.LeadID(l.ID),
		slog.String("source", l.Source.String()),
	)
	return l, nil
}

// FindByIDAndDealerID returns the lead or ErrNotFound.
func (s *Service) FindByIDAndDealerID(ctx context.Context, id, dealerID string) (*Lead, error) {
	return s.repo.FindByIDAndDealerID(ctx, id, dealerID)
}

// TransitionState loads the lead, applies the transition with its audit
// entry, and persists the result.
func (s *Service) TransitionState(ctx context.Context, dealerID, leadID string, target State, actor, reason string) (*Lead, error) {
	l, err := s.repo.FindByIDAndDealerID(ctx, leadID, dealerID)
	if err != nil {
		return nil, err
	}

	if err := l.TransitionTo(target, actor, reason); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("persist transition: %w", err)
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "Lead state changed",
		logger.DealerID(dealerID),
		logger.LeadID(leadID),
		slog.String("state", l.State.String()),
	)
	return l, nil
}

// ScoreLead computes the lead's score without persisting it.
func (s *Service) ScoreLead(ctx context.Context, dealerID, leadID string) (float64, error) {
	if s.scorer == nil {
		return 0, ErrNilScorer
	}

	l, err := s.repo.FindByIDAndDealerID(ctx, leadID, dealerID)
	if err != nil {
		return 0, err
	}

	return s.scorer.Score(ctx, l)
}

// ComputeAndPersistScore computes the lead's score, stores it on the
// aggregate and persists the result.
func (s *Service) ComputeAndPersistScore(ctx context.Context, dealerID, leadID string) (*Lead, error) {
	if s.scorer == nil {
		return nil, ErrNilScorer
	}

	l, err := s.repo.FindByIDAndDealerID(ctx, leadID, dealerID)
	if err != nil {
		return nil, err
	}

	score, err := s.scorer.Score(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("score lead: %w", err)
	}

	l.UpdateScore(score)
	if err := s.repo.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("persist score: %w", err)
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "Lead scored",
		logger.DealerID(dealerID),
		logger.LeadID(leadID),
		logger.Score(score),
	)
	return l, nil
}
