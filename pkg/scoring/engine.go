package scoring

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dealerdesk/leadkit/pkg/lead"
	"github.com/dealerdesk/leadkit/pkg/logger"
)

// Engine scores leads as the weighted average of its rules, scaled to
// 0..100. Safe for concurrent use; rules must be stateless or internally
// synchronized.
type Engine struct {
	rules []Rule
	log   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	rules []Rule
	now   func() time.Time
	log   *slog.Logger
}

// WithRules replaces the default rule set.
func WithRules(rules ...Rule) EngineOption {
	return func(c *engineConfig) {
		if len(rules) > 0 {
			c.rules = rules
		}
	}
}

// WithClock injects the time source used by the default time-sensitive rules.
func WithClock(now func() time.Time) EngineOption {
	return func(c *engineConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for scoring diagnostics.
func WithLogger(log *slog.Logger) EngineOption {
	return func(c *engineConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// NewEngine creates an engine with the default five rules unless WithRules
// overrides them.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := &engineConfig{
		now: time.Now,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.rules) == 0 {
		cfg.rules = DefaultRules(cfg.now)
	}

	return &Engine{rules: cfg.rules, log: cfg.log}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Evaluate scores a single lead, returning the final score and each rule's
// contribution.
func (e *Engine) Evaluate(ctx context.Context, l *lead.Lead) (Result, error) {
	if l == nil {
		return Result{}, ErrNilLead
	}

	breakdown := make(map[string]float64, len(e.rules))
	var weighted, totalWeight float64
	for _, rule := range e.rules {
		value := clamp01(rule.Evaluate(l))
		breakdown[rule.Name()] = value
		weighted += value * rule.Weight()
		totalWeight += rule.Weight()
	}

	final := weighted / totalWeight * 100

	e.log.LogAttrs(ctx, slog.LevelDebug, "Lead evaluated",
		logger.DealerID(l.DealerID),
		logger.LeadID(l.ID),
		logger.Score(final),
	)
	return Result{FinalScore: final, Breakdown: breakdown}, nil
}

// Score returns just the final score. It satisfies lead.Scorer.
func (e *Engine) Score(ctx context.Context, l *lead.Lead) (float64, error) {
	result, err := e.Evaluate(ctx, l)
	if err != nil {
		return 0, err
	}
	return result.FinalScore, nil
}

// EvaluateBatch scores many leads concurrently, preserving input order. A nil
// lead in the batch fails the whole call.
func (e *Engine) EvaluateBatch(ctx context.Context, leads []*lead.Lead) ([]Result, error) {
	results := make([]Result, len(leads))
	errs := make([]error, len(leads))

	var wg sync.WaitGroup
	wg.Add(len(leads))
	for i, l := range leads {
		go func(i int, l *lead.Lead) {
			defer wg.Done()
			results[i], errs[i] = e.Evaluate(ctx, l)
		}(i, l)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
