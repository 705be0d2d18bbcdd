// Package scoring ranks sales leads on a 0..100 scale so agents work the
// hottest leads first.
//
// # Architecture
//
// An Engine holds a set of Rules. Each rule evaluates one facet of a lead to
// a value in [0, 1]; the engine clamps the value, weights it, and reports the
// weighted average scaled to 0..100 together with a per-rule breakdown.
//
// The default rule set:
//
//   - source_quality (weight 20): referral 1.0, website 0.7, phone 0.5,
//     walk-in 0.3
//   - vehicle_age (25): current vehicle 5+ years old 1.0, 3-4 years 0.6,
//     newer or unknown 0.2
//   - trade_in_value (25): over $10k 1.0, over $5k 0.7, any equity 0.4,
//     none 0.1
//   - engagement (15): qualified or converted 1.0, contacted 0.6, new 0.2,
//     lost 0.1
//   - recency (15): under 24h 1.0, under 7d 0.7, under 30d 0.4, older 0.1
//
// # Usage
//
//	engine, err := scoring.NewEngine()
//	result, err := engine.Evaluate(ctx, l)
//	// result.FinalScore, result.Breakdown["recency"], ...
//
// Engine satisfies lead.Scorer, so it plugs straight into lead.NewService
// via lead.WithScorer. EvaluateBatch fans out across goroutines for nightly
// rescoring runs.
//
// Time-sensitive rules take their clock from WithClock, keeping tests
// deterministic.
package scoring
