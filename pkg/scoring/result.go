package scoring

// Result is a scored lead: the weighted final score on a 0..100 scale plus
// each rule's raw contribution for explainability.
type Result struct {
	// FinalScore is the weighted average of all rules, scaled to 0..100.
	FinalScore float64

	// Breakdown maps rule name to its raw [0, 1] evaluation.
	Breakdown map[string]float64
}
