package model

// Verdict is the externally visible result of a prediction.
type Verdict struct {
	ClassID        int
	Label          string
	Recommendation string
	// Overridden is set when a heuristic rule replaced the model's verdict;
	// Rule names that rule. ClassID still carries the model's class.
	Overridden bool
	Rule       string
}
