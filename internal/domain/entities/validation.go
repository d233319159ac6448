package entities

// FeedbackTier classifies a validation outcome for the learner.
type FeedbackTier string

const (
	TierExact     FeedbackTier = "exact"
	TierClose     FeedbackTier = "close"
	TierPartial   FeedbackTier = "partial"
	TierIncorrect FeedbackTier = "incorrect"

	// TierInvalid marks structurally invalid input (out-of-range spans,
	// missing role indices, incomplete selection). It is a normal result,
	// not an error, so callers can render it uniformly.
	TierInvalid FeedbackTier = "invalid"
)

// ValidationResult is the outcome of scoring a learner selection against
// the detected constructions of a question.
type ValidationResult struct {
	IsCorrect bool
	Partial   bool
	Score     int // 0-100
	Tier      FeedbackTier
	Message   string
	Tip       string

	// Matched and Missed hold construction indices into the question's
	// construction list, for highlighting in the delivery layer.
	Matched []int
	Missed  []int

	// ExtraSpans are selected positions that belong to no required
	// construction.
	ExtraSpans []int
}
