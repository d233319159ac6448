package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// ErrNoConstructions is returned when a validator is called for a question
// that carries no detected constructions. Questions are built so that at
// least one construction exists; an empty set is a programming error, not
// a learner mistake.
var ErrNoConstructions = errors.New("question has no detected constructions")

// extraSpanPenalty is subtracted from the normalized score for every
// selected span that belongs to no required construction.
const extraSpanPenalty = 0.1

// Span-set feedback band boundaries on the normalized score.
const (
	bandClose   = 0.7
	bandPartial = 0.4
)

// AnswerValidator scores a flat span selection against the constructions
// of a question. It is pure and re-entrant: the same inputs always produce
// the same result.
type AnswerValidator struct{}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// Validate accumulates the current selection with any prior submissions,
// grades each required construction as matched, partially missed or fully
// missed, and maps the penalized score onto feedback bands. Out-of-range
// spans yield an invalid-input result rather than an error.
func (v *AnswerValidator) Validate(
	q *entities.Question,
	userSpans []int,
	priorSubmissions [][]int,
) (entities.ValidationResult, error) {
	if q == nil || len(q.Constructions) == 0 {
		return entities.ValidationResult{}, ErrNoConstructions
	}

	selected := newIntSet(userSpans)
	for _, prior := range priorSubmissions {
		for _, pos := range prior {
			selected.add(pos)
		}
	}

	for pos := range selected {
		if pos < 0 || pos >= len(q.Segments) {
			return invalidResult(fmt.Sprintf("selection position %d is out of range", pos)), nil
		}
	}

	required := make(intSet)
	var (
		credit  float64
		matched []int
		missed  []int
	)
	for ci, c := range q.Constructions {
		hit := 0
		for _, pos := range c.Spans {
			required.add(pos)
			if selected.contains(pos) {
				hit++
			}
		}
		if hit == len(c.Spans) {
			matched = append(matched, ci)
			credit++
			continue
		}
		missed = append(missed, ci)
		// Partial overlap earns proportional credit; a fully missed
		// construction earns none.
		credit += float64(hit) / float64(len(c.Spans))
	}

	var extras []int
	for _, pos := range selected.sorted() {
		if !required.contains(pos) {
			extras = append(extras, pos)
		}
	}

	raw := credit/float64(len(q.Constructions)) - extraSpanPenalty*float64(len(extras))
	raw = clamp01(raw)

	result := entities.ValidationResult{
		Score:      int(math.Round(raw * 100)),
		Matched:    matched,
		Missed:     missed,
		ExtraSpans: extras,
	}

	label := entities.TypeLabel(q.TargetType)
	switch {
	case len(matched) == len(q.Constructions) && len(extras) == 0:
		result.IsCorrect = true
		result.Tier = entities.TierExact
		result.Message = fmt.Sprintf("Perfect! You found every %s in this verse.", label)
	case raw >= bandClose:
		result.Partial = true
		result.Tier = entities.TierClose
		result.Message = "Very close — most of the construction is identified."
		result.Tip = "Check whether you missed a segment or selected one too many."
	case raw >= bandPartial:
		result.Partial = true
		result.Tier = entities.TierPartial
		result.Message = "Partially correct."
		result.Tip = "Look again at which words the construction links together."
	case raw > 0:
		result.Partial = true
		result.Tier = entities.TierIncorrect
		result.Message = "Only a small part of your selection is right."
		result.Tip = fmt.Sprintf("Start from the defining word of a %s and work outward.", label)
	default:
		result.Tier = entities.TierIncorrect
		result.Message = "Not correct this time."
		result.Tip = fmt.Sprintf("Review how a %s is formed and try again.", label)
	}

	return result, nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func invalidResult(message string) entities.ValidationResult {
	return entities.ValidationResult{
		Tier:    entities.TierInvalid,
		Message: message,
		Tip:     "Clear the selection and try again.",
	}
}
