package service

import (
	"fmt"
	"math"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// Weighted dual-role scoring: misidentifying the governing element is a
// more serious error than the governed one.
const (
	primaryWeight   = 60.0
	secondaryWeight = 40.0
)

// Role-based feedback band boundaries on the 0-100 score.
const (
	roleBandExact   = 95
	roleBandClose   = 70
	roleBandPartial = 40
)

// RoleBasedValidator scores a two-phase primary/secondary role selection
// against the role-based constructions of a question.
type RoleBasedValidator struct{}

// NewRoleBasedValidator creates a new RoleBasedValidator.
func NewRoleBasedValidator() *RoleBasedValidator {
	return &RoleBasedValidator{}
}

// Validate compares the selection against every candidate construction and
// keeps the best match: 100 for an exact dual match, otherwise a weighted
// Jaccard similarity of the two index sets. Ties go to the candidate
// encountered first. A selection that never reached the complete step, or
// with missing or out-of-range indices, yields an invalid-input result.
func (v *RoleBasedValidator) Validate(
	q *entities.Question,
	sel *entities.UserSelection,
) (entities.ValidationResult, error) {
	if q == nil || len(q.Constructions) == 0 {
		return entities.ValidationResult{}, ErrNoConstructions
	}

	if sel == nil || sel.Step != entities.StepComplete {
		return invalidResult("finish selecting both roles before submitting"), nil
	}
	if len(sel.PrimaryIndices) == 0 || len(sel.SecondaryIndices) == 0 {
		return invalidResult("both a primary and a secondary role selection are required"), nil
	}
	for _, pos := range append(append([]int(nil), sel.PrimaryIndices...), sel.SecondaryIndices...) {
		if pos < 0 || pos >= len(q.Segments) {
			return invalidResult(fmt.Sprintf("selection position %d is out of range", pos)), nil
		}
	}

	primary := newIntSet(sel.PrimaryIndices)
	secondary := newIntSet(sel.SecondaryIndices)

	best := -1.0
	bestIdx := -1
	for ci, c := range q.Constructions {
		if c.RoleBased == nil {
			continue
		}
		candPrimary := newIntSet(c.RoleBased.PrimaryIndices)
		candSecondary := newIntSet(c.RoleBased.SecondaryIndices)

		var score float64
		if setsEqual(primary, candPrimary) && setsEqual(secondary, candSecondary) {
			score = 100
		} else {
			score = primaryWeight*jaccard(primary, candPrimary) +
				secondaryWeight*jaccard(secondary, candSecondary)
		}

		if score > best {
			best = score
			bestIdx = ci
		}
	}

	if bestIdx < 0 {
		return entities.ValidationResult{}, ErrNoConstructions
	}

	result := entities.ValidationResult{
		Score: int(math.Round(best)),
	}

	label := entities.TypeLabel(q.TargetType)
	switch {
	case result.Score >= roleBandExact:
		result.IsCorrect = true
		result.Tier = entities.TierExact
		result.Matched = []int{bestIdx}
		result.Message = fmt.Sprintf("Excellent! Both roles of the %s are right.", label)
	case result.Score >= roleBandClose:
		result.Partial = true
		result.Tier = entities.TierClose
		result.Missed = []int{bestIdx}
		result.Message = "Very close — one of the roles is slightly off."
		result.Tip = "Re-check which segments belong to the governed role."
	case result.Score >= roleBandPartial:
		result.Partial = true
		result.Tier = entities.TierPartial
		result.Missed = []int{bestIdx}
		result.Message = "Partially correct — one role is misidentified."
		result.Tip = "The governing word comes first; find it before its dependent."
	default:
		result.Tier = entities.TierIncorrect
		result.Missed = []int{bestIdx}
		result.Message = "Not correct this time."
		result.Tip = fmt.Sprintf("Review which word governs a %s and which is governed.", label)
	}

	return result, nil
}
