package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

func roleQuestion(constructions ...entities.Construction) *entities.Question {
	q := spanQuestion(constructions...)
	q.TargetType = entities.ConstructionFilFail
	return q
}

func filFailAt(verb, subject int) entities.Construction {
	return entities.Construction{
		Type:      entities.ConstructionFilFail,
		Spans:     []int{verb, subject},
		Roles:     []string{entities.RoleFil, entities.RoleFail},
		Certainty: entities.CertaintyDefinite,
		RoleBased: &entities.RoleBasedRelationship{
			PrimaryIndices:   []int{verb},
			SecondaryIndices: []int{subject},
		},
	}
}

func completeSelection(primary, secondary []int) *entities.UserSelection {
	return &entities.UserSelection{
		PrimaryIndices:   primary,
		SecondaryIndices: secondary,
		Step:             entities.StepComplete,
	}
}

func TestRoleBasedValidator_ExactMatch(t *testing.T) {
	q := roleQuestion(filFailAt(0, 1))

	got, err := NewRoleBasedValidator().Validate(q, completeSelection([]int{0}, []int{1}))
	require.NoError(t, err)

	assert.True(t, got.IsCorrect)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, entities.TierExact, got.Tier)
	assert.Equal(t, []int{0}, got.Matched)
}

func TestRoleBasedValidator_SecondaryOffByOne(t *testing.T) {
	// Exact primary, secondary with one extra element: the score must land
	// strictly between the partial and exact boundaries.
	q := roleQuestion(filFailAt(0, 1))

	got, err := NewRoleBasedValidator().Validate(q, completeSelection([]int{0}, []int{1, 2}))
	require.NoError(t, err)

	assert.False(t, got.IsCorrect)
	assert.Greater(t, got.Score, 40)
	assert.Less(t, got.Score, 95)
	// 60×1 + 40×(1/2)
	assert.Equal(t, 80, got.Score)
	assert.Equal(t, entities.TierClose, got.Tier)
}

func TestRoleBasedValidator_WeightsFavorPrimary(t *testing.T) {
	q := roleQuestion(filFailAt(0, 1))
	v := NewRoleBasedValidator()

	wrongSecondary, err := v.Validate(q, completeSelection([]int{0}, []int{3}))
	require.NoError(t, err)
	wrongPrimary, err := v.Validate(q, completeSelection([]int{3}, []int{1}))
	require.NoError(t, err)

	assert.Equal(t, 60, wrongSecondary.Score)
	assert.Equal(t, 40, wrongPrimary.Score)
	assert.Greater(t, wrongSecondary.Score, wrongPrimary.Score)
}

func TestRoleBasedValidator_BestCandidateWins(t *testing.T) {
	q := roleQuestion(filFailAt(0, 1), filFailAt(4, 5))

	got, err := NewRoleBasedValidator().Validate(q, completeSelection([]int{4}, []int{5}))
	require.NoError(t, err)

	assert.True(t, got.IsCorrect)
	assert.Equal(t, []int{1}, got.Matched)
}

func TestRoleBasedValidator_TieBreaksToFirstCandidate(t *testing.T) {
	// Two identical candidates: the first encountered wins.
	q := roleQuestion(filFailAt(0, 1), filFailAt(0, 1))

	got, err := NewRoleBasedValidator().Validate(q, completeSelection([]int{0}, []int{1}))
	require.NoError(t, err)

	assert.Equal(t, []int{0}, got.Matched)
}

func TestRoleBasedValidator_IncompleteSelectionIsInvalid(t *testing.T) {
	q := roleQuestion(filFailAt(0, 1))
	v := NewRoleBasedValidator()

	for _, sel := range []*entities.UserSelection{
		nil,
		{Step: entities.StepSelection},
		{Step: entities.StepPrimary, Spans: []int{0}},
		{Step: entities.StepSecondary, PrimaryIndices: []int{0}},
	} {
		got, err := v.Validate(q, sel)
		require.NoError(t, err)
		assert.Equal(t, entities.TierInvalid, got.Tier)
	}
}

func TestRoleBasedValidator_MissingIndicesAreInvalid(t *testing.T) {
	q := roleQuestion(filFailAt(0, 1))

	got, err := NewRoleBasedValidator().Validate(q, &entities.UserSelection{
		PrimaryIndices: []int{0},
		Step:           entities.StepComplete,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.TierInvalid, got.Tier)
}

func TestRoleBasedValidator_OutOfRangeIndexIsInvalid(t *testing.T) {
	q := roleQuestion(filFailAt(0, 1))

	got, err := NewRoleBasedValidator().Validate(q, completeSelection([]int{0}, []int{42}))
	require.NoError(t, err)
	assert.Equal(t, entities.TierInvalid, got.Tier)
}

func TestRoleBasedValidator_EmptyConstructionSetIsFatal(t *testing.T) {
	_, err := NewRoleBasedValidator().Validate(roleQuestion(), completeSelection([]int{0}, []int{1}))
	assert.ErrorIs(t, err, ErrNoConstructions)
}
