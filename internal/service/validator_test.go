package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

func spanQuestion(constructions ...entities.Construction) *entities.Question {
	segments := make([]entities.Segment, 8)
	for i := range segments {
		segments[i] = entities.Segment{
			ID:              entities.NewSegmentID(1, 1, i+1, 1),
			Text:            "x",
			MorphologyClass: entities.ClassNoun,
			PositionType:    entities.PositionRoot,
		}
	}
	return &entities.Question{
		VerseRef:      entities.VerseRef{Surah: 1, Verse: 1},
		Segments:      segments,
		TargetType:    entities.ConstructionIdafa,
		Constructions: constructions,
	}
}

func idafaAt(a, b int) entities.Construction {
	return entities.Construction{
		Type:      entities.ConstructionIdafa,
		Spans:     []int{a, b},
		Roles:     []string{entities.RoleMudaf, entities.RoleMudafIlayh},
		Certainty: entities.CertaintyDefinite,
	}
}

func TestAnswerValidator_ExactMatch(t *testing.T) {
	q := spanQuestion(idafaAt(0, 1))

	got, err := NewAnswerValidator().Validate(q, []int{0, 1}, nil)
	require.NoError(t, err)

	assert.True(t, got.IsCorrect)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, entities.TierExact, got.Tier)
	assert.Equal(t, []int{0}, got.Matched)
	assert.Empty(t, got.Missed)
	assert.Empty(t, got.ExtraSpans)
}

func TestAnswerValidator_PartialCreditWithExtra(t *testing.T) {
	// One correct span and one irrelevant extra: partial credit, neither
	// exact nor zero.
	q := spanQuestion(idafaAt(0, 1))

	got, err := NewAnswerValidator().Validate(q, []int{0, 4}, nil)
	require.NoError(t, err)

	assert.False(t, got.IsCorrect)
	assert.True(t, got.Partial)
	assert.Greater(t, got.Score, 0)
	assert.Less(t, got.Score, 100)
	assert.Equal(t, []int{4}, got.ExtraSpans)
}

func TestAnswerValidator_ExtrasStrictlyDecreaseScore(t *testing.T) {
	q := spanQuestion(idafaAt(0, 1))
	v := NewAnswerValidator()

	prev := 101
	for _, spans := range [][]int{
		{0, 1},
		{0, 1, 4},
		{0, 1, 4, 5},
		{0, 1, 4, 5, 6},
	} {
		got, err := v.Validate(q, spans, nil)
		require.NoError(t, err)
		assert.Less(t, got.Score, prev)
		assert.GreaterOrEqual(t, got.Score, 0)
		assert.LessOrEqual(t, got.Score, 100)
		prev = got.Score
	}
}

func TestAnswerValidator_PriorSubmissionsAccumulate(t *testing.T) {
	q := spanQuestion(idafaAt(0, 1))

	got, err := NewAnswerValidator().Validate(q, []int{1}, [][]int{{0}})
	require.NoError(t, err)

	assert.True(t, got.IsCorrect)
	assert.Equal(t, 100, got.Score)
}

func TestAnswerValidator_FeedbackBands(t *testing.T) {
	tests := []struct {
		name      string
		questions []entities.Construction
		spans     []int
		wantTier  entities.FeedbackTier
		wantScore int
	}{
		{
			name:      "close band at 0.75",
			questions: []entities.Construction{idafaAt(0, 1), idafaAt(2, 3)},
			spans:     []int{0, 1, 2},
			wantTier:  entities.TierClose,
			wantScore: 75,
		},
		{
			name:      "partial band at 0.5",
			questions: []entities.Construction{idafaAt(0, 1), idafaAt(2, 3)},
			spans:     []int{0, 2},
			wantTier:  entities.TierPartial,
			wantScore: 50,
		},
		{
			name:      "low partial band",
			questions: []entities.Construction{idafaAt(0, 1), idafaAt(2, 3)},
			spans:     []int{0},
			wantTier:  entities.TierIncorrect,
			wantScore: 25,
		},
		{
			name:      "zero band",
			questions: []entities.Construction{idafaAt(0, 1)},
			spans:     nil,
			wantTier:  entities.TierIncorrect,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := spanQuestion(tt.questions...)
			got, err := NewAnswerValidator().Validate(q, tt.spans, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.False(t, got.IsCorrect)
		})
	}
}

func TestAnswerValidator_OnlyExtrasClampsToZero(t *testing.T) {
	q := spanQuestion(idafaAt(0, 1))

	got, err := NewAnswerValidator().Validate(q, []int{4, 5, 6, 7}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, entities.TierIncorrect, got.Tier)
}

func TestAnswerValidator_OutOfRangeSpanIsInvalidInput(t *testing.T) {
	q := spanQuestion(idafaAt(0, 1))

	got, err := NewAnswerValidator().Validate(q, []int{0, 99}, nil)
	require.NoError(t, err)

	assert.Equal(t, entities.TierInvalid, got.Tier)
	assert.False(t, got.IsCorrect)
}

func TestAnswerValidator_EmptyConstructionSetIsFatal(t *testing.T) {
	_, err := NewAnswerValidator().Validate(spanQuestion(), []int{0}, nil)
	assert.ErrorIs(t, err, ErrNoConstructions)

	_, err = NewAnswerValidator().Validate(nil, []int{0}, nil)
	assert.ErrorIs(t, err, ErrNoConstructions)
}
