package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

func TestIdafaDetector_GenitiveChain(t *testing.T) {
	// "ذِكْرُ رَحْمَتِ رَبِّكَ", mention of the mercy of your Lord.
	segments := seq(
		noun("ذِكْرُ", entities.CaseNominative),
		noun("رَحْمَتِ", entities.CaseGenitive),
		noun("رَبِّكَ", entities.CaseGenitive),
	)

	got := NewIdafaDetector().Detect(segments)
	require.Len(t, got, 2)

	assert.Equal(t, []int{0, 1}, got[0].Spans)
	assert.Equal(t, []int{1, 2}, got[1].Spans)
	for _, c := range got {
		assert.Equal(t, entities.ConstructionIdafa, c.Type)
		assert.Equal(t, []string{entities.RoleMudaf, entities.RoleMudafIlayh}, c.Roles)
		assert.Equal(t, entities.CertaintyDefinite, c.Certainty)
	}

	chains := AssembleChains(got)
	require.Len(t, chains, 1)
	assert.Equal(t, []int{0, 1, 2}, chains[0].Spans())
}

func TestIdafaDetector_SkipsDefiniteArticle(t *testing.T) {
	// The article between the nouns must not consume the window.
	segments := seq(
		noun("كِتَابُ", entities.CaseNominative),
		particle("ٱل", ""),
		definiteNoun("مَلِكِ", entities.CaseUnknown),
	)

	got := NewIdafaDetector().Detect(segments)
	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 2}, got[0].Spans)
	assert.Equal(t, entities.CertaintyProbable, got[0].Certainty)
}

func TestIdafaDetector_StrongPrepositionBreaks(t *testing.T) {
	segments := seq(
		noun("كِتَابُ", entities.CaseNominative),
		particle("مِن", "preposition"),
		noun("رَبِّكَ", entities.CaseGenitive),
	)

	got := NewIdafaDetector().Detect(segments)
	// The broken reading at position 0 disappears, but the scan restarts
	// from the second noun, which has no following candidate.
	assert.Empty(t, got)
}

func TestIdafaDetector_WeakPrepositionDoesNotBreak(t *testing.T) {
	segments := seq(
		noun("كِتَابُ", entities.CaseNominative),
		particle("بِ", "preposition"),
		noun("رَبِّكَ", entities.CaseGenitive),
	)

	got := NewIdafaDetector().Detect(segments)
	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 2}, got[0].Spans)
}

func TestIdafaDetector_CertaintyGrading(t *testing.T) {
	tests := []struct {
		name string
		cand entities.Segment
		want entities.Certainty
	}{
		{"genitive is definite", noun("رَبِّ", entities.CaseGenitive), entities.CertaintyDefinite},
		{"article is probable", definiteNoun("مَلِكِ", entities.CaseUnknown), entities.CertaintyProbable},
		{"no case is inferred", noun("قَوْمٍ", entities.CaseUnknown), entities.CertaintyInferred},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := seq(noun("ذِكْرُ", entities.CaseNominative), tt.cand)
			got := NewIdafaDetector().Detect(segments)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Certainty)
		})
	}
}

func TestIdafaDetector_FirstMatchWins(t *testing.T) {
	segments := seq(
		noun("ذِكْرُ", entities.CaseNominative),
		noun("رَحْمَتِ", entities.CaseGenitive),
		noun("رَبِّكَ", entities.CaseGenitive),
	)

	got := NewIdafaDetector().Detect(segments)
	require.Len(t, got, 2)
	// Position 0 pairs with 1, never with 2.
	assert.Equal(t, []int{0, 1}, got[0].Spans)
}

func TestIdafaDetector_WindowExhausted(t *testing.T) {
	segments := seq(
		noun("ذِكْرُ", entities.CaseNominative),
		verb("قَالَ"),
		verb("قَالَ"),
		verb("قَالَ"),
		noun("رَبِّكَ", entities.CaseGenitive),
	)

	got := NewIdafaDetector().Detect(segments)
	assert.Empty(t, got)
}

func TestIdafaDetector_RejectsCasedNonGenitive(t *testing.T) {
	segments := seq(
		noun("ذِكْرُ", entities.CaseNominative),
		noun("رَجُلٌ", entities.CaseNominative),
	)

	got := NewIdafaDetector().Detect(segments)
	assert.Empty(t, got)
}

func TestAssembleChains_IsolatedPairsAreNotChains(t *testing.T) {
	// The pairs sit more than a search window apart, so the scan from the
	// first genitive exhausts on the verbs and no third pair bridges them.
	segments := seq(
		noun("ذِكْرُ", entities.CaseNominative),
		noun("رَحْمَتِ", entities.CaseGenitive),
		verb("قَالَ"),
		verb("قَالَ"),
		verb("قَالَ"),
		noun("كِتَابُ", entities.CaseNominative),
		noun("رَبِّكَ", entities.CaseGenitive),
	)

	got := NewIdafaDetector().Detect(segments)
	require.Len(t, got, 2)
	assert.Equal(t, []int{0, 1}, got[0].Spans)
	assert.Equal(t, []int{5, 6}, got[1].Spans)
	assert.Empty(t, AssembleChains(got))
}
