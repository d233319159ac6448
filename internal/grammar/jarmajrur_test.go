package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

func TestJarMajrurDetector_Bismillah(t *testing.T) {
	// "بِسْمِ" segmented as preposition + noun.
	segments := seq(
		particle("بِ", "preposition"),
		noun("سْمِ", entities.CaseGenitive),
	)

	got := NewJarMajrurDetector().Detect(segments)
	require.Len(t, got, 1)
	assert.Equal(t, entities.ConstructionJarMajrur, got[0].Type)
	assert.Equal(t, []int{0, 1}, got[0].Spans)
	assert.Equal(t, []string{entities.RoleJar, entities.RoleMajrur}, got[0].Roles)
	assert.Equal(t, entities.CertaintyDefinite, got[0].Certainty)
}

func TestJarMajrurDetector_LexiconMatchWithoutAnnotation(t *testing.T) {
	// Untagged مِن is still recognized through the lexicon, with and
	// without diacritics.
	for _, text := range []string{"مِن", "من"} {
		segments := seq(
			particle(text, ""),
			noun("قَبْلِكَ", entities.CaseUnknown),
		)

		got := NewJarMajrurDetector().Detect(segments)
		require.Len(t, got, 1, "text %q", text)
		assert.Equal(t, entities.CertaintyProbable, got[0].Certainty)
	}
}

func TestJarMajrurDetector_AttachedPrefixPass(t *testing.T) {
	// Unsplit "بِسْمِ" as a single noun segment.
	segments := seq(noun("بِسْمِ", entities.CaseUnknown))

	got := NewJarMajrurDetector().Detect(segments)
	require.Len(t, got, 1)
	assert.Equal(t, []int{0}, got[0].Spans)
	assert.Equal(t, []string{entities.RoleJarMajrurCombined}, got[0].Roles)
	assert.Equal(t, entities.CertaintyInferred, got[0].Certainty)
}

func TestJarMajrurDetector_ShortStemDoesNotFireAttachedPass(t *testing.T) {
	// A two-letter word starting with ب is not an attached preposition.
	segments := seq(noun("بَل", entities.CaseUnknown))
	var attached []entities.Construction
	for _, c := range NewJarMajrurDetector().Detect(segments) {
		if len(c.Spans) == 1 {
			attached = append(attached, c)
		}
	}
	assert.Empty(t, attached)
}

func TestJarMajrurDetector_OverlappingPassesAreKept(t *testing.T) {
	// Both passes fire and nothing is de-duplicated: the separate pass
	// pairs فِي with its object, while the attached pass fires on every
	// stem behind a fused prefix letter, including بُيُوتٍ itself.
	segments := seq(
		particle("فِي", "preposition"),
		noun("بُيُوتٍ", entities.CaseGenitive),
		noun("لِرَبِّهِم", entities.CaseGenitive),
	)

	got := NewJarMajrurDetector().Detect(segments)
	require.Len(t, got, 3)
	assert.Equal(t, []int{0, 1}, got[0].Spans)
	assert.Equal(t, entities.CertaintyDefinite, got[0].Certainty)
	assert.Equal(t, []int{1}, got[1].Spans)
	assert.Equal(t, entities.CertaintyInferred, got[1].Certainty)
	assert.Equal(t, []int{2}, got[2].Spans)
	assert.Equal(t, entities.CertaintyInferred, got[2].Certainty)
}

func TestJarMajrurDetector_RejectsUngovernableFollower(t *testing.T) {
	segments := seq(
		particle("مِن", "preposition"),
		verb("قَالَ"),
	)

	got := NewJarMajrurDetector().Detect(segments)
	assert.Empty(t, got)
}

func TestJarMajrurDetector_ConstructStateFollower(t *testing.T) {
	follower := entities.Segment{
		Text:            "عِندِ",
		MorphologyClass: entities.ClassAdjective,
		PositionType:    entities.PositionRoot,
		GrammaticalRole: "construct",
	}
	segments := seq(particle("مِن", "preposition"), follower)

	got := NewJarMajrurDetector().Detect(segments)
	require.Len(t, got, 1)
	assert.Equal(t, entities.CertaintyProbable, got[0].Certainty)
}
