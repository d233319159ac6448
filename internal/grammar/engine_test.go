package grammar

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// bismillahLike is a small sequence that exercises all four detectors.
func bismillahLike() []entities.Segment {
	return seq(
		particle("بِ", "preposition"),
		noun("سْمِ", entities.CaseGenitive),
		definiteNoun("ٱللَّهِ", entities.CaseGenitive),
		particle("إِنَّ", ""),
		noun("ٱللَّهَ", entities.CaseAccusative),
		verb("خَلَقَ"),
		noun("ٱلْإِنسَٰنَ", entities.CaseAccusative),
	)
}

func TestEngine_DetectAll_SpanInvariants(t *testing.T) {
	segments := bismillahLike()
	got := NewEngine().DetectAll(segments)
	require.NotEmpty(t, got)

	for _, c := range got {
		if len(c.Roles) == 1 && c.Roles[0] == entities.RoleJarMajrurCombined {
			assert.Len(t, c.Spans, 1)
		} else {
			assert.Len(t, c.Spans, 2)
		}
		for _, pos := range c.Spans {
			assert.GreaterOrEqual(t, pos, 0)
			assert.Less(t, pos, len(segments))
		}
		assert.Len(t, c.Roles, len(c.Spans))
		assert.NotZero(t, c.Certainty.Rank(), "certainty must be set")
	}
}

func TestEngine_DetectAll_Deterministic(t *testing.T) {
	segments := bismillahLike()
	engine := NewEngine()

	first := engine.DetectAll(segments)
	second := engine.DetectAll(segments)
	assert.Equal(t, first, second)
}

func TestEngine_DetectAll_OrderIndependent(t *testing.T) {
	segments := bismillahLike()
	engine := NewEngine()

	all := engine.DetectAll(segments)

	// Merge single-detector runs in a scrambled order; the multiset of
	// construction keys must not change.
	types := []entities.ConstructionType{
		entities.ConstructionHarfNasb,
		entities.ConstructionIdafa,
		entities.ConstructionFilFail,
		entities.ConstructionJarMajrur,
	}
	var merged []entities.Construction
	for _, tt := range types {
		merged = append(merged, engine.DetectType(segments, tt)...)
	}

	assert.ElementsMatch(t, keys(segments, all), keys(segments, merged))
}

func TestEngine_DetectType_UnknownType(t *testing.T) {
	assert.Nil(t, NewEngine().DetectType(bismillahLike(), "no-such-type"))
}

func TestEngine_IndependentInstances(t *testing.T) {
	segments := bismillahLike()
	a := NewEngine().DetectAll(segments)
	b := NewEngine().DetectAll(segments)
	assert.Equal(t, a, b)
}

func TestConstructionKey_Deterministic(t *testing.T) {
	segments := bismillahLike()
	got := NewEngine().DetectAll(segments)
	require.NotEmpty(t, got)

	seen := map[string]bool{}
	for _, c := range got {
		key := c.Key(segments)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
		assert.Equal(t, key, c.Key(segments))
	}
}

func TestBuildRelationshipIndex_SharedSegment(t *testing.T) {
	segments := bismillahLike()
	constructions := NewEngine().DetectAll(segments)
	idx := BuildRelationshipIndex(segments, constructions)

	// سْمِ is both the majrur of بِ and the mudaf of ٱللَّهِ.
	refs := idx[1]
	var roles []string
	for _, r := range refs {
		roles = append(roles, r.Role)
	}
	sort.Strings(roles)
	assert.Contains(t, roles, entities.RoleMajrur)
	assert.Contains(t, roles, entities.RoleMudaf)
}

func keys(segments []entities.Segment, cs []entities.Construction) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Key(segments))
	}
	return out
}
