package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstructionType identifies one of the four supported grammatical constructions.
type ConstructionType string

const (
	ConstructionIdafa     ConstructionType = "idafa"
	ConstructionJarMajrur ConstructionType = "jar-majrur"
	ConstructionFilFail   ConstructionType = "fil-fail"
	ConstructionHarfNasb  ConstructionType = "harf-nasb-ismuha"
)

// Certainty grades how confident a detector is in a construction.
// The values are totally ordered: definite > probable > inferred.
type Certainty string

const (
	CertaintyDefinite Certainty = "definite"
	CertaintyProbable Certainty = "probable"
	CertaintyInferred Certainty = "inferred"
)

// Rank returns the ordering rank of the certainty, higher is stronger.
func (c Certainty) Rank() int {
	switch c {
	case CertaintyDefinite:
		return 3
	case CertaintyProbable:
		return 2
	case CertaintyInferred:
		return 1
	default:
		return 0
	}
}

// Role labels used for construction spans.
const (
	RoleMudaf             = "mudaf"
	RoleMudafIlayh        = "mudaf-ilayh"
	RoleJar               = "jar"
	RoleMajrur            = "majrur"
	RoleJarMajrurCombined = "jar-majrur-combined"
	RoleFil               = "fil"
	RoleFail              = "fail"
	RoleHarfNasb          = "harf-nasb"
	RoleIsmuha            = "ismuha"
)

// RoleBasedRelationship splits a construction into its governing (primary)
// and governed (secondary) elements for two-step answer validation.
// SecondaryIndices may be empty when the governed element is grammatically
// implied rather than lexically present.
type RoleBasedRelationship struct {
	PrimaryIndices   []int
	SecondaryIndices []int
}

// Construction is a detected grammatical relationship between segments.
// Spans hold positions into the originating segment sequence. Constructions
// are immutable value objects created fresh on every detection call.
type Construction struct {
	Type        ConstructionType
	Spans       []int     // ordered segment positions, arity fixed per type
	Roles       []string  // per-span role label, parallel to Spans
	Certainty   Certainty // definite, probable, inferred
	Explanation string    // human-readable justification

	// RoleBased is set only for fil-fail and harf-nasb-ismuha.
	RoleBased *RoleBasedRelationship
}

// Key returns a deterministic identity for the construction derived from
// its type, spans and the IDs of the segments it covers. Two detection runs
// over the same input always produce the same keys.
func (c Construction) Key(segments []Segment) string {
	var b strings.Builder
	b.WriteString(string(c.Type))
	for _, pos := range c.Spans {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(pos))
		if pos >= 0 && pos < len(segments) {
			b.WriteByte('/')
			b.WriteString(segments[pos].ID)
		}
	}
	return b.String()
}

// IsRoleBased reports whether the construction requires two-step
// primary/secondary identification.
func (c Construction) IsRoleBased() bool {
	return c.RoleBased != nil
}

// ContainsSpan reports whether pos is one of the construction's spans.
func (c Construction) ContainsSpan(pos int) bool {
	for _, s := range c.Spans {
		if s == pos {
			return true
		}
	}
	return false
}

// Chain is an ordered list of idafa constructions where construction k's
// mudaf-ilayh span equals construction k+1's mudaf span, representing
// multi-level possession ("mention of the mercy of your Lord").
type Chain struct {
	Links []Construction
}

// Spans returns the pivot-deduplicated segment positions covered by the
// chain, in order: A-B, B-C yields [A, B, C].
func (ch Chain) Spans() []int {
	if len(ch.Links) == 0 {
		return nil
	}
	out := []int{ch.Links[0].Spans[0]}
	for _, link := range ch.Links {
		out = append(out, link.Spans[1])
	}
	return out
}

// TypeLabel returns the human-readable name of a construction type.
func TypeLabel(t ConstructionType) string {
	switch t {
	case ConstructionIdafa:
		return "Iḍāfa (possessive)"
	case ConstructionJarMajrur:
		return "Jar wa Majrūr (preposition + genitive)"
	case ConstructionFilFail:
		return "Fiʿl wa Fāʿil (verb + subject)"
	case ConstructionHarfNasb:
		return "Harf Naṣb + Ismuha (accusative particle)"
	default:
		return fmt.Sprintf("unknown (%s)", string(t))
	}
}
