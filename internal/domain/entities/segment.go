// Package entities contains domain entities used across the application.
package entities

import "fmt"

// MorphologyClass classifies a segment by its part of speech.
type MorphologyClass string

const (
	ClassNoun      MorphologyClass = "noun"
	ClassVerb      MorphologyClass = "verb"
	ClassParticle  MorphologyClass = "particle"
	ClassAdjective MorphologyClass = "adjective"
)

// PositionType describes where a segment sits inside its word.
type PositionType string

const (
	PositionPrefix PositionType = "prefix"
	PositionRoot   PositionType = "root"
	PositionSuffix PositionType = "suffix"
)

// GrammaticalCase is the case marking of a nominal segment.
// CaseUnknown means the annotator supplied no case information.
type GrammaticalCase string

const (
	CaseNominative GrammaticalCase = "nominative"
	CaseAccusative GrammaticalCase = "accusative"
	CaseGenitive   GrammaticalCase = "genitive"
	CaseUnknown    GrammaticalCase = ""
)

// Segment is a single morphologically tagged token of Quranic text.
// Segments are produced by the corpus annotation step and are read-only
// to the detection and validation core.
type Segment struct {
	ID              string          // stable position key, "surah-verse-word-segment"
	Text            string          // surface form with diacritics
	MorphologyClass MorphologyClass // noun, verb, particle, adjective
	PositionType    PositionType    // prefix, root, suffix

	// Optional grammatical attributes. Empty string means unannotated.
	Case            GrammaticalCase
	Number          string // singular, dual, plural
	Gender          string // masculine, feminine
	Person          string // first, second, third
	Tense           string // perfect, imperfect, imperative
	Voice           string // active, passive
	Mood            string // indicative, subjunctive, jussive
	GrammaticalRole string // annotator-supplied role hint, e.g. "preposition", "construct"
	IsDefinite      bool   // carries the definite article or is inherently definite
}

// NewSegmentID builds the canonical segment ID from corpus coordinates.
func NewSegmentID(surah, verse, word, segment int) string {
	return fmt.Sprintf("%d-%d-%d-%d", surah, verse, word, segment)
}

// IsNoun reports whether the segment is a noun or an adjective used nominally.
func (s Segment) IsNoun() bool {
	return s.MorphologyClass == ClassNoun
}

// IsVerb reports whether the segment is tagged as a verb.
func (s Segment) IsVerb() bool {
	return s.MorphologyClass == ClassVerb
}

// IsParticle reports whether the segment is tagged as a particle.
func (s Segment) IsParticle() bool {
	return s.MorphologyClass == ClassParticle
}

// HasCase reports whether the annotator supplied case information.
func (s Segment) HasCase() bool {
	return s.Case != CaseUnknown
}

// VerseRef identifies a verse within the corpus. It is passed through for
// explanatory purposes only and never influences detection.
type VerseRef struct {
	Surah int
	Verse int
}

func (r VerseRef) String() string {
	return fmt.Sprintf("%d:%d", r.Surah, r.Verse)
}

// Verse is an ordered, immutable sequence of segments with its source text.
type Verse struct {
	Ref      VerseRef
	Text     string
	Segments []Segment
}
