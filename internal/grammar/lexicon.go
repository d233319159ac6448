package grammar

import (
	"strings"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// weakPrepositions are the single-letter attachable prepositions. They do
// not break a possessive reading when they occur inside an idafa window.
var weakPrepositions = map[string]struct{}{
	"ب": {},
	"ل": {},
	"ك": {},
}

// separatePrepositions is the closed lexicon of standalone prepositions,
// in normalized (diacritic-stripped, letter-folded) form.
var separatePrepositions = map[string]struct{}{
	"ب":   {},
	"ل":   {},
	"ك":   {},
	"من":  {},
	"عن":  {},
	"في":  {},
	"الي": {}, // إلى
	"علي": {}, // على
	"حتي": {}, // حتى
	"مذ":  {},
	"منذ": {},
}

// accusativeParticles is the closed lexicon of harf nasb particles, in
// diacritic-stripped form. Hamza variants are kept distinct here so that
// كَأَنَّ does not collide with the verb كان.
var accusativeParticles = map[string]struct{}{
	"إن":  {}, // inna (indeed)
	"أن":  {}, // anna (that)
	"كأن": {}, // ka'anna (as if)
	"لكن": {}, // lakinna (but)
	"ليت": {}, // layta (if only)
	"لعل": {}, // la'alla (perhaps)
}

// isPreposition reports whether the segment reads as a preposition, either
// by its annotation or by textual lexicon match.
func isPreposition(seg entities.Segment) bool {
	if seg.IsParticle() && seg.GrammaticalRole == "preposition" {
		return true
	}
	_, ok := separatePrepositions[normalizeArabic(seg.Text)]
	return ok
}

// isStrongPreposition reports whether the segment is a preposition outside
// the weak attachable set. A strong preposition between a candidate mudaf
// and mudaf-ilayh breaks the possessive reading.
func isStrongPreposition(seg entities.Segment) bool {
	if !isPreposition(seg) {
		return false
	}
	_, weak := weakPrepositions[normalizeArabic(seg.Text)]
	return !weak
}

// isAttachedPreposition reports whether the segment text starts with a
// single-letter preposition fused to a stem of at least two letters, i.e.
// the upstream segmentation did not split the prefix off.
func isAttachedPreposition(seg entities.Segment) bool {
	stripped := []rune(stripDiacritics(seg.Text))
	if len(stripped) < 3 {
		return false
	}
	_, ok := weakPrepositions[string(stripped[0])]
	return ok
}

// isDefiniteArticle reports whether the segment is the standalone definite
// article particle (ال / ٱل).
func isDefiniteArticle(seg entities.Segment) bool {
	return seg.IsParticle() && normalizeArabic(seg.Text) == "ال"
}

// carriesDefiniteArticle reports whether the segment itself shows
// definiteness: an annotator flag or a fused article prefix in its text.
func carriesDefiniteArticle(seg entities.Segment) bool {
	if seg.IsDefinite {
		return true
	}
	return strings.HasPrefix(normalizeArabic(seg.Text), "ال")
}

// isAccusativeParticle reports whether the segment text matches the harf
// nasb lexicon.
func isAccusativeParticle(seg entities.Segment) bool {
	_, ok := accusativeParticles[stripDiacritics(seg.Text)]
	return ok
}
