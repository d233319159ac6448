package grammar

import (
	"fmt"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// JarMajrurDetector finds preposition-object constructions. It runs two
// independent passes: one over separately tokenized prepositions and one
// over prefixes fused into their stem. The passes may fire on overlapping
// ranges; no de-duplication is performed, consumers filter by certainty.
type JarMajrurDetector struct{}

// NewJarMajrurDetector creates a new JarMajrurDetector.
func NewJarMajrurDetector() *JarMajrurDetector {
	return &JarMajrurDetector{}
}

// Type returns the construction type this detector emits.
func (d *JarMajrurDetector) Type() entities.ConstructionType {
	return entities.ConstructionJarMajrur
}

// Detect scans the sequence with both passes and concatenates the results.
func (d *JarMajrurDetector) Detect(segments []entities.Segment) []entities.Construction {
	out := d.detectSeparate(segments)
	return append(out, d.detectAttached(segments)...)
}

// detectSeparate pairs a standalone preposition with the segment that
// follows it.
func (d *JarMajrurDetector) detectSeparate(segments []entities.Segment) []entities.Construction {
	var out []entities.Construction

	for i := 0; i+1 < len(segments); i++ {
		if !isPreposition(segments[i]) {
			continue
		}

		cand := segments[i+1]
		if !acceptsMajrur(cand) {
			continue
		}

		certainty := entities.CertaintyProbable
		evidence := "follows a preposition"
		if cand.Case == entities.CaseGenitive {
			certainty = entities.CertaintyDefinite
			evidence = "genitive case after a preposition"
		}

		out = append(out, entities.Construction{
			Type:      entities.ConstructionJarMajrur,
			Spans:     []int{i, i + 1},
			Roles:     []string{entities.RoleJar, entities.RoleMajrur},
			Certainty: certainty,
			Explanation: fmt.Sprintf(
				"preposition %q governs %q (%s)",
				segments[i].Text, cand.Text, evidence,
			),
		})
	}

	return out
}

// detectAttached emits a single-span construction for every segment whose
// text begins with a fused single-letter preposition. The prefix and stem
// were not segmented apart upstream, so the certainty is only inferred.
func (d *JarMajrurDetector) detectAttached(segments []entities.Segment) []entities.Construction {
	var out []entities.Construction

	for i, seg := range segments {
		if !isAttachedPreposition(seg) {
			continue
		}

		out = append(out, entities.Construction{
			Type:      entities.ConstructionJarMajrur,
			Spans:     []int{i},
			Roles:     []string{entities.RoleJarMajrurCombined},
			Certainty: entities.CertaintyInferred,
			Explanation: fmt.Sprintf(
				"%q carries an attached preposition prefix", seg.Text,
			),
		})
	}

	return out
}

// acceptsMajrur reports whether the segment can stand as the governed noun:
// a noun, anything tagged genitive, or a construct-state noun.
func acceptsMajrur(seg entities.Segment) bool {
	if seg.IsNoun() {
		return true
	}
	if seg.Case == entities.CaseGenitive {
		return true
	}
	return seg.GrammaticalRole == "construct"
}
