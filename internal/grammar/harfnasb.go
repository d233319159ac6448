package grammar

import (
	"fmt"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// HarfNasbDetector finds accusative particles (inna and her sisters)
// governing the immediately following noun or verb. Like the fil-fail
// detector it is adjacency-only and always definite.
type HarfNasbDetector struct{}

// NewHarfNasbDetector creates a new HarfNasbDetector.
func NewHarfNasbDetector() *HarfNasbDetector {
	return &HarfNasbDetector{}
}

// Type returns the construction type this detector emits.
func (d *HarfNasbDetector) Type() entities.ConstructionType {
	return entities.ConstructionHarfNasb
}

// Detect emits a definite construction for every lexicon particle followed
// by a noun or verb.
func (d *HarfNasbDetector) Detect(segments []entities.Segment) []entities.Construction {
	var out []entities.Construction

	for i := 0; i+1 < len(segments); i++ {
		if !isAccusativeParticle(segments[i]) {
			continue
		}

		cand := segments[i+1]
		if !cand.IsNoun() && !cand.IsVerb() {
			continue
		}

		out = append(out, entities.Construction{
			Type:      entities.ConstructionHarfNasb,
			Spans:     []int{i, i + 1},
			Roles:     []string{entities.RoleHarfNasb, entities.RoleIsmuha},
			Certainty: entities.CertaintyDefinite,
			Explanation: fmt.Sprintf(
				"accusative particle %q governs %q",
				segments[i].Text, cand.Text,
			),
			RoleBased: &entities.RoleBasedRelationship{
				PrimaryIndices:   []int{i},
				SecondaryIndices: []int{i + 1},
			},
		})
	}

	return out
}
