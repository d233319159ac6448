package grammar

import (
	"fmt"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// FilFailDetector finds verb-subject pairs by pure adjacency: a verb
// immediately followed by a noun. There is no search window and no
// case/number agreement check, so non-adjacent and implied subjects are
// missed. The asymmetry with the idafa detector's graded evidence is
// deliberate and kept as-is; see DESIGN.md.
type FilFailDetector struct{}

// NewFilFailDetector creates a new FilFailDetector.
func NewFilFailDetector() *FilFailDetector {
	return &FilFailDetector{}
}

// Type returns the construction type this detector emits.
func (d *FilFailDetector) Type() entities.ConstructionType {
	return entities.ConstructionFilFail
}

// Detect emits a definite construction for every verb-noun adjacency.
func (d *FilFailDetector) Detect(segments []entities.Segment) []entities.Construction {
	var out []entities.Construction

	for i := 0; i+1 < len(segments); i++ {
		if !segments[i].IsVerb() || !segments[i+1].IsNoun() {
			continue
		}

		out = append(out, entities.Construction{
			Type:      entities.ConstructionFilFail,
			Spans:     []int{i, i + 1},
			Roles:     []string{entities.RoleFil, entities.RoleFail},
			Certainty: entities.CertaintyDefinite,
			Explanation: fmt.Sprintf(
				"verb %q with adjacent subject %q",
				segments[i].Text, segments[i+1].Text,
			),
			RoleBased: &entities.RoleBasedRelationship{
				PrimaryIndices:   []int{i},
				SecondaryIndices: []int{i + 1},
			},
		})
	}

	return out
}
