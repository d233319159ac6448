package grammar

import (
	"fmt"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// idafaWindow is how many non-article segments after the mudaf candidate
// are examined for a mudaf-ilayh.
const idafaWindow = 3

// IdafaDetector finds possessive constructions linking a possessed noun
// (mudaf) to its possessor (mudaf-ilayh).
type IdafaDetector struct{}

// NewIdafaDetector creates a new IdafaDetector.
func NewIdafaDetector() *IdafaDetector {
	return &IdafaDetector{}
}

// Type returns the construction type this detector emits.
func (d *IdafaDetector) Type() entities.ConstructionType {
	return entities.ConstructionIdafa
}

// Detect scans the sequence for idafa pairs. For each noun it looks ahead
// up to idafaWindow segments, skipping definite-article particles without
// consuming the window, and stops at the first valid mudaf-ilayh. A strong
// preposition strictly between the two nouns breaks the possessive reading.
func (d *IdafaDetector) Detect(segments []entities.Segment) []entities.Construction {
	var out []entities.Construction

	for i := range segments {
		if !segments[i].IsNoun() {
			continue
		}

		examined := 0
		for j := i + 1; j < len(segments); j++ {
			cand := segments[j]

			// The article belongs to the following noun and does not
			// consume the search window.
			if isDefiniteArticle(cand) {
				continue
			}

			examined++
			if examined > idafaWindow {
				break
			}

			if isStrongPreposition(cand) {
				break
			}

			if !cand.IsNoun() {
				continue
			}

			certainty, evidence, ok := mudafIlayhEvidence(segments, j)
			if !ok {
				continue
			}

			out = append(out, entities.Construction{
				Type:      entities.ConstructionIdafa,
				Spans:     []int{i, j},
				Roles:     []string{entities.RoleMudaf, entities.RoleMudafIlayh},
				Certainty: certainty,
				Explanation: fmt.Sprintf(
					"%q is possessed by %q (%s)",
					segments[i].Text, cand.Text, evidence,
				),
			})

			// First valid match wins for this mudaf.
			break
		}
	}

	return out
}

// mudafIlayhEvidence grades the evidence that the noun at pos is a
// mudaf-ilayh. Genitive case is definite evidence; a definite article on or
// before the noun is probable; a noun with no case annotation at all is
// accepted as inferred, a permissive fallback for incomplete annotation.
func mudafIlayhEvidence(segments []entities.Segment, pos int) (entities.Certainty, string, bool) {
	seg := segments[pos]

	if seg.Case == entities.CaseGenitive {
		return entities.CertaintyDefinite, "genitive case", true
	}

	if carriesDefiniteArticle(seg) || (pos > 0 && isDefiniteArticle(segments[pos-1])) {
		return entities.CertaintyProbable, "definite article", true
	}

	if !seg.HasCase() {
		return entities.CertaintyInferred, "no case annotation", true
	}

	return "", "", false
}

// AssembleChains links idafa constructions into possession chains: link k's
// mudaf-ilayh span must equal link k+1's mudaf span. Encounter order is
// preserved and a chain needs at least two links; isolated pairs are not
// chains.
func AssembleChains(constructions []entities.Construction) []entities.Chain {
	byMudaf := make(map[int]int) // mudaf span -> construction index
	for i, c := range constructions {
		if c.Type != entities.ConstructionIdafa || len(c.Spans) != 2 {
			continue
		}
		if _, exists := byMudaf[c.Spans[0]]; !exists {
			byMudaf[c.Spans[0]] = i
		}
	}

	// A construction is a chain head if nothing links into its mudaf.
	linkedInto := make(map[int]bool)
	for _, c := range constructions {
		if c.Type != entities.ConstructionIdafa || len(c.Spans) != 2 {
			continue
		}
		if next, ok := byMudaf[c.Spans[1]]; ok {
			linkedInto[next] = true
		}
	}

	var chains []entities.Chain
	for i, c := range constructions {
		if c.Type != entities.ConstructionIdafa || len(c.Spans) != 2 || linkedInto[i] {
			continue
		}

		links := []entities.Construction{c}
		cur := c
		for {
			next, ok := byMudaf[cur.Spans[1]]
			if !ok {
				break
			}
			cur = constructions[next]
			links = append(links, cur)
		}

		if len(links) >= 2 {
			chains = append(chains, entities.Chain{Links: links})
		}
	}

	return chains
}
