package grammar

import "github.com/elvin52/quran-quiz-sub001/internal/domain/entities"

// RelationshipRef points from a segment to one construction it takes part
// in, together with the role it plays there.
type RelationshipRef struct {
	ConstructionKey string
	Type            entities.ConstructionType
	Role            string
}

// RelationshipIndex maps each segment position to every construction role
// it participates in. It is built once per detection result, so a segment
// shared by several construction types accumulates all of its
// relationships in a single pass with no aliasing between detectors.
type RelationshipIndex map[int][]RelationshipRef

// BuildRelationshipIndex indexes the constructions by segment position.
func BuildRelationshipIndex(segments []entities.Segment, constructions []entities.Construction) RelationshipIndex {
	idx := make(RelationshipIndex)
	for _, c := range constructions {
		key := c.Key(segments)
		for i, pos := range c.Spans {
			role := ""
			if i < len(c.Roles) {
				role = c.Roles[i]
			}
			idx[pos] = append(idx[pos], RelationshipRef{
				ConstructionKey: key,
				Type:            c.Type,
				Role:            role,
			})
		}
	}
	return idx
}
