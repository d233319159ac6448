package grammar

import (
	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// Test fixtures build tiny tagged sequences by hand; IDs are assigned by
// seq so construction keys stay stable across assertions.

func noun(text string, c entities.GrammaticalCase) entities.Segment {
	return entities.Segment{
		Text:            text,
		MorphologyClass: entities.ClassNoun,
		PositionType:    entities.PositionRoot,
		Case:            c,
	}
}

func definiteNoun(text string, c entities.GrammaticalCase) entities.Segment {
	s := noun(text, c)
	s.IsDefinite = true
	return s
}

func verb(text string) entities.Segment {
	return entities.Segment{
		Text:            text,
		MorphologyClass: entities.ClassVerb,
		PositionType:    entities.PositionRoot,
	}
}

func particle(text, role string) entities.Segment {
	return entities.Segment{
		Text:            text,
		MorphologyClass: entities.ClassParticle,
		PositionType:    entities.PositionRoot,
		GrammaticalRole: role,
	}
}

func seq(segs ...entities.Segment) []entities.Segment {
	out := make([]entities.Segment, len(segs))
	for i, s := range segs {
		s.ID = entities.NewSegmentID(1, 1, i+1, 1)
		out[i] = s
	}
	return out
}
