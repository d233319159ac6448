package entities

// Question asks the learner to identify every construction of TargetType
// inside a verse. Constructions hold the detection ground truth for the
// verse, pre-computed by the question builder; the validator never re-runs
// detection.
type Question struct {
	VerseRef      VerseRef
	VerseText     string
	Segments      []Segment
	TargetType    ConstructionType
	Constructions []Construction // detected constructions of TargetType only
	// AllConstructions holds every graded construction in the verse across
	// all types, for cross-referencing a selection in feedback.
	AllConstructions []Construction
	Prompt           string
}

// IsRoleBased reports whether the question requires the two-step
// primary/secondary answer flow.
func (q Question) IsRoleBased() bool {
	return q.TargetType == ConstructionFilFail || q.TargetType == ConstructionHarfNasb
}
