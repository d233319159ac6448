package entities

// SelectionStep is the state of the two-phase role selection flow.
// Transitions: selection → primary-selection → secondary-selection → complete.
// Moving past primary-selection requires at least one primary index; moving
// to complete requires at least one secondary index. Clear resets to
// selection and discards everything.
type SelectionStep string

const (
	StepSelection SelectionStep = "selection"
	StepPrimary   SelectionStep = "primary-selection"
	StepSecondary SelectionStep = "secondary-selection"
	StepComplete  SelectionStep = "complete"
)

// UserSelection is a learner's answer in progress. For simple constructions
// only Spans is used. For role-based constructions the two index sets are
// filled across the selection steps.
type UserSelection struct {
	Spans            []int
	PrimaryIndices   []int
	SecondaryIndices []int
	Step             SelectionStep
}

// NewUserSelection returns an empty selection in the initial step.
func NewUserSelection() *UserSelection {
	return &UserSelection{Step: StepSelection}
}

// Toggle adds pos to Spans, or removes it if already present.
func (s *UserSelection) Toggle(pos int) {
	for i, p := range s.Spans {
		if p == pos {
			s.Spans = append(s.Spans[:i], s.Spans[i+1:]...)
			return
		}
	}
	s.Spans = append(s.Spans, pos)
}

// ConfirmPrimary freezes the current spans as the primary role and advances
// to secondary selection. Returns false if no spans are selected.
func (s *UserSelection) ConfirmPrimary() bool {
	if len(s.Spans) == 0 {
		return false
	}
	s.PrimaryIndices = append([]int(nil), s.Spans...)
	s.Spans = nil
	s.Step = StepSecondary
	return true
}

// ConfirmSecondary freezes the current spans as the secondary role and
// completes the selection. Returns false if no spans are selected.
func (s *UserSelection) ConfirmSecondary() bool {
	if len(s.Spans) == 0 {
		return false
	}
	s.SecondaryIndices = append([]int(nil), s.Spans...)
	s.Spans = nil
	s.Step = StepComplete
	return true
}

// BeginRoleSelection moves from the initial step into primary selection.
func (s *UserSelection) BeginRoleSelection() {
	s.Step = StepPrimary
}

// Clear resets the selection to its initial state. No partial role
// assignment survives a clear.
func (s *UserSelection) Clear() {
	s.Spans = nil
	s.PrimaryIndices = nil
	s.SecondaryIndices = nil
	s.Step = StepSelection
}
