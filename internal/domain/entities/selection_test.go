package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserSelection_RoleFlow(t *testing.T) {
	sel := NewUserSelection()
	assert.Equal(t, StepSelection, sel.Step)

	sel.BeginRoleSelection()
	assert.Equal(t, StepPrimary, sel.Step)

	// Cannot confirm an empty primary selection.
	assert.False(t, sel.ConfirmPrimary())
	assert.Equal(t, StepPrimary, sel.Step)

	sel.Toggle(2)
	assert.True(t, sel.ConfirmPrimary())
	assert.Equal(t, StepSecondary, sel.Step)
	assert.Equal(t, []int{2}, sel.PrimaryIndices)
	assert.Empty(t, sel.Spans)

	// Cannot complete without a secondary choice either.
	assert.False(t, sel.ConfirmSecondary())

	sel.Toggle(3)
	assert.True(t, sel.ConfirmSecondary())
	assert.Equal(t, StepComplete, sel.Step)
	assert.Equal(t, []int{3}, sel.SecondaryIndices)
}

func TestUserSelection_ToggleRemoves(t *testing.T) {
	sel := NewUserSelection()
	sel.Toggle(1)
	sel.Toggle(4)
	sel.Toggle(1)
	assert.Equal(t, []int{4}, sel.Spans)
}

func TestUserSelection_ClearDiscardsEverything(t *testing.T) {
	sel := NewUserSelection()
	sel.BeginRoleSelection()
	sel.Toggle(0)
	sel.ConfirmPrimary()
	sel.Toggle(1)

	sel.Clear()

	assert.Equal(t, StepSelection, sel.Step)
	assert.Empty(t, sel.Spans)
	assert.Empty(t, sel.PrimaryIndices)
	assert.Empty(t, sel.SecondaryIndices)
}
