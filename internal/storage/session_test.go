package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

func twoQuestionQuiz() *ActiveQuiz {
	return &ActiveQuiz{
		Session: entities.NewQuizSession(1, 2, "mixed"),
		Questions: []entities.Question{
			{TargetType: entities.ConstructionIdafa},
			{TargetType: entities.ConstructionFilFail},
		},
		Selection: entities.NewUserSelection(),
	}
}

func TestActiveQuiz_AdvanceResetsSelectionState(t *testing.T) {
	quiz := twoQuestionQuiz()
	quiz.Selection.Toggle(1)
	quiz.PriorSubmissions = [][]int{{1}}

	require.NotNil(t, quiz.Current())
	assert.Equal(t, entities.ConstructionIdafa, quiz.Current().TargetType)

	quiz.Advance()

	require.NotNil(t, quiz.Current())
	assert.Equal(t, entities.ConstructionFilFail, quiz.Current().TargetType)
	assert.Empty(t, quiz.Selection.Spans)
	assert.Equal(t, entities.StepSelection, quiz.Selection.Step)
	assert.Nil(t, quiz.PriorSubmissions)

	quiz.Advance()
	assert.Nil(t, quiz.Current())
}

func TestQuizStorage_StoreGetDelete(t *testing.T) {
	s := NewQuizStorage()
	assert.Nil(t, s.Get(7))

	quiz := twoQuestionQuiz()
	s.Store(7, quiz)
	assert.Same(t, quiz, s.Get(7))
	assert.Nil(t, s.Get(8))

	s.Delete(7)
	assert.Nil(t, s.Get(7))
}
