// Package storage provides in-memory state for quizzes in flight. The
// database keeps sessions and answers; the questions themselves and the
// learner's unsent selection live only here.
package storage

import (
	"sync"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// ActiveQuiz is the in-flight state of one user's quiz.
type ActiveQuiz struct {
	Session   *entities.QuizSession
	Questions []entities.Question
	Index     int // current question index into Questions
	Selection *entities.UserSelection
	// PriorSubmissions accumulates earlier span submissions for the
	// current question, enabling multi-attempt scoring.
	PriorSubmissions [][]int
}

// Current returns the question the user is answering, or nil if the quiz
// ran out of questions.
func (a *ActiveQuiz) Current() *entities.Question {
	if a.Index < 0 || a.Index >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.Index]
}

// Advance moves to the next question, resetting the selection and the
// prior-submission accumulator.
func (a *ActiveQuiz) Advance() {
	a.Index++
	a.Selection = entities.NewUserSelection()
	a.PriorSubmissions = nil
}

// QuizStorage provides in-memory storage for active quizzes by user ID.
type QuizStorage struct {
	mu      sync.RWMutex
	quizzes map[int64]*ActiveQuiz
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		quizzes: make(map[int64]*ActiveQuiz),
	}
}

// Store saves the active quiz for a user.
func (s *QuizStorage) Store(userID int64, quiz *ActiveQuiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes[userID] = quiz
}

// Get retrieves the active quiz for a user, or nil.
func (s *QuizStorage) Get(userID int64) *ActiveQuiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizzes[userID]
}

// Delete removes the active quiz for a user.
func (s *QuizStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, userID)
}
