package telegram

import (
	"context"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/service"
	"github.com/elvin52/quran-quiz-sub001/internal/storage"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

type QuizService interface {
	GenerateQuiz(ctx context.Context, userID int64) (*entities.QuizSession, []entities.Question, error)
	SubmitSpanAnswer(ctx context.Context, userID int64, session *entities.QuizSession, q *entities.Question, spans []int, priorSubmissions [][]int) (entities.ValidationResult, error)
	SubmitRoleAnswer(ctx context.Context, userID int64, session *entities.QuizSession, q *entities.Question, sel *entities.UserSelection) (entities.ValidationResult, error)
	ScoreSpanSelection(q *entities.Question, spans []int, priorSubmissions [][]int) (entities.ValidationResult, error)
	AbandonSession(ctx context.Context, session *entities.QuizSession) error
}

type ProgressService interface {
	GetSummary(ctx context.Context, userID int64) (*service.ProgressSummary, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	SetQuizLength(ctx context.Context, userID int64, length int) error
	SetQuizMode(ctx context.Context, userID int64, mode string) error
	SetReminders(ctx context.Context, userID int64, enabled bool, hourUTC int) error
}

type ResetService interface {
	ResetProgress(ctx context.Context, userID int64) error
}

type QuizStore interface {
	Store(userID int64, quiz *storage.ActiveQuiz)
	Get(userID int64) *storage.ActiveQuiz
	Delete(userID int64)
}
