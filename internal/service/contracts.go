package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

type VerseRepository interface {
	GetByRef(ctx context.Context, ref entities.VerseRef) (*entities.Verse, error)
	GetAll(ctx context.Context) ([]*entities.Verse, error)
	GetRandom(ctx context.Context) (*entities.Verse, error)
}

type QuizRepository interface {
	Create(ctx context.Context, s *entities.QuizSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.QuizSession, error)
	Update(ctx context.Context, s *entities.QuizSession) error
	SaveAnswer(ctx context.Context, a *entities.QuizAnswer) error
}

type ProgressRepository interface {
	Get(ctx context.Context, userID int64, t entities.ConstructionType) (*entities.UserProgress, error)
	GetAllByUserID(ctx context.Context, userID int64) ([]*entities.UserProgress, error)
	Upsert(ctx context.Context, progress *entities.UserProgress) error
}

type SettingsRepository interface {
	Create(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateQuizLength(ctx context.Context, userID int64, length int) error
	UpdateQuizMode(ctx context.Context, userID int64, mode string) error
	UpdateReminders(ctx context.Context, userID int64, enabled bool, hourUTC int) error
	GetReminderUsers(ctx context.Context, hourUTC int) ([]*entities.User, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user *entities.User) error
	UserExists(ctx context.Context, userID int64) (bool, error)
}

// ReminderPayload carries everything a notifier needs to render a
// practice reminder.
type ReminderPayload struct {
	TotalAttempts int
	Accuracy      float64
	BestStreak    int
	LastPractice  *time.Time
}

// ReminderNotifier sends reminder notifications to users.
type ReminderNotifier interface {
	SendReminder(chatID int64, payload ReminderPayload) error
}
