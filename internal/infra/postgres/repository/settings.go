package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/infra/postgres"
	baserepo "github.com/elvin52/quran-quiz-sub001/internal/repository"
)

// SettingsRepository provides access to user settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create inserts default settings for a user; existing rows stay untouched.
func (r *SettingsRepository) Create(ctx context.Context, userID int64) error {
	s := entities.NewUserSettings(userID)

	query := `
		INSERT INTO user_settings (
			user_id, quiz_length, quiz_mode, reminders_enabled,
			reminder_hour_utc, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(
		ctx,
		query,
		s.UserID,
		s.QuizLength,
		s.QuizMode,
		s.RemindersEnabled,
		s.ReminderHourUTC,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create user settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves the settings row for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, quiz_length, quiz_mode, reminders_enabled,
		       reminder_hour_utc, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var s entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.QuizLength,
		&s.QuizMode,
		&s.RemindersEnabled,
		&s.ReminderHourUTC,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, baserepo.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get user settings: %w", err)
	}

	return &s, nil
}

// UpdateQuizLength sets the number of questions per quiz.
func (r *SettingsRepository) UpdateQuizLength(ctx context.Context, userID int64, length int) error {
	query := `
		UPDATE user_settings
		SET quiz_length = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.Exec(ctx, query, userID, length)
	if err != nil {
		return fmt.Errorf("update quiz length: %w", err)
	}

	return nil
}

// UpdateQuizMode sets the quiz mode.
func (r *SettingsRepository) UpdateQuizMode(ctx context.Context, userID int64, mode string) error {
	query := `
		UPDATE user_settings
		SET quiz_mode = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.Exec(ctx, query, userID, mode)
	if err != nil {
		return fmt.Errorf("update quiz mode: %w", err)
	}

	return nil
}

// UpdateReminders enables or disables the daily practice reminder.
func (r *SettingsRepository) UpdateReminders(ctx context.Context, userID int64, enabled bool, hourUTC int) error {
	query := `
		UPDATE user_settings
		SET reminders_enabled = $2, reminder_hour_utc = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.Exec(ctx, query, userID, enabled, hourUTC)
	if err != nil {
		return fmt.Errorf("update reminders: %w", err)
	}

	return nil
}

// GetReminderUsers returns active users whose reminder is due at the given hour.
func (r *SettingsRepository) GetReminderUsers(ctx context.Context, hourUTC int) ([]*entities.User, error) {
	query := `
		SELECT u.id, u.chat_id, u.is_active, u.created_at
		FROM users u
		JOIN user_settings s ON s.user_id = u.id
		WHERE u.is_active = TRUE
		  AND s.reminders_enabled = TRUE
		  AND s.reminder_hour_utc = $1
	`

	rows, err := r.db.Query(ctx, query, hourUTC)
	if err != nil {
		return nil, fmt.Errorf("get reminder users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.ChatID, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reminder user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminder users: %w", err)
	}

	return users, nil
}
