package repository

import (
	"context"
	"fmt"

	"github.com/elvin52/quran-quiz-sub001/internal/infra/postgres"
)

// ResetRepository wipes a user's learning history. It is built per
// transaction so both writes commit or roll back together.
type ResetRepository struct {
	db postgres.DBTX
}

// NewResetRepository creates a new ResetRepository bound to db.
func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

// DeleteProgress removes every progress row for the user.
func (r *ResetRepository) DeleteProgress(ctx context.Context, userID int64) error {
	query := `DELETE FROM user_progress WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("delete user progress: %w", err)
	}
	return nil
}

// AbandonActiveSessions closes any quiz session still marked active.
func (r *ResetRepository) AbandonActiveSessions(ctx context.Context, userID int64) error {
	query := `
		UPDATE quiz_sessions
		SET session_status = 'abandoned'
		WHERE user_id = $1 AND session_status = 'active'
	`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("abandon active sessions: %w", err)
	}
	return nil
}
