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

// ProgressRepository provides access to per-construction progress rows.
type ProgressRepository struct {
	db postgres.DBTX
}

// NewProgressRepository creates a new ProgressRepository with the provided database pool.
func NewProgressRepository(db postgres.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Get retrieves the progress row for one user and construction type.
func (r *ProgressRepository) Get(ctx context.Context, userID int64, t entities.ConstructionType) (*entities.UserProgress, error) {
	query := `
		SELECT user_id, construction_type, attempts, correct,
		       streak, best_streak, score_sum, last_reviewed_at
		FROM user_progress
		WHERE user_id = $1 AND construction_type = $2
	`

	var p entities.UserProgress
	err := r.db.QueryRow(ctx, query, userID, t).Scan(
		&p.UserID,
		&p.ConstructionType,
		&p.Attempts,
		&p.Correct,
		&p.Streak,
		&p.BestStreak,
		&p.ScoreSum,
		&p.LastReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, baserepo.ErrProgressNotFound
		}
		return nil, fmt.Errorf("get user progress: %w", err)
	}

	return &p, nil
}

// GetAllByUserID retrieves all progress rows for a user.
func (r *ProgressRepository) GetAllByUserID(ctx context.Context, userID int64) ([]*entities.UserProgress, error) {
	query := `
		SELECT user_id, construction_type, attempts, correct,
		       streak, best_streak, score_sum, last_reviewed_at
		FROM user_progress
		WHERE user_id = $1
		ORDER BY construction_type
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get all user progress: %w", err)
	}
	defer rows.Close()

	var out []*entities.UserProgress
	for rows.Next() {
		var p entities.UserProgress
		if err := rows.Scan(
			&p.UserID,
			&p.ConstructionType,
			&p.Attempts,
			&p.Correct,
			&p.Streak,
			&p.BestStreak,
			&p.ScoreSum,
			&p.LastReviewedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user progress: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user progress: %w", err)
	}

	return out, nil
}

// Upsert inserts or replaces the progress row keyed on (user_id, construction_type).
func (r *ProgressRepository) Upsert(ctx context.Context, p *entities.UserProgress) error {
	query := `
		INSERT INTO user_progress (
			user_id, construction_type, attempts, correct,
			streak, best_streak, score_sum, last_reviewed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, construction_type) DO UPDATE SET
			attempts = EXCLUDED.attempts,
			correct = EXCLUDED.correct,
			streak = EXCLUDED.streak,
			best_streak = EXCLUDED.best_streak,
			score_sum = EXCLUDED.score_sum,
			last_reviewed_at = EXCLUDED.last_reviewed_at
	`

	_, err := r.db.Exec(
		ctx,
		query,
		p.UserID,
		p.ConstructionType,
		p.Attempts,
		p.Correct,
		p.Streak,
		p.BestStreak,
		p.ScoreSum,
		p.LastReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user progress: %w", err)
	}

	return nil
}
