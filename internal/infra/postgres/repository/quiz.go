// Package repository contains the postgres-backed repositories for quiz
// sessions, answers, user progress and settings.
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

// QuizRepository provides access to quiz session and answer data in the database.
type QuizRepository struct {
	db postgres.DBTX
}

// NewQuizRepository creates a new QuizRepository with the provided database pool.
func NewQuizRepository(db postgres.DBTX) *QuizRepository {
	return &QuizRepository{db: db}
}

// Create inserts a new quiz session and returns its ID.
func (r *QuizRepository) Create(ctx context.Context, session *entities.QuizSession) (int64, error) {
	query := `
		INSERT INTO quiz_sessions (
			user_id, current_question_num, correct_answers, total_questions,
			quiz_mode, session_status, started_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		session.UserID,
		session.CurrentQuestionNum,
		session.CorrectAnswers,
		session.TotalQuestions,
		session.QuizMode,
		session.SessionStatus,
		session.StartedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create quiz session: %w", err)
	}

	return id, nil
}

// GetByID retrieves a quiz session by its ID.
func (r *QuizRepository) GetByID(ctx context.Context, id int64) (*entities.QuizSession, error) {
	query := `
		SELECT id, user_id, current_question_num, correct_answers, total_questions,
		       quiz_mode, session_status, started_at, completed_at
		FROM quiz_sessions
		WHERE id = $1
	`

	var session entities.QuizSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.CurrentQuestionNum,
		&session.CorrectAnswers,
		&session.TotalQuestions,
		&session.QuizMode,
		&session.SessionStatus,
		&session.StartedAt,
		&session.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, baserepo.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get quiz session: %w", err)
	}

	return &session, nil
}

// Update persists the mutable session fields.
func (r *QuizRepository) Update(ctx context.Context, session *entities.QuizSession) error {
	query := `
		UPDATE quiz_sessions
		SET current_question_num = $2,
		    correct_answers = $3,
		    session_status = $4,
		    completed_at = $5
		WHERE id = $1
	`

	_, err := r.db.Exec(
		ctx,
		query,
		session.ID,
		session.CurrentQuestionNum,
		session.CorrectAnswers,
		session.SessionStatus,
		session.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update quiz session: %w", err)
	}

	return nil
}

// SaveAnswer stores a scored answer.
func (r *QuizRepository) SaveAnswer(ctx context.Context, a *entities.QuizAnswer) error {
	query := `
		INSERT INTO quiz_answers (
			user_id, session_id, verse_ref, construction_type,
			score, tier, is_correct, answered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		a.UserID,
		a.SessionID,
		a.VerseRef,
		a.ConstructionType,
		a.Score,
		a.Tier,
		a.IsCorrect,
		a.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("save quiz answer: %w", err)
	}

	return nil
}
