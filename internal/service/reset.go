package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	pgrepo "github.com/elvin52/quran-quiz-sub001/internal/infra/postgres/repository"
)

// ResetService wipes a user's learning history atomically.
type ResetService struct {
	tr Transactor
}

// NewResetService creates a new ResetService.
func NewResetService(tr Transactor) *ResetService {
	return &ResetService{tr: tr}
}

// ResetProgress deletes the user's progress rows and abandons any active
// quiz session in one transaction.
func (s *ResetService) ResetProgress(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		resetRepo := pgrepo.NewResetRepository(tx)

		if err := resetRepo.AbandonActiveSessions(ctx, userID); err != nil {
			return err
		}
		return resetRepo.DeleteProgress(ctx, userID)
	})
}
