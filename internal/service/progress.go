package service

import (
	"context"
	"fmt"
	"time"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// ProgressSummary aggregates a user's recognition progress across all
// construction types.
type ProgressSummary struct {
	PerType       []*entities.UserProgress
	TotalAttempts int
	TotalCorrect  int
	Accuracy      float64 // percent
	AverageScore  float64
	BestStreak    int
	LastPractice  *time.Time
}

// ProgressService reports learning progress per construction type.
type ProgressService struct {
	progressRepo ProgressRepository
}

// NewProgressService creates a new ProgressService.
func NewProgressService(progressRepo ProgressRepository) *ProgressService {
	return &ProgressService{progressRepo: progressRepo}
}

// GetSummary aggregates the stored per-type progress rows. Types the user
// never practiced appear with zero counters so the report is complete.
func (s *ProgressService) GetSummary(ctx context.Context, userID int64) (*ProgressSummary, error) {
	rows, err := s.progressRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress rows: %w", err)
	}

	byType := make(map[entities.ConstructionType]*entities.UserProgress, len(rows))
	for _, row := range rows {
		byType[row.ConstructionType] = row
	}

	summary := &ProgressSummary{}
	var scoreSum int
	for _, t := range allConstructionTypes {
		row, ok := byType[t]
		if !ok {
			row = entities.NewUserProgress(userID, t)
		}
		summary.PerType = append(summary.PerType, row)

		summary.TotalAttempts += row.Attempts
		summary.TotalCorrect += row.Correct
		scoreSum += row.ScoreSum
		if row.BestStreak > summary.BestStreak {
			summary.BestStreak = row.BestStreak
		}
		if row.LastReviewedAt != nil &&
			(summary.LastPractice == nil || row.LastReviewedAt.After(*summary.LastPractice)) {
			summary.LastPractice = row.LastReviewedAt
		}
	}

	if summary.TotalAttempts > 0 {
		summary.Accuracy = float64(summary.TotalCorrect) / float64(summary.TotalAttempts) * 100
		summary.AverageScore = float64(scoreSum) / float64(summary.TotalAttempts)
	}

	return summary, nil
}
