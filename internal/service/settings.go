package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/repository"
)

const (
	minQuizLength = 1
	maxQuizLength = 20
)

var (
	ErrInvalidQuizLength = errors.New("quiz length out of range")
	ErrInvalidQuizMode   = errors.New("unknown quiz mode")
)

// SettingsService manages user quiz preferences.
type SettingsService struct {
	settingsRepo SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetOrCreate returns the user's settings, creating defaults on first use.
func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, err
	}

	if err := s.settingsRepo.Create(ctx, userID); err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}
	return entities.NewUserSettings(userID), nil
}

// SetQuizLength updates how many questions a quiz contains.
func (s *SettingsService) SetQuizLength(ctx context.Context, userID int64, length int) error {
	if length < minQuizLength || length > maxQuizLength {
		return ErrInvalidQuizLength
	}
	return s.settingsRepo.UpdateQuizLength(ctx, userID, length)
}

// SetQuizMode updates the quiz mode ("mixed" or one construction type).
func (s *SettingsService) SetQuizMode(ctx context.Context, userID int64, mode string) error {
	if !ValidQuizMode(mode) {
		return ErrInvalidQuizMode
	}
	return s.settingsRepo.UpdateQuizMode(ctx, userID, mode)
}

// SetReminders enables or disables the daily practice reminder.
func (s *SettingsService) SetReminders(ctx context.Context, userID int64, enabled bool, hourUTC int) error {
	if hourUTC < 0 || hourUTC > 23 {
		return fmt.Errorf("reminder hour %d out of range", hourUTC)
	}
	return s.settingsRepo.UpdateReminders(ctx, userID, enabled, hourUTC)
}
