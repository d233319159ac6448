package service

import (
	"context"
	"fmt"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// UserService registers bot users on first contact.
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureUser stores the user if this is their first interaction.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	exists, err := s.userRepo.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.userRepo.SaveUser(ctx, entities.NewUser(userID, chatID)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
