package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderService sends hourly practice reminders to users whose reminder
// hour matches the current UTC hour.
type ReminderService struct {
	settingsRepo SettingsRepository
	progress     *ProgressService
	notifier     ReminderNotifier
	logger       *zap.Logger
}

// NewReminderService creates a new reminder service.
func NewReminderService(
	settingsRepo SettingsRepository,
	progress *ProgressService,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		settingsRepo: settingsRepo,
		progress:     progress,
		logger:       logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start begins the reminder scheduling loop and blocks until ctx is done.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started")

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc("0 * * * *", func() {
		if err := s.sendDueReminders(ctx); err != nil {
			s.logger.Error("failed to send reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

func (s *ReminderService) sendDueReminders(ctx context.Context) error {
	if s.notifier == nil {
		return nil
	}

	hour := time.Now().UTC().Hour()
	users, err := s.settingsRepo.GetReminderUsers(ctx, hour)
	if err != nil {
		return err
	}

	sent := 0
	for _, user := range users {
		summary, err := s.progress.GetSummary(ctx, user.ID)
		if err != nil {
			s.logger.Warn("skip reminder, progress unavailable",
				zap.Int64("user_id", user.ID),
				zap.Error(err),
			)
			continue
		}

		payload := ReminderPayload{
			TotalAttempts: summary.TotalAttempts,
			Accuracy:      summary.Accuracy,
			BestStreak:    summary.BestStreak,
			LastPractice:  summary.LastPractice,
		}
		if err := s.notifier.SendReminder(user.ChatID, payload); err != nil {
			s.logger.Warn("send reminder failed",
				zap.Int64("chat_id", user.ChatID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.Info("reminders sent", zap.Int("count", sent), zap.Int("hour_utc", hour))
	}
	return nil
}
