package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/elvin52/quran-quiz-sub001/internal/service"
)

// Notifier delivers practice reminders over Telegram.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
}

// NewNotifier creates a new Notifier.
func NewNotifier(bot *tgbotapi.BotAPI, logger *zap.Logger) *Notifier {
	return &Notifier{bot: bot, logger: logger}
}

// SendReminder sends a practice reminder with the user's headline stats.
func (n *Notifier) SendReminder(chatID int64, payload service.ReminderPayload) error {
	var sb strings.Builder
	sb.WriteString("⏰ <b>Time to practice your Arabic grammar!</b>\n\n")

	if payload.TotalAttempts > 0 {
		fmt.Fprintf(&sb, "So far: %d questions answered, %.0f%% accuracy, best streak %d.\n",
			payload.TotalAttempts, payload.Accuracy, payload.BestStreak)
		if payload.LastPractice != nil {
			fmt.Fprintf(&sb, "Last practice: %s.\n", payload.LastPractice.Format("2 Jan"))
		}
		sb.WriteString("\nA few verses a day keeps the iʿrāb in your head.")
	} else {
		sb.WriteString("Start with a short quiz — five verses is enough for day one.")
	}

	msg := newHTMLMessage(chatID, sb.String())
	msg.ReplyMarkup = buildReminderKeyboard()

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send reminder",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}
