package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionQuiz:
		h.handleQuizCallback(ctx, cb, data)
	case actionSettings:
		h.handleSettingsCallback(ctx, cb, data)
	case actionProgress:
		h.handleProgressCallback(ctx, cb)
	case actionReminder:
		h.handleReminderCallback(ctx, cb, data)
	default:
		h.answerCallback(cb.ID, "")
	}
}

// handleProgressCallback replaces the current message with a fresh progress report.
func (h *Handler) handleProgressCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	summary, err := h.progressService.GetSummary(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("get progress summary", zap.Error(err))
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	edit := newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, renderProgress(summary))
	kb := buildProgressKeyboard()
	edit.ReplyMarkup = &kb
	h.send(edit)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) handleReminderCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	switch data.Params[0] {
	case reminderStartQuiz:
		h.answerCallback(cb.ID, "")
		_ = h.withErrorHandling(h.quizHandler(cb.From.ID))(ctx, cb.Message.Chat.ID)

	case reminderDisable:
		settings, err := h.settingsService.GetOrCreate(ctx, cb.From.ID)
		if err != nil {
			h.logger.Error("get settings", zap.Error(err))
			h.answerCallback(cb.ID, msgInternalError)
			return
		}
		if err := h.settingsService.SetReminders(ctx, cb.From.ID, false, settings.ReminderHourUTC); err != nil {
			h.logger.Error("disable reminders", zap.Error(err))
			h.answerCallback(cb.ID, msgInternalError)
			return
		}
		h.answerCallback(cb.ID, "Reminders disabled")

	default:
		h.answerCallback(cb.ID, "")
	}
}
