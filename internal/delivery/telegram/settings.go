package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleSettingsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	switch data.Params[0] {
	case settingsMenu:
		h.editSettingsMenu(ctx, cb, "")

	case settingsQuizLength:
		if len(data.Params) == 1 {
			h.editSettingsScreen(cb, "How many questions per quiz?", buildQuizLengthKeyboard())
			return
		}
		length, err := strconv.Atoi(data.Params[1])
		if err != nil {
			h.answerCallback(cb.ID, "")
			return
		}
		if err := h.settingsService.SetQuizLength(ctx, cb.From.ID, length); err != nil {
			h.logger.Error("set quiz length", zap.Error(err))
			h.answerCallback(cb.ID, msgInternalError)
			return
		}
		h.editSettingsMenu(ctx, cb, "Quiz length updated")

	case settingsQuizMode:
		if len(data.Params) == 1 {
			h.editSettingsScreen(cb, "Which constructions should the quiz ask about?", buildQuizModeKeyboard())
			return
		}
		if err := h.settingsService.SetQuizMode(ctx, cb.From.ID, data.Params[1]); err != nil {
			h.logger.Error("set quiz mode", zap.Error(err))
			h.answerCallback(cb.ID, msgInternalError)
			return
		}
		h.editSettingsMenu(ctx, cb, "Quiz mode updated")

	case settingsReminders:
		if len(data.Params) == 1 {
			h.editSettingsScreen(cb, "When should I remind you to practice?", buildRemindersKeyboard())
			return
		}
		h.applyReminderChoice(ctx, cb, data.Params[1])

	case settingsReset:
		if len(data.Params) == 1 {
			h.editSettingsScreen(cb,
				"Erase all your quiz progress? Any quiz in progress will be abandoned too. This cannot be undone.",
				buildResetConfirmKeyboard())
			return
		}
		if data.Params[1] != "confirm" {
			h.answerCallback(cb.ID, "")
			return
		}
		if err := h.resetService.ResetProgress(ctx, cb.From.ID); err != nil {
			h.logger.Error("reset progress", zap.Error(err))
			h.answerCallback(cb.ID, msgInternalError)
			return
		}
		h.store.Delete(cb.From.ID)
		h.editSettingsMenu(ctx, cb, "Progress erased")

	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) applyReminderChoice(ctx context.Context, cb *tgbotapi.CallbackQuery, choice string) {
	settings, err := h.settingsService.GetOrCreate(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("get settings", zap.Error(err))
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	if choice == "off" {
		if err := h.settingsService.SetReminders(ctx, cb.From.ID, false, settings.ReminderHourUTC); err != nil {
			h.logger.Error("disable reminders", zap.Error(err))
			h.answerCallback(cb.ID, msgInternalError)
			return
		}
		h.editSettingsMenu(ctx, cb, "Reminders disabled")
		return
	}

	hour, err := strconv.Atoi(choice)
	if err != nil {
		h.answerCallback(cb.ID, "")
		return
	}
	if err := h.settingsService.SetReminders(ctx, cb.From.ID, true, hour); err != nil {
		h.logger.Error("enable reminders", zap.Error(err))
		h.answerCallback(cb.ID, msgInternalError)
		return
	}
	h.editSettingsMenu(ctx, cb, "Reminders enabled")
}

// editSettingsMenu re-renders the settings overview in place.
func (h *Handler) editSettingsMenu(ctx context.Context, cb *tgbotapi.CallbackQuery, toast string) {
	settings, err := h.settingsService.GetOrCreate(ctx, cb.From.ID)
	if err != nil {
		h.logger.Error("get settings", zap.Error(err))
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	h.editSettingsScreen(cb, renderSettings(settings), buildSettingsKeyboard())
	h.answerCallback(cb.ID, toast)
}

func (h *Handler) editSettingsScreen(cb *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ReplyMarkup = &kb
	h.send(edit)
}
