package telegram

import (
	"context"
)

// progressHandler renders the per-construction progress report.
func (h *Handler) progressHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.progressService.GetSummary(ctx, userID)
		if err != nil {
			return err
		}

		msg := newHTMLMessage(chatID, renderProgress(summary))
		msg.ReplyMarkup = buildProgressKeyboard()
		h.send(msg)
		return nil
	}
}

// settingsHandler renders the settings overview with its keyboard.
func (h *Handler) settingsHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}

		msg := newHTMLMessage(chatID, renderSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard()
		h.send(msg)
		return nil
	}
}
