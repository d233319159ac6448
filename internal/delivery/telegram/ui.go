package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/service"
)

const segmentsPerRow = 3

// buildSelectionKeyboard builds the segment toggle keyboard for a question.
// Current picks carry a check mark; during secondary role selection the
// already confirmed primary picks carry a diamond.
func buildSelectionKeyboard(q *entities.Question, sel *entities.UserSelection) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for pos, seg := range q.Segments {
		label := fmt.Sprintf("%d· %s", pos+1, seg.Text)
		if containsInt(sel.Spans, pos) {
			label = "✅ " + label
		} else if containsInt(sel.PrimaryIndices, pos) {
			label = "🔷 " + label
		}

		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, buildQuizSegCallback(pos)))
		if len(row) == segmentsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	var controls []tgbotapi.InlineKeyboardButton
	if q.IsRoleBased() {
		controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("✔️ Confirm", buildQuizConfirmCallback()))
	} else {
		controls = append(controls, tgbotapi.NewInlineKeyboardButtonData("📤 Submit", buildQuizSubmitCallback()))
	}
	controls = append(controls,
		tgbotapi.NewInlineKeyboardButtonData("🧹 Clear", buildQuizClearCallback()),
		tgbotapi.NewInlineKeyboardButtonData("🚫 Stop", buildQuizStopCallback()),
	)
	rows = append(rows, controls)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildFeedbackKeyboard builds the keyboard under an answer feedback message.
func buildFeedbackKeyboard(refinable bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if refinable {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Refine answer", buildQuizRefineCallback()),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➡️ Next question", buildQuizNextCallback()),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🚫 Stop quiz", buildQuizStopCallback()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New quiz", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My progress", buildProgressCallback()),
		),
	)
}

// buildProgressKeyboard builds keyboard for progress screen.
func buildProgressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildSettingsKeyboard builds main settings keyboard.
func buildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Quiz length", buildSettingsCallback(settingsQuizLength)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Quiz mode", buildSettingsCallback(settingsQuizMode)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏰ Reminders", buildSettingsCallback(settingsReminders)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My progress", buildProgressCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Reset progress", buildSettingsCallback(settingsReset)),
		),
	)
}

// buildResetConfirmKeyboard builds the confirmation keyboard before a
// progress reset.
func buildResetConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, erase everything", buildSettingsCallback(settingsReset, "confirm")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildQuizLengthKeyboard builds keyboard for quiz length setting.
func buildQuizLengthKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("3 questions", buildSettingsCallback(settingsQuizLength, "3")),
			tgbotapi.NewInlineKeyboardButtonData("5 questions", buildSettingsCallback(settingsQuizLength, "5")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("10 questions", buildSettingsCallback(settingsQuizLength, "10")),
			tgbotapi.NewInlineKeyboardButtonData("15 questions", buildSettingsCallback(settingsQuizLength, "15")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("20 questions", buildSettingsCallback(settingsQuizLength, "20")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildQuizModeKeyboard builds keyboard for quiz mode setting.
func buildQuizModeKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Mixed", buildSettingsCallback(settingsQuizMode, service.QuizModeMixed)),
		),
	}
	for _, t := range []entities.ConstructionType{
		entities.ConstructionIdafa,
		entities.ConstructionJarMajrur,
		entities.ConstructionFilFail,
		entities.ConstructionHarfNasb,
	} {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(entities.TypeLabel(t), buildSettingsCallback(settingsQuizMode, string(t))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildRemindersKeyboard builds keyboard for the reminder setting.
func buildRemindersKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("06:00 UTC", buildSettingsCallback(settingsReminders, "6")),
			tgbotapi.NewInlineKeyboardButtonData("12:00 UTC", buildSettingsCallback(settingsReminders, "12")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("17:00 UTC", buildSettingsCallback(settingsReminders, "17")),
			tgbotapi.NewInlineKeyboardButtonData("20:00 UTC", buildSettingsCallback(settingsReminders, "20")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔕 Turn off", buildSettingsCallback(settingsReminders, "off")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to settings", buildSettingsCallback(settingsMenu)),
		),
	)
}

// buildReminderKeyboard builds keyboard attached to a reminder notification.
func buildReminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Start quiz", buildReminderStartQuizCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔕 Disable reminders", buildReminderDisableCallback()),
		),
	)
}
