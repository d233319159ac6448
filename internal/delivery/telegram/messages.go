// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error messages.
const (
	msgInternalError        = "Something went wrong. Please try again later."
	msgNoAvailableQuestions = "No questions are available for your quiz mode right now.\nTry a different mode in /settings."
	msgNoActiveQuiz         = "You have no quiz in progress. Send /quiz to start one."
	msgUnknownCommand       = "Unknown command. Available commands:\n\n/quiz — start a grammar quiz\n/progress — see your progress\n/settings — quiz preferences\n/help — how the quiz works"
	msgUseCommands          = "Send /quiz to practice, or /help to see what I can do."
)

const msgWelcome = `<b>As-salāmu ʿalaykum!</b>

This bot trains you to recognize Arabic grammatical constructions in Qur'anic verses:

• <b>Iḍāfa</b> — possessive constructions
• <b>Jar wa Majrūr</b> — preposition + genitive noun
• <b>Fiʿl wa Fāʿil</b> — verb + its subject
• <b>Harf Naṣb + Ismuha</b> — accusative particle + its noun

Each question shows a verse split into word segments. Tap the segments that form the construction, then submit.

/quiz — start practicing
/progress — your results per construction
/settings — quiz length, mode and reminders
/help — detailed instructions`

const msgHelp = `<b>How the quiz works</b>

1. Send /quiz. The bot picks verses and asks you to find one construction type per question.

2. For <b>Iḍāfa</b> and <b>Jar wa Majrūr</b> questions, tap every segment that belongs to the construction and press <b>Submit</b>. You can refine your answer after the first try.

3. For <b>Fiʿl wa Fāʿil</b> and <b>Harf Naṣb</b> questions, answer in two steps: first tap the governing word and press <b>Confirm</b>, then tap the word it governs and confirm again.

4. <b>Clear</b> resets your current selection. /cancel abandons the quiz.

Scores run from 0 to 100. Full credit needs every segment of every construction in the verse and nothing extra.`

const msgQuizCancelled = "Quiz cancelled. Send /quiz whenever you want to practice again."

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newHTMLEdit creates an edit with HTML parse mode.
func newHTMLEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}
