package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz     = "quiz"
	actionSettings = "settings"
	actionProgress = "progress"
	actionReminder = "reminder"
)

// Quiz sub-actions.
const (
	quizStart   = "start"
	quizSeg     = "seg"
	quizSubmit  = "submit"
	quizConfirm = "confirm"
	quizClear   = "clear"
	quizRefine  = "refine"
	quizNext    = "next"
	quizStop    = "stop"
)

// Settings sub-actions.
const (
	settingsMenu       = "menu"
	settingsQuizLength = "length"
	settingsQuizMode   = "mode"
	settingsReminders  = "reminders"
	settingsReset      = "reset"
)

// Reminder sub-actions.
const (
	reminderStartQuiz = "start_quiz"
	reminderDisable   = "disable"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizSegCallback builds callback data for toggling one segment.
func buildQuizSegCallback(pos int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizSeg, strconv.Itoa(pos)},
	}.encode()
}

func buildQuizSubmitCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizSubmit}}.encode()
}

func buildQuizConfirmCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizConfirm}}.encode()
}

func buildQuizClearCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizClear}}.encode()
}

func buildQuizRefineCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizRefine}}.encode()
}

func buildQuizNextCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext}}.encode()
}

func buildQuizStopCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizStop}}.encode()
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string, value ...string) string {
	params := []string{subAction}
	params = append(params, value...)
	return callbackData{
		Action: actionSettings,
		Params: params,
	}.encode()
}

// buildProgressCallback builds callback data for opening the progress view.
func buildProgressCallback() string {
	return actionProgress
}

// buildReminderStartQuizCallback builds callback data for starting a quiz from a reminder message.
func buildReminderStartQuizCallback() string {
	return callbackData{
		Action: actionReminder,
		Params: []string{reminderStartQuiz},
	}.encode()
}

// buildReminderDisableCallback builds callback data for disabling reminders.
func buildReminderDisableCallback() string {
	return callbackData{
		Action: actionReminder,
		Params: []string{reminderDisable},
	}.encode()
}
