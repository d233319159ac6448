package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/service"
	"github.com/elvin52/quran-quiz-sub001/internal/storage"
)

// quizHandler starts a new quiz for the user and sends the first question.
func (h *Handler) quizHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		// A fresh /quiz replaces any quiz already in progress.
		if active := h.store.Get(userID); active != nil {
			if err := h.quizService.AbandonSession(ctx, active.Session); err != nil {
				h.logger.Error("abandon previous session", zap.Error(err))
			}
			h.store.Delete(userID)
		}

		session, questions, err := h.quizService.GenerateQuiz(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNoQuestionsAvailable) {
				h.send(newHTMLMessage(chatID, msgNoAvailableQuestions))
				return nil
			}
			return err
		}

		quiz := &storage.ActiveQuiz{
			Session:   session,
			Questions: questions,
			Selection: entities.NewUserSelection(),
		}
		if q := quiz.Current(); q != nil && q.IsRoleBased() {
			quiz.Selection.BeginRoleSelection()
		}
		h.store.Store(userID, quiz)

		msg := newHTMLMessage(chatID, renderQuestion(quiz))
		msg.ReplyMarkup = buildSelectionKeyboard(quiz.Current(), quiz.Selection)
		h.send(msg)
		return nil
	}
}

// cancelHandler abandons the quiz in progress, if any.
func (h *Handler) cancelHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		quiz := h.store.Get(userID)
		if quiz == nil {
			h.send(newHTMLMessage(chatID, msgNoActiveQuiz))
			return nil
		}

		if err := h.quizService.AbandonSession(ctx, quiz.Session); err != nil {
			return err
		}
		h.store.Delete(userID)
		h.send(newHTMLMessage(chatID, msgQuizCancelled))
		return nil
	}
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	if data.Params[0] == quizStart {
		h.answerCallback(cb.ID, "")
		_ = h.withErrorHandling(h.quizHandler(userID))(ctx, chatID)
		return
	}

	quiz := h.store.Get(userID)
	if quiz == nil || quiz.Current() == nil {
		h.answerCallback(cb.ID, msgNoActiveQuiz)
		return
	}

	switch data.Params[0] {
	case quizSeg:
		h.handleSegToggle(cb, quiz, data.Params[1:])

	case quizSubmit:
		h.handleSpanSubmit(ctx, cb, quiz)

	case quizConfirm:
		h.handleRoleConfirm(ctx, cb, quiz)

	case quizClear:
		quiz.Selection.Clear()
		if quiz.Current().IsRoleBased() {
			quiz.Selection.BeginRoleSelection()
		}
		h.editQuestion(cb, quiz)
		h.answerCallback(cb.ID, "Selection cleared")

	case quizRefine:
		h.handleRefine(cb, quiz)

	case quizNext:
		h.handleNextQuestion(cb, quiz)

	case quizStop:
		if err := h.quizService.AbandonSession(ctx, quiz.Session); err != nil {
			h.logger.Error("abandon session", zap.Error(err))
		}
		h.store.Delete(userID)
		h.send(newHTMLEdit(chatID, cb.Message.MessageID, msgQuizCancelled))
		h.answerCallback(cb.ID, "")

	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleSegToggle(cb *tgbotapi.CallbackQuery, quiz *storage.ActiveQuiz, params []string) {
	if len(params) != 1 {
		h.answerCallback(cb.ID, "")
		return
	}
	pos, err := strconv.Atoi(params[0])
	if err != nil || pos < 0 || pos >= len(quiz.Current().Segments) {
		h.logger.Warn("invalid segment position in callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	quiz.Selection.Toggle(pos)
	h.editQuestion(cb, quiz)
	h.answerCallback(cb.ID, "")
}

// handleSpanSubmit grades a flat span selection. The first scored attempt is
// recorded; refinements are re-graded against the accumulated submissions
// without recording again.
func (h *Handler) handleSpanSubmit(ctx context.Context, cb *tgbotapi.CallbackQuery, quiz *storage.ActiveQuiz) {
	q := quiz.Current()
	sel := quiz.Selection

	if q.IsRoleBased() {
		h.answerCallback(cb.ID, "Use Confirm to lock in each role")
		return
	}
	if len(sel.Spans) == 0 {
		h.answerCallback(cb.ID, "Select at least one segment first")
		return
	}

	var (
		result entities.ValidationResult
		err    error
	)
	if len(quiz.PriorSubmissions) == 0 {
		result, err = h.quizService.SubmitSpanAnswer(ctx, cb.From.ID, quiz.Session, q, sel.Spans, nil)
	} else {
		result, err = h.quizService.ScoreSpanSelection(q, sel.Spans, quiz.PriorSubmissions)
	}
	if err != nil {
		h.logger.Error("submit span answer", zap.Error(err))
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	if result.Tier == entities.TierInvalid {
		h.answerCallback(cb.ID, result.Message)
		return
	}

	quiz.PriorSubmissions = append(quiz.PriorSubmissions, append([]int(nil), sel.Spans...))

	edit := newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, renderFeedback(q, result, quiz))
	kb := buildFeedbackKeyboard(result.Tier != entities.TierExact)
	edit.ReplyMarkup = &kb
	h.send(edit)
	h.answerCallback(cb.ID, "")
}

// handleRoleConfirm advances the two-phase role selection and submits once
// both roles are locked in.
func (h *Handler) handleRoleConfirm(ctx context.Context, cb *tgbotapi.CallbackQuery, quiz *storage.ActiveQuiz) {
	q := quiz.Current()
	sel := quiz.Selection

	if !q.IsRoleBased() {
		h.answerCallback(cb.ID, "Use Submit for this question")
		return
	}

	switch sel.Step {
	case entities.StepPrimary:
		if !sel.ConfirmPrimary() {
			h.answerCallback(cb.ID, "Select the governing word first")
			return
		}
		h.editQuestion(cb, quiz)
		h.answerCallback(cb.ID, "Now select the governed word")

	case entities.StepSecondary:
		if !sel.ConfirmSecondary() {
			h.answerCallback(cb.ID, "Select the governed word first")
			return
		}

		result, err := h.quizService.SubmitRoleAnswer(ctx, cb.From.ID, quiz.Session, q, sel)
		if err != nil {
			h.logger.Error("submit role answer", zap.Error(err))
			h.answerCallback(cb.ID, msgInternalError)
			return
		}
		if result.Tier == entities.TierInvalid {
			sel.Clear()
			sel.BeginRoleSelection()
			h.editQuestion(cb, quiz)
			h.answerCallback(cb.ID, result.Message)
			return
		}

		edit := newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, renderFeedback(q, result, quiz))
		kb := buildFeedbackKeyboard(false)
		edit.ReplyMarkup = &kb
		h.send(edit)
		h.answerCallback(cb.ID, "")

	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleNextQuestion(cb *tgbotapi.CallbackQuery, quiz *storage.ActiveQuiz) {
	chatID := cb.Message.Chat.ID

	quiz.Advance()

	if quiz.Current() == nil {
		h.store.Delete(cb.From.ID)

		edit := newHTMLEdit(chatID, cb.Message.MessageID, renderQuizSummary(quiz.Session))
		kb := buildQuizResultKeyboard()
		edit.ReplyMarkup = &kb
		h.send(edit)
		h.answerCallback(cb.ID, "")
		return
	}

	if quiz.Current().IsRoleBased() {
		quiz.Selection.BeginRoleSelection()
	}
	h.editQuestion(cb, quiz)
	h.answerCallback(cb.ID, "")
}

// handleRefine returns from the feedback screen to the segment keyboard so
// the learner can extend the selection.
func (h *Handler) handleRefine(cb *tgbotapi.CallbackQuery, quiz *storage.ActiveQuiz) {
	h.editQuestion(cb, quiz)
	h.answerCallback(cb.ID, "")
}

func (h *Handler) editQuestion(cb *tgbotapi.CallbackQuery, quiz *storage.ActiveQuiz) {
	edit := newHTMLEdit(cb.Message.Chat.ID, cb.Message.MessageID, renderQuestion(quiz))
	kb := buildSelectionKeyboard(quiz.Current(), quiz.Selection)
	edit.ReplyMarkup = &kb
	h.send(edit)
}
