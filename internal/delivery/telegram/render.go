package telegram

import (
	"fmt"
	"strings"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/grammar"
	"github.com/elvin52/quran-quiz-sub001/internal/service"
	"github.com/elvin52/quran-quiz-sub001/internal/storage"
)

const lrm = "\u200E"

// renderQuestion builds the question message for the current quiz state.
func renderQuestion(quiz *storage.ActiveQuiz) string {
	q := quiz.Current()
	sel := quiz.Selection

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s<b>Question %d of %d</b>\n\n",
		lrm, quiz.Index+1, len(quiz.Questions))
	sb.WriteString(q.Prompt)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "<b>%s</b>\n\n", q.VerseText)

	if q.IsRoleBased() {
		switch sel.Step {
		case entities.StepSecondary:
			sb.WriteString("Step 2 of 2: now tap the <b>governed</b> word and press Confirm.")
		default:
			sb.WriteString("Step 1 of 2: tap the <b>governing</b> word and press Confirm.")
		}
	} else {
		sb.WriteString("Tap every segment of the construction, then press Submit.")
		if len(quiz.PriorSubmissions) > 0 {
			sb.WriteString("\nEarlier picks still count; add what you missed.")
		}
	}

	return sb.String()
}

// renderFeedback builds the post-answer message with per-construction detail.
func renderFeedback(q *entities.Question, result entities.ValidationResult, quiz *storage.ActiveQuiz) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s%s <b>%d / 100</b>\n\n", lrm, tierEmoji(result.Tier), result.Score)
	sb.WriteString(result.Message)
	sb.WriteString("\n")
	if result.Tip != "" {
		fmt.Fprintf(&sb, "\n💡 %s\n", result.Tip)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "<b>%s</b>\n\n", q.VerseText)

	for ci, c := range q.Constructions {
		mark := "▫️"
		if containsInt(result.Matched, ci) {
			mark = "✅"
		} else if containsInt(result.Missed, ci) {
			mark = "❌"
		}
		fmt.Fprintf(&sb, "%s %s\n", mark, c.Explanation)
	}

	if len(result.ExtraSpans) > 0 {
		index := grammar.BuildRelationshipIndex(q.Segments, q.AllConstructions)
		words := make([]string, 0, len(result.ExtraSpans))
		for _, pos := range result.ExtraSpans {
			if pos < 0 || pos >= len(q.Segments) {
				continue
			}
			// An extra pick may still play a role in a construction of
			// another type.
			if refs := index[pos]; len(refs) > 0 {
				words = append(words, fmt.Sprintf("%s (%s here)", q.Segments[pos].Text, refs[0].Role))
			} else {
				words = append(words, q.Segments[pos].Text)
			}
		}
		fmt.Fprintf(&sb, "\nNot part of this construction: %s\n", strings.Join(words, "، "))
	}

	if q.TargetType == entities.ConstructionIdafa {
		if chains := grammar.AssembleChains(q.Constructions); len(chains) > 0 {
			fmt.Fprintf(&sb, "\nThis verse carries a possession chain %d segments deep.\n",
				len(chains[0].Spans()))
		}
	}

	fmt.Fprintf(&sb, "\nQuestion %d of %d", quiz.Index+1, len(quiz.Questions))

	return sb.String()
}

// renderQuizSummary builds the end-of-quiz message.
func renderQuizSummary(session *entities.QuizSession) string {
	var sb strings.Builder
	sb.WriteString("<b>Quiz complete!</b>\n\n")
	fmt.Fprintf(&sb, "Fully correct answers: <b>%d of %d</b>\n\n",
		session.CorrectAnswers, session.TotalQuestions)

	switch {
	case session.CorrectAnswers == session.TotalQuestions:
		sb.WriteString("Māshāʾallāh — a perfect round! 🎉")
	case session.CorrectAnswers*2 >= session.TotalQuestions:
		sb.WriteString("Good work. Keep practicing the ones you missed.")
	default:
		sb.WriteString("Grammar takes repetition. Another round will help it stick.")
	}

	return sb.String()
}

// renderProgress builds the per-construction progress report.
func renderProgress(summary *service.ProgressSummary) string {
	var sb strings.Builder
	sb.WriteString("📊 <b>Your progress</b>\n\n")

	for _, row := range summary.PerType {
		fmt.Fprintf(&sb, "<b>%s</b>\n", entities.TypeLabel(row.ConstructionType))
		if row.Attempts == 0 {
			sb.WriteString("Not practiced yet.\n\n")
			continue
		}
		fmt.Fprintf(&sb, "Attempts: %d · Accuracy: %.0f%% · Avg score: %.0f\n",
			row.Attempts, row.Accuracy(), row.AverageScore())
		fmt.Fprintf(&sb, "Streak: %d (best %d)\n\n", row.Streak, row.BestStreak)
	}

	if summary.TotalAttempts > 0 {
		fmt.Fprintf(&sb, "Overall: %d attempts, %.0f%% accuracy, average score %.0f.",
			summary.TotalAttempts, summary.Accuracy, summary.AverageScore)
	} else {
		sb.WriteString("Send /quiz to answer your first question.")
	}

	return sb.String()
}

// renderSettings builds the settings overview.
func renderSettings(s *entities.UserSettings) string {
	reminders := "off"
	if s.RemindersEnabled {
		reminders = fmt.Sprintf("daily at %02d:00 UTC", s.ReminderHourUTC)
	}

	return fmt.Sprintf(
		"⚙️ <b>Settings</b>\n\n📝 Questions per quiz: <b>%d</b>\n🎲 Quiz mode: <b>%s</b>\n⏰ Reminders: <b>%s</b>",
		s.QuizLength,
		formatQuizMode(s.QuizMode),
		reminders,
	)
}

func formatQuizMode(mode string) string {
	if mode == service.QuizModeMixed {
		return "mixed (all constructions)"
	}
	return entities.TypeLabel(entities.ConstructionType(mode))
}

func tierEmoji(tier entities.FeedbackTier) string {
	switch tier {
	case entities.TierExact:
		return "🏆"
	case entities.TierClose:
		return "🎯"
	case entities.TierPartial:
		return "🟡"
	default:
		return "❌"
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
