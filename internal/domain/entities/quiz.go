package entities

import "time"

// QuizSession represents a single quiz session for a user.
// It tracks the session ID, user ID, progress, quiz mode, session status, and timestamps.
type QuizSession struct {
	ID                 int64      // unique session ID
	UserID             int64      // user ID who started the quiz
	CurrentQuestionNum int        // current question number in the quiz
	CorrectAnswers     int        // number of fully correct answers so far
	TotalQuestions     int        // total number of questions in the quiz
	QuizMode           string     // quiz mode: "mixed" or a single construction type
	SessionStatus      string     // session status: "active", "completed", or "abandoned"
	StartedAt          time.Time  // timestamp when the quiz started
	CompletedAt        *time.Time // timestamp when the quiz was completed (nullable)
}

// NewQuizSession creates a new quiz session for a user with the specified total questions and mode.
func NewQuizSession(userID int64, totalQuestions int, mode string) *QuizSession {
	return &QuizSession{
		UserID:             userID,
		CurrentQuestionNum: 1,
		TotalQuestions:     totalQuestions,
		QuizMode:           mode,
		SessionStatus:      "active",
		StartedAt:          time.Now(),
	}
}

// IsActive reports whether the session is still accepting answers.
func (qs *QuizSession) IsActive() bool {
	return qs.SessionStatus == "active"
}

// Complete marks the quiz session as completed and sets the completion timestamp.
func (qs *QuizSession) Complete() {
	qs.SessionStatus = "completed"
	now := time.Now()
	qs.CompletedAt = &now
}

// Abandon marks the quiz session as abandoned.
func (qs *QuizSession) Abandon() {
	qs.SessionStatus = "abandoned"
}

// QuizAnswer records a scored answer to one quiz question.
type QuizAnswer struct {
	ID               int64
	UserID           int64
	SessionID        int64
	VerseRef         string           // "surah:verse" of the question
	ConstructionType ConstructionType // target type of the question
	Score            int              // 0-100
	Tier             FeedbackTier
	IsCorrect        bool
	AnsweredAt       time.Time
}

// NewQuizAnswer creates a quiz answer from a validation result.
func NewQuizAnswer(userID, sessionID int64, q *Question, result ValidationResult) *QuizAnswer {
	return &QuizAnswer{
		UserID:           userID,
		SessionID:        sessionID,
		VerseRef:         q.VerseRef.String(),
		ConstructionType: q.TargetType,
		Score:            result.Score,
		Tier:             result.Tier,
		IsCorrect:        result.IsCorrect,
		AnsweredAt:       time.Now(),
	}
}
