package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/repository"
)

var ErrNoQuestionsAvailable = errors.New("no questions available")

// QuizService orchestrates quiz sessions: question generation, answer
// validation and bookkeeping of sessions, answers and progress.
type QuizService struct {
	quizRepo      QuizRepository
	progressRepo  ProgressRepository
	settingsRepo  SettingsRepository
	questions     *QuestionService
	validator     *AnswerValidator
	roleValidator *RoleBasedValidator
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo QuizRepository,
	progressRepo ProgressRepository,
	settingsRepo SettingsRepository,
	questions *QuestionService,
) *QuizService {
	return &QuizService{
		quizRepo:      quizRepo,
		progressRepo:  progressRepo,
		settingsRepo:  settingsRepo,
		questions:     questions,
		validator:     NewAnswerValidator(),
		roleValidator: NewRoleBasedValidator(),
	}
}

// GenerateQuiz builds a question list for the user's settings and opens a
// session for it.
func (s *QuizService) GenerateQuiz(ctx context.Context, userID int64) (*entities.QuizSession, []entities.Question, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, nil, err
	}
	if settings == nil {
		settings = entities.NewUserSettings(userID)
	}

	questions, err := s.questions.BuildQuestions(ctx, settings.QuizMode, settings.QuizLength)
	if err != nil {
		return nil, nil, err
	}
	if len(questions) == 0 {
		return nil, nil, ErrNoQuestionsAvailable
	}

	session := entities.NewQuizSession(userID, len(questions), settings.QuizMode)
	id, err := s.quizRepo.Create(ctx, session)
	if err != nil {
		return nil, nil, err
	}
	session.ID = id

	return session, questions, nil
}

// GetSession loads a quiz session by ID.
func (s *QuizService) GetSession(ctx context.Context, sessionID int64) (*entities.QuizSession, error) {
	return s.quizRepo.GetByID(ctx, sessionID)
}

// SubmitSpanAnswer validates a flat span selection and, unless the input
// was structurally invalid, records the answer against the session and the
// user's progress.
func (s *QuizService) SubmitSpanAnswer(
	ctx context.Context,
	userID int64,
	session *entities.QuizSession,
	q *entities.Question,
	spans []int,
	priorSubmissions [][]int,
) (entities.ValidationResult, error) {
	result, err := s.validator.Validate(q, spans, priorSubmissions)
	if err != nil {
		return entities.ValidationResult{}, err
	}
	if result.Tier == entities.TierInvalid {
		return result, nil
	}

	if err := s.recordAnswer(ctx, userID, session, q, result); err != nil {
		return entities.ValidationResult{}, err
	}
	return result, nil
}

// SubmitRoleAnswer validates a completed two-phase role selection and
// records the answer the same way.
func (s *QuizService) SubmitRoleAnswer(
	ctx context.Context,
	userID int64,
	session *entities.QuizSession,
	q *entities.Question,
	sel *entities.UserSelection,
) (entities.ValidationResult, error) {
	result, err := s.roleValidator.Validate(q, sel)
	if err != nil {
		return entities.ValidationResult{}, err
	}
	if result.Tier == entities.TierInvalid {
		return result, nil
	}

	if err := s.recordAnswer(ctx, userID, session, q, result); err != nil {
		return entities.ValidationResult{}, err
	}
	return result, nil
}

// ScoreSpanSelection re-grades a refined selection together with earlier
// submissions, without recording a new answer. Used after the first scored
// attempt so the learner can keep adding segments and watch the score move.
func (s *QuizService) ScoreSpanSelection(
	q *entities.Question,
	spans []int,
	priorSubmissions [][]int,
) (entities.ValidationResult, error) {
	return s.validator.Validate(q, spans, priorSubmissions)
}

// AbandonSession marks an active session as abandoned.
func (s *QuizService) AbandonSession(ctx context.Context, session *entities.QuizSession) error {
	if !session.IsActive() {
		return nil
	}
	session.Abandon()
	if err := s.quizRepo.Update(ctx, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *QuizService) recordAnswer(
	ctx context.Context,
	userID int64,
	session *entities.QuizSession,
	q *entities.Question,
	result entities.ValidationResult,
) error {
	qa := entities.NewQuizAnswer(userID, session.ID, q, result)
	if err := s.quizRepo.SaveAnswer(ctx, qa); err != nil {
		return fmt.Errorf("save answer: %w", err)
	}

	progress, err := s.progressRepo.Get(ctx, userID, q.TargetType)
	if err != nil {
		if !errors.Is(err, repository.ErrProgressNotFound) {
			return fmt.Errorf("get progress: %w", err)
		}
		progress = entities.NewUserProgress(userID, q.TargetType)
	}
	progress.Record(result.Score, result.IsCorrect, time.Now())
	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}

	if result.IsCorrect {
		session.CorrectAnswers++
	}
	session.CurrentQuestionNum++
	if session.CurrentQuestionNum > session.TotalQuestions {
		session.Complete()
	}

	if err := s.quizRepo.Update(ctx, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}
