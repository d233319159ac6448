package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/grammar"
)

// QuizModeMixed rotates through all four construction types.
const QuizModeMixed = "mixed"

var allConstructionTypes = []entities.ConstructionType{
	entities.ConstructionIdafa,
	entities.ConstructionJarMajrur,
	entities.ConstructionFilFail,
	entities.ConstructionHarfNasb,
}

// ValidQuizMode reports whether mode is "mixed" or a construction type.
func ValidQuizMode(mode string) bool {
	if mode == QuizModeMixed {
		return true
	}
	for _, t := range allConstructionTypes {
		if string(t) == mode {
			return true
		}
	}
	return false
}

// QuestionService builds quiz questions by running detection over corpus
// verses. Detection happens once here; validators only ever see the
// pre-computed construction list.
type QuestionService struct {
	verses VerseRepository
	engine *grammar.Engine
	rng    *rand.Rand
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(verses VerseRepository, engine *grammar.Engine) *QuestionService {
	return &QuestionService{
		verses: verses,
		engine: engine,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildQuestions samples verses until count questions exist for the given
// quiz mode. Verses yielding no construction of the wanted type are
// skipped.
func (s *QuestionService) BuildQuestions(ctx context.Context, mode string, count int) ([]entities.Question, error) {
	if count <= 0 {
		return nil, nil
	}

	verses, err := s.verses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get verses: %w", err)
	}

	shuffled := append([]*entities.Verse(nil), verses...)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	wanted := s.typeCycle(mode)

	var questions []entities.Question
	typeIdx := 0
	for _, verse := range shuffled {
		if len(questions) >= count {
			break
		}

		// Try each type starting from the cycle position so mixed mode
		// still fills up when a verse lacks the scheduled type.
		for offset := range wanted {
			t := wanted[(typeIdx+offset)%len(wanted)]
			q, ok := s.buildForType(verse, t)
			if !ok {
				continue
			}
			questions = append(questions, q)
			typeIdx++
			break
		}
	}

	return questions, nil
}

// typeCycle returns the construction types to rotate through for a mode.
func (s *QuestionService) typeCycle(mode string) []entities.ConstructionType {
	if mode == QuizModeMixed || !ValidQuizMode(mode) {
		return allConstructionTypes
	}
	return []entities.ConstructionType{entities.ConstructionType(mode)}
}

// buildForType detects constructions of one type in the verse and wraps
// them into a question. Inferred constructions are excluded from the
// ground truth: the attached-prefix jar-majrur pass intentionally overlaps
// the separate-token pass, and grading against guesses would punish
// correct answers.
func (s *QuestionService) buildForType(verse *entities.Verse, t entities.ConstructionType) (entities.Question, bool) {
	detected := s.engine.DetectAll(verse.Segments)

	var all, constructions []entities.Construction
	for _, c := range detected {
		if c.Certainty.Rank() <= entities.CertaintyInferred.Rank() {
			continue
		}
		all = append(all, c)
		if c.Type == t {
			constructions = append(constructions, c)
		}
	}
	if len(constructions) == 0 {
		return entities.Question{}, false
	}

	q := entities.Question{
		VerseRef:         verse.Ref,
		VerseText:        verse.Text,
		Segments:         verse.Segments,
		TargetType:       t,
		Constructions:    constructions,
		AllConstructions: all,
	}

	label := entities.TypeLabel(t)
	if q.IsRoleBased() {
		q.Prompt = fmt.Sprintf(
			"Identify the %s in verse %s: first the governing word, then the word it governs.",
			label, verse.Ref,
		)
	} else {
		q.Prompt = fmt.Sprintf("Select every segment of the %s in verse %s.", label, verse.Ref)
	}

	return q, true
}
