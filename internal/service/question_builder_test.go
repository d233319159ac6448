package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
	"github.com/elvin52/quran-quiz-sub001/internal/grammar"
	"github.com/elvin52/quran-quiz-sub001/internal/repository"
)

type verseRepoStub struct {
	verses []*entities.Verse
}

func (s *verseRepoStub) GetByRef(_ context.Context, ref entities.VerseRef) (*entities.Verse, error) {
	for _, v := range s.verses {
		if v.Ref == ref {
			return v, nil
		}
	}
	return nil, repository.ErrVerseNotFound
}

func (s *verseRepoStub) GetAll(_ context.Context) ([]*entities.Verse, error) {
	return s.verses, nil
}

func (s *verseRepoStub) GetRandom(_ context.Context) (*entities.Verse, error) {
	if len(s.verses) == 0 {
		return nil, repository.ErrVerseNotFound
	}
	return s.verses[0], nil
}

// idafaVerse carries a definite idafa and a separate jar-majrur.
func idafaVerse() *entities.Verse {
	segs := []entities.Segment{
		{
			ID: "1-1-1-1", Text: "بِ",
			MorphologyClass: entities.ClassParticle,
			PositionType:    entities.PositionPrefix,
			GrammaticalRole: "preposition",
		},
		{
			ID: "1-1-1-2", Text: "سْمِ",
			MorphologyClass: entities.ClassNoun,
			PositionType:    entities.PositionRoot,
			Case:            entities.CaseGenitive,
		},
		{
			ID: "1-1-2-1", Text: "ٱللَّهِ",
			MorphologyClass: entities.ClassNoun,
			PositionType:    entities.PositionRoot,
			Case:            entities.CaseGenitive,
			IsDefinite:      true,
		},
	}
	return &entities.Verse{
		Ref:      entities.VerseRef{Surah: 1, Verse: 1},
		Text:     "بِسْمِ ٱللَّهِ",
		Segments: segs,
	}
}

// roleVerse carries a harf-nasb pair and a fil-fail pair.
func roleVerse() *entities.Verse {
	segs := []entities.Segment{
		{
			ID: "2-2-1-1", Text: "إِنَّ",
			MorphologyClass: entities.ClassParticle,
			PositionType:    entities.PositionRoot,
		},
		{
			ID: "2-2-2-1", Text: "ٱللَّهَ",
			MorphologyClass: entities.ClassNoun,
			PositionType:    entities.PositionRoot,
			Case:            entities.CaseAccusative,
			IsDefinite:      true,
		},
		{
			ID: "2-2-3-1", Text: "خَلَقَ",
			MorphologyClass: entities.ClassVerb,
			PositionType:    entities.PositionRoot,
			Tense:           "perfect",
		},
		// Accusative and indefinite, so the idafa detector's window scan
		// finds no possessor evidence in this verse.
		{
			ID: "2-2-4-1", Text: "بَشَرًا",
			MorphologyClass: entities.ClassNoun,
			PositionType:    entities.PositionRoot,
			Case:            entities.CaseAccusative,
		},
	}
	return &entities.Verse{
		Ref:      entities.VerseRef{Surah: 2, Verse: 2},
		Text:     "إِنَّ ٱللَّهَ خَلَقَ بَشَرًا",
		Segments: segs,
	}
}

func newQuestionService(verses ...*entities.Verse) *QuestionService {
	return NewQuestionService(&verseRepoStub{verses: verses}, grammar.NewEngine())
}

func TestBuildQuestions_MixedMode(t *testing.T) {
	svc := newQuestionService(idafaVerse(), roleVerse())

	questions, err := svc.BuildQuestions(context.Background(), QuizModeMixed, 4)
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	assert.LessOrEqual(t, len(questions), 4)

	for _, q := range questions {
		assert.NotEmpty(t, q.Constructions)
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.VerseText)
		for _, c := range q.Constructions {
			assert.Equal(t, q.TargetType, c.Type)
			// Inferred detections never enter the ground truth.
			assert.Greater(t, c.Certainty.Rank(), entities.CertaintyInferred.Rank())
		}
	}
}

func TestBuildQuestions_SingleTypeMode(t *testing.T) {
	svc := newQuestionService(idafaVerse(), roleVerse())

	questions, err := svc.BuildQuestions(context.Background(), string(entities.ConstructionIdafa), 5)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, entities.ConstructionIdafa, questions[0].TargetType)
	assert.False(t, questions[0].IsRoleBased())
}

func TestBuildQuestions_RoleBasedPrompt(t *testing.T) {
	svc := newQuestionService(roleVerse())

	questions, err := svc.BuildQuestions(context.Background(), string(entities.ConstructionFilFail), 1)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.True(t, q.IsRoleBased())
	assert.Contains(t, q.Prompt, "governing")
}

func TestBuildQuestions_SkipsVersesWithoutType(t *testing.T) {
	// The idafa verse has no verb, so fil-fail mode yields nothing from it.
	svc := newQuestionService(idafaVerse())

	questions, err := svc.BuildQuestions(context.Background(), string(entities.ConstructionFilFail), 3)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestBuildQuestions_ZeroCount(t *testing.T) {
	svc := newQuestionService(idafaVerse())

	questions, err := svc.BuildQuestions(context.Background(), QuizModeMixed, 0)
	require.NoError(t, err)
	assert.Nil(t, questions)
}

func TestValidQuizMode(t *testing.T) {
	assert.True(t, ValidQuizMode(QuizModeMixed))
	assert.True(t, ValidQuizMode(string(entities.ConstructionIdafa)))
	assert.True(t, ValidQuizMode(string(entities.ConstructionHarfNasb)))
	assert.False(t, ValidQuizMode("speed-run"))
	assert.False(t, ValidQuizMode(""))
}
