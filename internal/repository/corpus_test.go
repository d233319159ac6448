package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

func TestNewCorpusRepository_LoadsSample(t *testing.T) {
	repo, err := NewCorpusRepository(filepath.Join("testdata", "corpus_sample.tsv"))
	require.NoError(t, err)

	verses, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, verses, 2)

	bismillah := verses[0]
	assert.Equal(t, entities.VerseRef{Surah: 1, Verse: 1}, bismillah.Ref)
	require.Len(t, bismillah.Segments, 5)

	// Segments of one word concatenate, words are space-separated.
	assert.Equal(t, "بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ", bismillah.Text)

	first := bismillah.Segments[0]
	assert.Equal(t, "1-1-1-1", first.ID)
	assert.Equal(t, entities.ClassParticle, first.MorphologyClass)
	assert.Equal(t, entities.PositionPrefix, first.PositionType)
	assert.Equal(t, "preposition", first.GrammaticalRole)

	ism := bismillah.Segments[1]
	assert.Equal(t, entities.CaseGenitive, ism.Case)
	assert.False(t, ism.IsDefinite)

	allah := bismillah.Segments[2]
	assert.True(t, allah.IsDefinite)
}

func TestNewCorpusRepository_FeatureMapping(t *testing.T) {
	repo, err := NewCorpusRepository(filepath.Join("testdata", "corpus_sample.tsv"))
	require.NoError(t, err)

	verse, err := repo.GetByRef(context.Background(), entities.VerseRef{Surah: 2, Verse: 2})
	require.NoError(t, err)
	require.Len(t, verse.Segments, 4)

	v := verse.Segments[2]
	assert.Equal(t, entities.ClassVerb, v.MorphologyClass)
	assert.Equal(t, "perfect", v.Tense)
	assert.Equal(t, "3", v.Person)
	assert.Equal(t, "masculine", v.Gender)
	assert.Equal(t, entities.CaseUnknown, v.Case)
}

func TestCorpusRepository_GetByRefNotFound(t *testing.T) {
	repo, err := NewCorpusRepository(filepath.Join("testdata", "corpus_sample.tsv"))
	require.NoError(t, err)

	_, err = repo.GetByRef(context.Background(), entities.VerseRef{Surah: 99, Verse: 1})
	assert.ErrorIs(t, err, ErrVerseNotFound)
}

func TestCorpusRepository_GetRandom(t *testing.T) {
	repo, err := NewCorpusRepository(filepath.Join("testdata", "corpus_sample.tsv"))
	require.NoError(t, err)

	verse, err := repo.GetRandom(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, verse)
}

func TestNewCorpusRepository_RejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"bad location", "1:1:1\tx\tN\t"},
		{"bad tag", "1:1:1:1\tx\tXYZ\t"},
		{"empty text", "1:1:1:1\t\tN\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "corpus.tsv")
			require.NoError(t, os.WriteFile(path, []byte(tt.row+"\n"), 0o644))

			_, err := NewCorpusRepository(path)
			assert.Error(t, err)
		})
	}
}

func TestNewCorpusRepository_MissingFile(t *testing.T) {
	_, err := NewCorpusRepository(filepath.Join(t.TempDir(), "nope.tsv"))
	assert.Error(t, err)
}
