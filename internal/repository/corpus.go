package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// CorpusRepository holds the morphologically tagged corpus in memory.
// The corpus file is a tab-separated dump with one segment per row:
//
//	location \t text \t tag \t features
//
// location is "surah:verse:word:segment", tag is one of N, ADJ, V, P, and
// features is a pipe-separated list (PREFIX, SUFFIX, NOM, ACC, GEN, DEF,
// M, F, S, D, PL, 1..3, PERF, IMPF, IMPV, PASS, SUBJ, JUS, ROLE:<name>).
// Lines starting with # are comments.
type CorpusRepository struct {
	verses []*entities.Verse
	byRef  map[string]*entities.Verse
}

// NewCorpusRepository loads and parses the corpus file.
func NewCorpusRepository(path string) (*CorpusRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.FieldsPerRecord = 4

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	repo := &CorpusRepository{byRef: make(map[string]*entities.Verse)}
	var (
		current  *entities.Verse
		lastWord int
	)
	for i, row := range rows {
		ref, word, seg, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("corpus row %d: %w", i+1, err)
		}

		if current == nil || current.Ref != ref {
			if existing, ok := repo.byRef[ref.String()]; ok {
				return nil, fmt.Errorf("corpus row %d: verse %s split across the file", i+1, existing.Ref)
			}
			current = &entities.Verse{Ref: ref}
			repo.verses = append(repo.verses, current)
			repo.byRef[ref.String()] = current
			lastWord = 0
		}

		// Rebuild the verse text: segments of one word concatenate,
		// words are space-separated.
		if word != lastWord && current.Text != "" {
			current.Text += " "
		}
		current.Text += seg.Text
		lastWord = word

		current.Segments = append(current.Segments, seg)
	}

	return repo, nil
}

// GetByRef returns the verse for the given reference.
func (r *CorpusRepository) GetByRef(_ context.Context, ref entities.VerseRef) (*entities.Verse, error) {
	verse, ok := r.byRef[ref.String()]
	if !ok {
		return nil, ErrVerseNotFound
	}
	return verse, nil
}

// GetAll returns every verse in corpus order.
func (r *CorpusRepository) GetAll(_ context.Context) ([]*entities.Verse, error) {
	return r.verses, nil
}

// GetRandom returns a random verse.
func (r *CorpusRepository) GetRandom(_ context.Context) (*entities.Verse, error) {
	if len(r.verses) == 0 {
		return nil, ErrVerseNotFound
	}
	return r.verses[rand.Intn(len(r.verses))], nil
}

func parseRow(row []string) (entities.VerseRef, int, entities.Segment, error) {
	loc := strings.Split(row[0], ":")
	if len(loc) != 4 {
		return entities.VerseRef{}, 0, entities.Segment{}, fmt.Errorf("bad location %q", row[0])
	}
	nums := make([]int, 4)
	for i, part := range loc {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return entities.VerseRef{}, 0, entities.Segment{}, fmt.Errorf("bad location %q", row[0])
		}
		nums[i] = n
	}

	seg := entities.Segment{
		ID:           entities.NewSegmentID(nums[0], nums[1], nums[2], nums[3]),
		Text:         row[1],
		PositionType: entities.PositionRoot,
	}
	if seg.Text == "" {
		return entities.VerseRef{}, 0, entities.Segment{}, fmt.Errorf("empty text at %q", row[0])
	}

	switch row[2] {
	case "N":
		seg.MorphologyClass = entities.ClassNoun
	case "ADJ":
		seg.MorphologyClass = entities.ClassAdjective
	case "V":
		seg.MorphologyClass = entities.ClassVerb
	case "P":
		seg.MorphologyClass = entities.ClassParticle
	default:
		return entities.VerseRef{}, 0, entities.Segment{}, fmt.Errorf("unknown tag %q", row[2])
	}

	if row[3] != "" {
		for _, feat := range strings.Split(row[3], "|") {
			applyFeature(&seg, feat)
		}
	}

	return entities.VerseRef{Surah: nums[0], Verse: nums[1]}, nums[2], seg, nil
}

// applyFeature maps one corpus feature token onto the segment. Unknown
// tokens are ignored so newer corpus dumps stay loadable.
func applyFeature(seg *entities.Segment, feat string) {
	switch feat {
	case "PREFIX":
		seg.PositionType = entities.PositionPrefix
	case "SUFFIX":
		seg.PositionType = entities.PositionSuffix
	case "NOM":
		seg.Case = entities.CaseNominative
	case "ACC":
		seg.Case = entities.CaseAccusative
	case "GEN":
		seg.Case = entities.CaseGenitive
	case "DEF":
		seg.IsDefinite = true
	case "M":
		seg.Gender = "masculine"
	case "F":
		seg.Gender = "feminine"
	case "S":
		seg.Number = "singular"
	case "D":
		seg.Number = "dual"
	case "PL":
		seg.Number = "plural"
	case "1", "2", "3":
		seg.Person = feat
	case "PERF":
		seg.Tense = "perfect"
	case "IMPF":
		seg.Tense = "imperfect"
	case "IMPV":
		seg.Tense = "imperative"
	case "PASS":
		seg.Voice = "passive"
	case "SUBJ":
		seg.Mood = "subjunctive"
	case "JUS":
		seg.Mood = "jussive"
	default:
		if role, ok := strings.CutPrefix(feat, "ROLE:"); ok {
			seg.GrammaticalRole = role
		}
	}
}
