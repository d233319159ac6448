package entities

import "time"

// UserProgress tracks how well a user recognizes one construction type.
type UserProgress struct {
	UserID           int64
	ConstructionType ConstructionType

	Attempts       int        // total questions answered for this type
	Correct        int        // fully correct answers
	Streak         int        // correct answers in a row
	BestStreak     int        // longest streak ever reached
	ScoreSum       int        // running sum of scores, for averaging
	LastReviewedAt *time.Time // nullable
}

// NewUserProgress creates an empty progress record for a construction type.
func NewUserProgress(userID int64, t ConstructionType) *UserProgress {
	return &UserProgress{
		UserID:           userID,
		ConstructionType: t,
	}
}

// Record updates the counters after one answered question.
func (p *UserProgress) Record(score int, isCorrect bool, now time.Time) {
	p.Attempts++
	p.ScoreSum += score
	if isCorrect {
		p.Correct++
		p.Streak++
		if p.Streak > p.BestStreak {
			p.BestStreak = p.Streak
		}
	} else {
		p.Streak = 0
	}
	p.LastReviewedAt = &now
}

// Accuracy returns the share of fully correct answers in percent.
func (p *UserProgress) Accuracy() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Attempts) * 100
}

// AverageScore returns the mean score across all attempts.
func (p *UserProgress) AverageScore() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.ScoreSum) / float64(p.Attempts)
}
