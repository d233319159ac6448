package entities

import "time"

// UserSettings stores user-specific quiz preferences.
type UserSettings struct {
	UserID           int64
	QuizLength       int    // questions per quiz session
	QuizMode         string // "mixed" or a single construction type
	RemindersEnabled bool
	ReminderHourUTC  int // hour of day (UTC) for the practice reminder
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:           userID,
		QuizLength:       5,
		QuizMode:         "mixed",
		RemindersEnabled: false,
		ReminderHourUTC:  17,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
