// Package repository provides data access for the quiz bot: the in-memory
// morphology corpus and the sentinel errors shared with the postgres-backed
// repositories.
package repository

import "errors"

var (
	ErrVerseNotFound    = errors.New("verse not found")
	ErrSessionNotFound  = errors.New("quiz session not found")
	ErrSettingsNotFound = errors.New("settings not found")
	ErrProgressNotFound = errors.New("progress not found")
)
