package models

import "errors"

// Quiz errors.
var (
	ErrSourceUnavailable    = errors.New("question source unavailable")
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrPersistence          = errors.New("persistence failure")
	ErrResultAlreadyApplied = errors.New("result already applied")
	ErrNotFound             = errors.New("not found")
)
