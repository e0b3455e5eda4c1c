package models

import "errors"

// Sentinel errors shared across the line-model pipeline.
// Callers match with errors.Is; constructors and components wrap these
// with context via fmt.Errorf("...: %w", err).
var (
	// ErrNotFound indicates a team has no rating history yet
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUpdate indicates a rating update for a (team, season, week)
	// that already has a snapshot. Weekly updates are idempotent-reject,
	// never idempotent-overwrite.
	ErrDuplicateUpdate = errors.New("duplicate weekly update")

	// ErrMissingRating indicates a matchup could not be evaluated because
	// one side has no current power rating
	ErrMissingRating = errors.New("missing power rating")

	// ErrInvalidMarket indicates market data that failed ingestion validation
	ErrInvalidMarket = errors.New("invalid market data")

	// ErrInvalidWeather indicates weather data that failed ingestion validation
	ErrInvalidWeather = errors.New("invalid weather data")

	// ErrInvariantViolation indicates a programming-contract failure at the
	// emission boundary (e.g. a stake fraction the sizer could not have produced).
	// Never recovered.
	ErrInvariantViolation = errors.New("invariant violation")
)
