package models

import "strings"

// InjuryStatus is the canonical injury designation. Report text varies by
// source, so parsing is case-insensitive and unknown strings map to
// StatusUnknown (zero impact) rather than failing: a missing or garbled
// signal is safer than blocking an evaluation.
type InjuryStatus string

const (
	StatusOut          InjuryStatus = "out"
	StatusDoubtful     InjuryStatus = "doubtful"
	StatusQuestionable InjuryStatus = "questionable"
	StatusProbable     InjuryStatus = "probable"
	StatusDayToDay     InjuryStatus = "day-to-day"
	StatusUnknown      InjuryStatus = "unknown"
)

// ParseInjuryStatus normalizes a raw status string.
func ParseInjuryStatus(raw string) InjuryStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "out":
		return StatusOut
	case "doubtful":
		return StatusDoubtful
	case "questionable":
		return StatusQuestionable
	case "probable":
		return StatusProbable
	case "day-to-day", "day to day", "dtd":
		return StatusDayToDay
	default:
		return StatusUnknown
	}
}

// InjuryReport is one reported injury for one player, from the (external)
// injury collector.
type InjuryReport struct {
	Player   string `json:"player"`
	Position string `json:"position"`
	Status   string `json:"status"` // raw report text, parsed downstream
	TeamID   string `json:"team_id"`
}
