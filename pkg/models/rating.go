package models

import "time"

// RatingInputs records what went into a week's true game performance score,
// kept on the snapshot for auditability.
type RatingInputs struct {
	ScoreDifferential float64 `json:"score_differential"`
	OpponentRating    float64 `json:"opponent_rating"`
	InjuryDiff        float64 `json:"injury_diff"`
	HomeFieldValue    float64 `json:"home_field_value"`
}

// PowerRatingSnapshot is one rating observation for a team at a specific
// season+week. Snapshots are append-only; a team's current rating is the
// NewRating of its most recent snapshot.
//
// NewRating = BlendWeight*OldRating + (1-BlendWeight)*TrueGamePerformance.
type PowerRatingSnapshot struct {
	TeamID              string       `json:"team_id"`
	Season              int          `json:"season"`
	Week                int          `json:"week"`
	OldRating           float64      `json:"old_rating"`
	TrueGamePerformance float64      `json:"true_game_performance"`
	NewRating           float64      `json:"new_rating"`
	BlendWeight         float64      `json:"blend_weight"`
	Inputs              RatingInputs `json:"inputs"`
	RecordedAt          time.Time    `json:"recorded_at"`
}
