package models

// EvaluationRequest bundles everything the engine needs to evaluate one game.
// Collectors publish these to the evaluation stream; the HTTP API accepts the
// same shape. Forecast, Injuries and the situational contexts are optional:
// a missing factor class degrades to zero adjustment, never to a failure.
type EvaluationRequest struct {
	Game   Game           `json:"game"`
	Market MarketSnapshot `json:"market"`

	Forecast    *WeatherSnapshot   `json:"forecast,omitempty"`
	Injuries    []InjuryReport     `json:"injuries,omitempty"`
	HomeContext SituationalContext `json:"home_context"`
	AwayContext SituationalContext `json:"away_context"`

	// Bankroll for stake sizing; the service default applies when zero.
	Bankroll float64 `json:"bankroll,omitempty"`
}

// EvaluationResult pairs the audit-level evaluation with the emitted
// recommendation for one game.
type EvaluationResult struct {
	Evaluation     MatchupEvaluation `json:"evaluation"`
	Recommendation BetRecommendation `json:"recommendation"`
}

// BatchItem is one game's outcome within a batch evaluation. A failed game
// carries its error text and never aborts the rest of the batch.
type BatchItem struct {
	GameID string            `json:"game_id"`
	Result *EvaluationResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}
