package models

import "time"

// SituationalContext carries one side's schedule-spot flags, supplied by the
// (external) schedule collector. Flags map to point values through the sport
// config's situational table.
type SituationalContext struct {
	DivisionGame  bool `json:"division_game"`
	ShortWeek     bool `json:"short_week"`
	OffBye        bool `json:"off_bye"`
	LookaheadSpot bool `json:"lookahead_spot"`
	SandwichSpot  bool `json:"sandwich_spot"`
	RevengeGame   bool `json:"revenge_game"`

	// Weather interaction profile. Weather hits both sides symmetrically
	// unless a side is dome-based or rush-heavy.
	DomeTeam  bool `json:"dome_team"`
	RushHeavy bool `json:"rush_heavy"`
}

// AdjustmentBreakdown holds the per-side point adjustments from each factor
// class. Situational (S), weather (W) and injury/emotional (E) are computed
// by the adjustment calculator; home field is the configured venue edge and
// is only ever non-zero on the home side.
type AdjustmentBreakdown struct {
	HomeSituational float64 `json:"home_situational"`
	AwaySituational float64 `json:"away_situational"`
	HomeWeather     float64 `json:"home_weather"`
	AwayWeather     float64 `json:"away_weather"`
	HomeInjury      float64 `json:"home_injury"`
	AwayInjury      float64 `json:"away_injury"`
	HomeField       float64 `json:"home_field"`
}

// TotalHome is the summed home-side adjustment across all factor classes.
func (b AdjustmentBreakdown) TotalHome() float64 {
	return b.HomeSituational + b.HomeWeather + b.HomeInjury + b.HomeField
}

// TotalAway is the summed away-side adjustment across all factor classes.
func (b AdjustmentBreakdown) TotalAway() float64 {
	return b.AwaySituational + b.AwayWeather + b.AwayInjury
}

// MatchupEvaluation is the engine's core output prior to a bet decision.
// It is a value object: created once per evaluation, never mutated.
//
// PredictedSpread is home-centric: positive means the model favors home by
// that many points. MarketSpread and EffectiveSpread keep the posted line
// convention (negative = home favored).
type MatchupEvaluation struct {
	EvaluationID string `json:"evaluation_id"`
	GameID       string `json:"game_id"`
	Season       int    `json:"season"`
	Week         int    `json:"week"`
	HomeTeamID   string `json:"home_team_id"`
	AwayTeamID   string `json:"away_team_id"`

	HomeRating    float64 `json:"home_rating"`
	AwayRating    float64 `json:"away_rating"`
	BasePowerDiff float64 `json:"base_power_diff"`

	Breakdown         AdjustmentBreakdown `json:"breakdown"`
	AdjustedPowerHome float64             `json:"adjusted_power_home"`
	AdjustedPowerAway float64             `json:"adjusted_power_away"`

	PredictedSpread float64 `json:"predicted_spread"`
	MarketSpread    float64 `json:"market_spread"`
	EffectiveSpread float64 `json:"effective_spread"`

	EdgePoints      float64 `json:"edge_points"`
	EdgePercent     float64 `json:"edge_pct"`
	StarRating      int     `json:"star_rating"`
	QualifiesAsPlay bool    `json:"qualifies_as_play"`

	EvaluatedAt time.Time `json:"evaluated_at"`
}

// BetType classifies the recommended market.
type BetType string

const (
	BetTypeSpread    BetType = "spread"
	BetTypeMoneyline BetType = "moneyline"
	BetTypeTotal     BetType = "total"
	BetTypeNone      BetType = "none"
)

// BetSide identifies which side of the market is recommended.
type BetSide string

const (
	SideHome  BetSide = "home"
	SideAway  BetSide = "away"
	SideOver  BetSide = "over"
	SideUnder BetSide = "under"
	SideNone  BetSide = "none"
)

// BetRecommendation is the consumer-facing decision record. Immutable after
// creation: re-evaluating the same game produces a new recommendation with a
// new (deterministic) identifier, never a mutation of an old one.
type BetRecommendation struct {
	RecommendationID string  `json:"recommendation_id"`
	EvaluationID     string  `json:"evaluation_id"`
	GameID           string  `json:"game_id"`
	SportKey         string  `json:"sport_key"`
	BetType          BetType `json:"bet_type"`
	Side             BetSide `json:"side"`
	Line             float64 `json:"line"`
	Price            int     `json:"price"` // American odds
	EdgePercent      float64 `json:"edge_pct"`
	StarRating       int     `json:"star_rating"`
	StakeFraction    float64 `json:"stake_fraction"` // of bankroll, [0, max]
	StakeAmount      float64 `json:"stake_amount"`
	Bankroll         float64 `json:"bankroll"`
	IsPlay           bool    `json:"is_play"`
	Rationale        string  `json:"rationale"`

	CreatedAt time.Time `json:"created_at"`

	// Database ID (populated after write)
	ID int64 `json:"id,omitempty"`
}
