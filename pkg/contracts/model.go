package contracts

import (
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// RatingSource provides current power ratings to the evaluator.
type RatingSource interface {
	// CurrentRating returns the team's current power rating.
	// Returns models.ErrNotFound if the team has no rating history.
	CurrentRating(teamID string) (float64, error)
}

// AdjustmentSource computes the per-side point adjustments for a matchup.
type AdjustmentSource interface {
	// Compute produces the S/W/E/home-field breakdown for a game.
	// Missing inputs contribute zero; Compute never fails.
	Compute(game models.Game, homeCtx, awayCtx models.SituationalContext, forecast *models.WeatherSnapshot, injuries []models.InjuryReport) models.AdjustmentBreakdown
}

// StarBand maps an edge percentage floor to an ordinal confidence tier.
// Bands are sorted ascending by MinEdgePct; an evaluation gets the stars of
// the highest band it reaches, or zero below the first band.
type StarBand struct {
	MinEdgePct float64 `yaml:"min_edge_pct" json:"min_edge_pct"`
	Stars      int     `yaml:"stars" json:"stars"`
}

// WeatherThresholds holds the hard cutoffs for the weather factor. At or
// beyond a threshold the corresponding points apply in full; below it the
// contribution is exactly zero. Step functions, not ramps.
type WeatherThresholds struct {
	WindMPH         float64 `yaml:"wind_mph" json:"wind_mph"`
	WindPoints      float64 `yaml:"wind_points" json:"wind_points"`
	ColdTempF       float64 `yaml:"cold_temp_f" json:"cold_temp_f"`
	HotTempF        float64 `yaml:"hot_temp_f" json:"hot_temp_f"`
	TempPoints      float64 `yaml:"temp_points" json:"temp_points"`
	PrecipProb      float64 `yaml:"precip_prob" json:"precip_prob"`
	PrecipPoints    float64 `yaml:"precip_points" json:"precip_points"`
	DomeVisitorMult float64 `yaml:"dome_visitor_mult" json:"dome_visitor_mult"`
	RushHeavyMult   float64 `yaml:"rush_heavy_mult" json:"rush_heavy_mult"`
}

// ModelConfig defines the tunable surface of the line model. Every model
// constant lives behind this interface so a sport package can override it
// without touching engine code.
type ModelConfig interface {
	// GetSportKey returns the sport this configuration applies to
	GetSportKey() string

	// GetBlendWeight returns the prior-rating weight in the weekly blend
	GetBlendWeight() float64

	// GetPreseasonBaseline returns the rating used when a team has no history
	GetPreseasonBaseline() float64

	// GetHomeFieldValue returns the venue edge in points
	GetHomeFieldValue() float64

	// GetEdgePctPerPoint returns the edge-points → edge-percentage conversion
	GetEdgePctPerPoint() float64

	// GetPlayThresholdPct returns the single edge percentage at or above
	// which an evaluation qualifies as a play
	GetPlayThresholdPct() float64

	// GetStarBands returns the ordinal confidence tier table
	GetStarBands() []StarBand

	// GetKellyFraction returns the fractional-Kelly multiplier
	GetKellyFraction() float64

	// GetMinStakeFraction returns the bankroll-fraction floor for plays
	GetMinStakeFraction() float64

	// GetMaxStakeFraction returns the bankroll-fraction hard cap
	GetMaxStakeFraction() float64

	// GetVigShiftPerPct returns points of spread shift per percentage point
	// of no-vig price skew
	GetVigShiftPerPct() float64

	// GetSituationalPoints returns the flag → point value table
	GetSituationalPoints() map[string]float64

	// GetWeatherThresholds returns the weather step-function table
	GetWeatherThresholds() WeatherThresholds

	// GetPositionTierWeight returns the injury impact weight for a position
	GetPositionTierWeight(position string) float64

	// GetStatusMultiplier returns the injury-status severity multiplier
	GetStatusMultiplier(status models.InjuryStatus) float64
}
