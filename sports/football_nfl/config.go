package football_nfl

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// Config holds NFL-specific line model configuration. Scalar knobs take env
// overrides; the factor tables can additionally be replaced wholesale from a
// YAML file (LINE_MODEL_CONFIG_FILE) so point values stay auditable without
// a rebuild.
type Config struct {
	SportKey string `yaml:"sport_key"`

	// Rating store
	BlendWeight       float64 `yaml:"blend_weight"`
	PreseasonBaseline float64 `yaml:"preseason_baseline"`

	// Evaluation
	HomeFieldValue   float64 `yaml:"home_field_value"`
	EdgePctPerPoint  float64 `yaml:"edge_pct_per_point"`
	PlayThresholdPct float64 `yaml:"play_threshold_pct"`
	VigShiftPerPct   float64 `yaml:"vig_shift_per_pct"`

	// Staking
	KellyFraction    float64 `yaml:"kelly_fraction"`
	MinStakeFraction float64 `yaml:"min_stake_fraction"`
	MaxStakeFraction float64 `yaml:"max_stake_fraction"`

	// Factor tables
	StarBands         []contracts.StarBand        `yaml:"star_bands"`
	SituationalPoints map[string]float64          `yaml:"situational_points"`
	Weather           contracts.WeatherThresholds `yaml:"weather"`
	PositionTiers     map[string]float64          `yaml:"position_tiers"`
	StatusMultipliers map[string]float64          `yaml:"status_multipliers"`

	// Fallback tier weight for positions missing from the table
	DefaultPositionTier float64 `yaml:"default_position_tier"`
}

// NewConfig creates the NFL configuration with reference defaults and
// environment overrides.
func NewConfig() *Config {
	return &Config{
		SportKey: "football_nfl",

		BlendWeight:       getEnvFloat("RATING_BLEND_WEIGHT", 0.9), // 90/10 prior/new blend
		PreseasonBaseline: getEnvFloat("PRESEASON_BASELINE", 0.0),

		HomeFieldValue:   getEnvFloat("HOME_FIELD_VALUE", 2.5),
		EdgePctPerPoint:  getEnvFloat("EDGE_PCT_PER_POINT", 0.9),
		PlayThresholdPct: getEnvFloat("PLAY_THRESHOLD_PCT", 5.5),
		VigShiftPerPct:   getEnvFloat("VIG_SHIFT_PER_PCT", 0.25),

		KellyFraction:    getEnvFloat("KELLY_FRACTION", 0.25),
		MinStakeFraction: getEnvFloat("MIN_STAKE_FRACTION", 0.005), // 0.5% of bankroll
		MaxStakeFraction: getEnvFloat("MAX_STAKE_FRACTION", 0.03),  // 3.0% of bankroll

		StarBands: []contracts.StarBand{
			{MinEdgePct: 5.5, Stars: 1},
			{MinEdgePct: 7.5, Stars: 2},
			{MinEdgePct: 9.5, Stars: 3},
			{MinEdgePct: 12.0, Stars: 4},
			{MinEdgePct: 15.0, Stars: 5},
		},

		SituationalPoints: map[string]float64{
			"division_game":  0.5,
			"short_week":     -1.0,
			"off_bye":        1.0,
			"lookahead_spot": -1.5,
			"sandwich_spot":  -1.0,
			"revenge_game":   0.5,
		},

		Weather: contracts.WeatherThresholds{
			WindMPH:         15.0,
			WindPoints:      -1.5,
			ColdTempF:       20.0,
			HotTempF:        90.0,
			TempPoints:      -1.0,
			PrecipProb:      0.3,
			PrecipPoints:    -1.0,
			DomeVisitorMult: 1.25,
			RushHeavyMult:   0.5,
		},

		PositionTiers: map[string]float64{
			"QB":   5.0,
			"EDGE": 2.0,
			"WR":   2.0,
			"CB":   2.0,
			"OT":   1.5,
			"RB":   1.5,
			"DT":   1.25,
			"S":    1.25,
			"LB":   1.25,
			"TE":   1.25,
			"OG":   1.0,
			"C":    1.0,
			"K":    0.5,
			"P":    0.5,
		},
		DefaultPositionTier: 0.75,

		StatusMultipliers: map[string]float64{
			string(models.StatusOut):          1.0,
			string(models.StatusDoubtful):     0.75,
			string(models.StatusQuestionable): 0.5,
			string(models.StatusProbable):     0.25,
			string(models.StatusDayToDay):     0.4,
		},
	}
}

// LoadFile overlays the config with values from a YAML file. Fields absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// GetSportKey implements ModelConfig
func (c *Config) GetSportKey() string {
	return c.SportKey
}

// GetBlendWeight implements ModelConfig
func (c *Config) GetBlendWeight() float64 {
	return c.BlendWeight
}

// GetPreseasonBaseline implements ModelConfig
func (c *Config) GetPreseasonBaseline() float64 {
	return c.PreseasonBaseline
}

// GetHomeFieldValue implements ModelConfig
func (c *Config) GetHomeFieldValue() float64 {
	return c.HomeFieldValue
}

// GetEdgePctPerPoint implements ModelConfig
func (c *Config) GetEdgePctPerPoint() float64 {
	return c.EdgePctPerPoint
}

// GetPlayThresholdPct implements ModelConfig
func (c *Config) GetPlayThresholdPct() float64 {
	return c.PlayThresholdPct
}

// GetStarBands implements ModelConfig
func (c *Config) GetStarBands() []contracts.StarBand {
	return c.StarBands
}

// GetKellyFraction implements ModelConfig
func (c *Config) GetKellyFraction() float64 {
	return c.KellyFraction
}

// GetMinStakeFraction implements ModelConfig
func (c *Config) GetMinStakeFraction() float64 {
	return c.MinStakeFraction
}

// GetMaxStakeFraction implements ModelConfig
func (c *Config) GetMaxStakeFraction() float64 {
	return c.MaxStakeFraction
}

// GetVigShiftPerPct implements ModelConfig
func (c *Config) GetVigShiftPerPct() float64 {
	return c.VigShiftPerPct
}

// GetSituationalPoints implements ModelConfig
func (c *Config) GetSituationalPoints() map[string]float64 {
	return c.SituationalPoints
}

// GetWeatherThresholds implements ModelConfig
func (c *Config) GetWeatherThresholds() contracts.WeatherThresholds {
	return c.Weather
}

// GetPositionTierWeight implements ModelConfig
func (c *Config) GetPositionTierWeight(position string) float64 {
	if weight, ok := c.PositionTiers[strings.ToUpper(strings.TrimSpace(position))]; ok {
		return weight
	}
	return c.DefaultPositionTier
}

// GetStatusMultiplier implements ModelConfig. Unknown statuses multiply to
// zero impact rather than failing.
func (c *Config) GetStatusMultiplier(status models.InjuryStatus) float64 {
	return c.StatusMultipliers[string(status)]
}

// Helper functions for environment variable parsing

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
