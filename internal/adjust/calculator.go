package adjust

import (
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// Calculator produces the adjustment breakdown for a matchup from three
// independent factor classes plus the configured home-field value.
type Calculator struct {
	config contracts.ModelConfig
	log    zerolog.Logger
}

// NewCalculator creates an adjustment calculator.
func NewCalculator(config contracts.ModelConfig, log zerolog.Logger) *Calculator {
	return &Calculator{
		config: config,
		log:    log.With().Str("component", "adjust").Logger(),
	}
}

// Compute implements contracts.AdjustmentSource. Any missing input defaults
// to zero adjustment for that factor class; partial data still produces a
// best-effort breakdown.
func (c *Calculator) Compute(game models.Game, homeCtx, awayCtx models.SituationalContext, forecast *models.WeatherSnapshot, injuries []models.InjuryReport) models.AdjustmentBreakdown {
	var b models.AdjustmentBreakdown

	b.HomeSituational, b.AwaySituational = c.Situational(game, homeCtx, awayCtx)
	b.HomeWeather, b.AwayWeather = c.Weather(forecast, homeCtx, awayCtx)
	b.HomeInjury, b.AwayInjury = c.Injury(game, injuries)
	b.HomeField = c.config.GetHomeFieldValue()

	c.log.Debug().
		Str("game_id", game.GameID).
		Float64("home_situational", b.HomeSituational).
		Float64("away_situational", b.AwaySituational).
		Float64("home_weather", b.HomeWeather).
		Float64("away_weather", b.AwayWeather).
		Float64("home_injury", b.HomeInjury).
		Float64("away_injury", b.AwayInjury).
		Float64("home_field", b.HomeField).
		Msg("adjustment breakdown computed")

	return b
}
