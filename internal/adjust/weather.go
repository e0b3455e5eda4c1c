package adjust

import (
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// Weather maps a forecast into per-side scoring-environment adjustments.
//
// Each threshold is a hard step: at or beyond the cutoff the configured
// points apply in full, strictly below it the contribution is exactly zero.
// No partial credit below a cutoff. A nil forecast, or a dome game,
// contributes nothing.
//
// The base adjustment is symmetric. A side's exposure is then scaled by its
// profile: rush-heavy teams are less weather-sensitive, dome-based teams
// visiting outdoor weather more so.
func (c *Calculator) Weather(forecast *models.WeatherSnapshot, homeCtx, awayCtx models.SituationalContext) (home, away float64) {
	if forecast == nil || forecast.IsDome {
		return 0, 0
	}

	t := c.config.GetWeatherThresholds()

	base := 0.0
	if forecast.WindMPH >= t.WindMPH {
		base += t.WindPoints
	}
	if forecast.TemperatureF <= t.ColdTempF || forecast.TemperatureF >= t.HotTempF {
		base += t.TempPoints
	}
	if forecast.PrecipProb >= t.PrecipProb {
		base += t.PrecipPoints
	}

	if base == 0 {
		return 0, 0
	}

	return base * profileMultiplier(homeCtx, t), base * profileMultiplier(awayCtx, t)
}

func profileMultiplier(ctx models.SituationalContext, t contracts.WeatherThresholds) float64 {
	switch {
	case ctx.RushHeavy:
		return t.RushHeavyMult
	case ctx.DomeTeam:
		return t.DomeVisitorMult
	default:
		return 1.0
	}
}
