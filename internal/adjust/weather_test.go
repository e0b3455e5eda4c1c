package adjust

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
	"github.com/XavierBriggs/fortuna/services/line-model/sports/football_nfl"
)

func newTestCalculator() *Calculator {
	return NewCalculator(football_nfl.NewConfig(), zerolog.Nop())
}

func TestWeatherNilForecast(t *testing.T) {
	calc := newTestCalculator()

	home, away := calc.Weather(nil, models.SituationalContext{}, models.SituationalContext{})
	assert.Zero(t, home)
	assert.Zero(t, away)
}

func TestWeatherDomeGame(t *testing.T) {
	calc := newTestCalculator()

	forecast := &models.WeatherSnapshot{TemperatureF: 10.0, WindMPH: 40.0, PrecipProb: 0.9, IsDome: true}

	home, away := calc.Weather(forecast, models.SituationalContext{}, models.SituationalContext{})
	assert.Zero(t, home)
	assert.Zero(t, away)
}

func TestWeatherBelowEveryThresholdIsExactlyZero(t *testing.T) {
	calc := newTestCalculator()

	// Just under every cutoff: no partial credit, the contribution is zero
	forecast := &models.WeatherSnapshot{TemperatureF: 20.5, WindMPH: 14.9, PrecipProb: 0.29}

	home, away := calc.Weather(forecast, models.SituationalContext{}, models.SituationalContext{})
	assert.Zero(t, home)
	assert.Zero(t, away)
}

func TestWeatherThresholdsAreInclusive(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		forecast models.WeatherSnapshot
		expected float64
	}{
		{
			name:     "wind at cutoff",
			forecast: models.WeatherSnapshot{TemperatureF: 50.0, WindMPH: 15.0, PrecipProb: 0},
			expected: -1.5,
		},
		{
			name:     "cold at cutoff",
			forecast: models.WeatherSnapshot{TemperatureF: 20.0, WindMPH: 0, PrecipProb: 0},
			expected: -1.0,
		},
		{
			name:     "heat at cutoff",
			forecast: models.WeatherSnapshot{TemperatureF: 90.0, WindMPH: 0, PrecipProb: 0},
			expected: -1.0,
		},
		{
			name:     "precip at cutoff",
			forecast: models.WeatherSnapshot{TemperatureF: 50.0, WindMPH: 0, PrecipProb: 0.3},
			expected: -1.0,
		},
		{
			name:     "all three stack",
			forecast: models.WeatherSnapshot{TemperatureF: 10.0, WindMPH: 22.0, PrecipProb: 0.6},
			expected: -3.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away := calc.Weather(&tt.forecast, models.SituationalContext{}, models.SituationalContext{})
			assert.InDelta(t, tt.expected, home, 1e-9)
			assert.InDelta(t, tt.expected, away, 1e-9)
		})
	}
}

func TestWeatherProfileMultipliers(t *testing.T) {
	calc := newTestCalculator()

	// Wind only: base -1.5
	forecast := &models.WeatherSnapshot{TemperatureF: 50.0, WindMPH: 18.0, PrecipProb: 0}

	rushHeavy := models.SituationalContext{RushHeavy: true}
	domeTeam := models.SituationalContext{DomeTeam: true}
	neutral := models.SituationalContext{}

	home, away := calc.Weather(forecast, rushHeavy, neutral)
	assert.InDelta(t, -0.75, home, 1e-9, "rush-heavy side halves its exposure")
	assert.InDelta(t, -1.5, away, 1e-9)

	home, away = calc.Weather(forecast, neutral, domeTeam)
	assert.InDelta(t, -1.5, home, 1e-9)
	assert.InDelta(t, -1.875, away, 1e-9, "dome-based visitor is hit harder")

	// Rush-heavy wins when both flags are set
	both := models.SituationalContext{RushHeavy: true, DomeTeam: true}
	home, _ = calc.Weather(forecast, both, neutral)
	assert.InDelta(t, -0.75, home, 1e-9)
}
