package adjust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

func TestSituationalPoints(t *testing.T) {
	calc := newTestCalculator()
	game := testGame()

	tests := []struct {
		name         string
		homeCtx      models.SituationalContext
		awayCtx      models.SituationalContext
		expectedHome float64
		expectedAway float64
	}{
		{
			name: "no flags",
		},
		{
			name:         "home off bye",
			homeCtx:      models.SituationalContext{OffBye: true},
			expectedHome: 1.0,
		},
		{
			name:         "away on short week in a sandwich spot",
			awayCtx:      models.SituationalContext{ShortWeek: true, SandwichSpot: true},
			expectedAway: -2.0,
		},
		{
			name:         "flags stack additively with no cap",
			homeCtx:      models.SituationalContext{DivisionGame: true, RevengeGame: true, OffBye: true},
			expectedHome: 2.0,
		},
		{
			name:         "positive and negative flags offset",
			homeCtx:      models.SituationalContext{OffBye: true, LookaheadSpot: true},
			expectedHome: -0.5,
		},
		{
			name:         "weather profile flags carry no situational points",
			homeCtx:      models.SituationalContext{RushHeavy: true, DomeTeam: true},
			expectedHome: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away := calc.Situational(game, tt.homeCtx, tt.awayCtx)
			assert.InDelta(t, tt.expectedHome, home, 1e-9)
			assert.InDelta(t, tt.expectedAway, away, 1e-9)
		})
	}
}

func TestComputeAssemblesBreakdown(t *testing.T) {
	calc := newTestCalculator()
	game := testGame()

	forecast := &models.WeatherSnapshot{TemperatureF: 15.0, WindMPH: 20.0, PrecipProb: 0}
	injuries := []models.InjuryReport{
		{Player: "J. Allen", Position: "QB", Status: "Out", TeamID: "BUF"},
	}

	b := calc.Compute(game, models.SituationalContext{OffBye: true}, models.SituationalContext{}, forecast, injuries)

	assert.InDelta(t, 1.0, b.HomeSituational, 1e-9)
	assert.InDelta(t, 0.0, b.AwaySituational, 1e-9)
	assert.InDelta(t, -2.5, b.HomeWeather, 1e-9)
	assert.InDelta(t, -2.5, b.AwayWeather, 1e-9)
	assert.InDelta(t, -5.0, b.HomeInjury, 1e-9)
	assert.InDelta(t, 0.0, b.AwayInjury, 1e-9)
	assert.InDelta(t, 2.5, b.HomeField, 1e-9)

	assert.InDelta(t, -4.0, b.TotalHome(), 1e-9)
	assert.InDelta(t, -2.5, b.TotalAway(), 1e-9)
}
