package models

import (
	"fmt"
	"time"
)

// Weather ingestion bounds.
const (
	MinTemperatureF = -20.0
	MaxTemperatureF = 130.0
	MaxWindMPH      = 100.0
)

// WeatherSnapshot is a game-time forecast from the (external) weather
// collector. A nil snapshot downstream means "no weather signal" and
// contributes zero adjustment, it is never an error.
type WeatherSnapshot struct {
	GameKey      string    `json:"game_key"`
	TemperatureF float64   `json:"temperature_f"`
	WindMPH      float64   `json:"wind_mph"`
	PrecipProb   float64   `json:"precip_prob"` // 0..1
	IsDome       bool      `json:"is_dome"`
	ForecastedAt time.Time `json:"forecasted_at"`
}

// NewWeatherSnapshot constructs a validated WeatherSnapshot.
func NewWeatherSnapshot(gameKey string, tempF, windMPH, precipProb float64, isDome bool, forecastedAt time.Time) (WeatherSnapshot, error) {
	w := WeatherSnapshot{
		GameKey:      gameKey,
		TemperatureF: tempF,
		WindMPH:      windMPH,
		PrecipProb:   precipProb,
		IsDome:       isDome,
		ForecastedAt: forecastedAt.UTC(),
	}
	if err := w.Validate(); err != nil {
		return WeatherSnapshot{}, err
	}
	return w, nil
}

// Validate enforces the ingestion-boundary ranges.
func (w WeatherSnapshot) Validate() error {
	if w.TemperatureF <= MinTemperatureF || w.TemperatureF >= MaxTemperatureF {
		return fmt.Errorf("%w: temperature %.1f°F outside (%.0f, %.0f)", ErrInvalidWeather, w.TemperatureF, MinTemperatureF, MaxTemperatureF)
	}
	if w.WindMPH < 0 || w.WindMPH >= MaxWindMPH {
		return fmt.Errorf("%w: wind %.1f mph outside [0, %.0f)", ErrInvalidWeather, w.WindMPH, MaxWindMPH)
	}
	if w.PrecipProb < 0 || w.PrecipProb > 1 {
		return fmt.Errorf("%w: precip probability %.2f outside [0, 1]", ErrInvalidWeather, w.PrecipProb)
	}
	return nil
}
