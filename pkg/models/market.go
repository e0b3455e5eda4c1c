package models

import (
	"fmt"
	"time"
)

// Validation bounds shared with the ingestion boundary. Out-of-range values
// almost always mean an upstream scraping bug, so they are rejected, never
// clamped.
const (
	MaxSpreadMagnitude = 50.0
	MinTotal           = 20.0
	MaxTotal           = 100.0
	MaxMoneyline       = 10000
)

// MarketSnapshot is the canonical representation of one game's market state
// at one point in time, as produced by the (external) collectors.
//
// Spread uses the posted home line convention: negative means the home team
// is favored by that many points (home -2.0 → Spread = -2.0).
type MarketSnapshot struct {
	Book     string `json:"book"`
	League   string `json:"league"`
	Sport    string `json:"sport"`
	GameKey  string `json:"game_key"`
	AwayTeam string `json:"away"`
	HomeTeam string `json:"home"`

	Spread float64 `json:"spread"`
	Total  float64 `json:"total"`

	// Two-sided prices in American odds. Both spread prices are required:
	// the vig normalization that produces the effective spread is computed
	// from them, never assumed away.
	SpreadHomePrice int `json:"spread_home_price"`
	SpreadAwayPrice int `json:"spread_away_price"`
	MoneylineHome   int `json:"moneyline_home,omitempty"`
	MoneylineAway   int `json:"moneyline_away,omitempty"`

	CollectedAt time.Time `json:"collected_at"`
}

// NewMarketSnapshot constructs a validated MarketSnapshot.
func NewMarketSnapshot(book, league, sport, gameKey, away, home string, spread, total float64, spreadHomePrice, spreadAwayPrice int, collectedAt time.Time) (MarketSnapshot, error) {
	m := MarketSnapshot{
		Book:            book,
		League:          league,
		Sport:           sport,
		GameKey:         gameKey,
		AwayTeam:        away,
		HomeTeam:        home,
		Spread:          spread,
		Total:           total,
		SpreadHomePrice: spreadHomePrice,
		SpreadAwayPrice: spreadAwayPrice,
		CollectedAt:     collectedAt.UTC(),
	}
	if err := m.Validate(); err != nil {
		return MarketSnapshot{}, err
	}
	return m, nil
}

// Validate enforces the ingestion-boundary ranges. Bounds are exclusive:
// a spread of exactly ±50 is rejected.
func (m MarketSnapshot) Validate() error {
	if m.GameKey == "" {
		return fmt.Errorf("%w: game_key is required", ErrInvalidMarket)
	}
	if m.Spread <= -MaxSpreadMagnitude || m.Spread >= MaxSpreadMagnitude {
		return fmt.Errorf("%w: spread %.1f outside (-%.0f, %.0f)", ErrInvalidMarket, m.Spread, MaxSpreadMagnitude, MaxSpreadMagnitude)
	}
	// Total is optional for a spread evaluation: zero means the collector
	// posted no total. A posted total must be inside the bounds.
	if m.Total != 0 && (m.Total <= MinTotal || m.Total >= MaxTotal) {
		return fmt.Errorf("%w: total %.1f outside (%.0f, %.0f)", ErrInvalidMarket, m.Total, MinTotal, MaxTotal)
	}
	if m.SpreadHomePrice == 0 || m.SpreadAwayPrice == 0 {
		return fmt.Errorf("%w: two-sided spread prices are required", ErrInvalidMarket)
	}
	for _, price := range []int{m.SpreadHomePrice, m.SpreadAwayPrice, m.MoneylineHome, m.MoneylineAway} {
		if price <= -MaxMoneyline || price >= MaxMoneyline {
			return fmt.Errorf("%w: price %d outside (-%d, %d)", ErrInvalidMarket, price, MaxMoneyline, MaxMoneyline)
		}
	}
	return nil
}
