package models

import (
	"fmt"
	"time"
)

// Team is reference data owned by upstream collectors. The current power
// rating is mutable only through the rating store's weekly update.
type Team struct {
	TeamID      string `json:"team_id"`
	DisplayName string `json:"display_name"`
	Conference  string `json:"conference,omitempty"`
	Division    string `json:"division,omitempty"`
}

// Game identifies one scheduled matchup. Immutable once scheduled;
// (season, week, home, away) is the natural key.
type Game struct {
	GameID     string    `json:"game_id"`
	SportKey   string    `json:"sport_key"`
	Season     int       `json:"season"`
	Week       int       `json:"week"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	Kickoff    time.Time `json:"kickoff"` // UTC
	Stadium    string    `json:"stadium,omitempty"`
	Surface    string    `json:"surface,omitempty"`
}

// NewGame constructs a validated Game.
func NewGame(gameID, sportKey string, season, week int, homeTeamID, awayTeamID string, kickoff time.Time) (Game, error) {
	g := Game{
		GameID:     gameID,
		SportKey:   sportKey,
		Season:     season,
		Week:       week,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		Kickoff:    kickoff.UTC(),
	}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

// Validate checks game identity fields.
func (g Game) Validate() error {
	if g.GameID == "" {
		return fmt.Errorf("game_id is required")
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return fmt.Errorf("home_team_id and away_team_id are required")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("home and away teams must differ: %s", g.HomeTeamID)
	}
	if g.Season <= 0 || g.Week <= 0 {
		return fmt.Errorf("season and week must be positive: season=%d week=%d", g.Season, g.Week)
	}
	return nil
}
