package models

import (
	"testing"
	"time"
)

func TestGameValidate(t *testing.T) {
	kickoff := time.Date(2025, 11, 9, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		game    Game
		wantErr bool
	}{
		{
			name: "valid game",
			game: Game{GameID: "g1", SportKey: "football_nfl", Season: 2025, Week: 10, HomeTeamID: "BUF", AwayTeamID: "KC", Kickoff: kickoff},
		},
		{
			name:    "missing game id",
			game:    Game{Season: 2025, Week: 10, HomeTeamID: "BUF", AwayTeamID: "KC"},
			wantErr: true,
		},
		{
			name:    "missing away team",
			game:    Game{GameID: "g1", Season: 2025, Week: 10, HomeTeamID: "BUF"},
			wantErr: true,
		},
		{
			name:    "team playing itself",
			game:    Game{GameID: "g1", Season: 2025, Week: 10, HomeTeamID: "BUF", AwayTeamID: "BUF"},
			wantErr: true,
		},
		{
			name:    "zero week",
			game:    Game{GameID: "g1", Season: 2025, Week: 0, HomeTeamID: "BUF", AwayTeamID: "KC"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.game.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
