package ratings

import (
	"fmt"
	"sync"
	"time"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// Store maintains the authoritative current power rating per team and its
// full update history. History is append-only and lives in memory; the
// Holocron writer mirrors snapshots out as an external collaborator, the
// store itself does no I/O.
//
// The single mutex serializes concurrent weekly updates so the duplicate-
// week rejection holds under concurrent writers.
type Store struct {
	mu       sync.RWMutex
	history  map[string][]models.PowerRatingSnapshot
	baseline float64
	blend    float64
}

// NewStore creates a rating store with the configured preseason baseline and
// default blend weight.
func NewStore(preseasonBaseline, blendWeight float64) *Store {
	return &Store{
		history:  make(map[string][]models.PowerRatingSnapshot),
		baseline: preseasonBaseline,
		blend:    blendWeight,
	}
}

// CurrentRating returns the team's current power rating: the NewRating of
// its most recent snapshot. Returns models.ErrNotFound if the team has no
// history.
func (s *Store) CurrentRating(teamID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps, ok := s.history[teamID]
	if !ok || len(snaps) == 0 {
		return 0, fmt.Errorf("%w: no rating snapshot for team %s", models.ErrNotFound, teamID)
	}

	return snaps[len(snaps)-1].NewRating, nil
}

// History returns a copy of the team's snapshot history, oldest first.
func (s *Store) History(teamID string) []models.PowerRatingSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps := s.history[teamID]
	out := make([]models.PowerRatingSnapshot, len(snaps))
	copy(out, snaps)
	return out
}

// RecordWeeklyUpdate blends the team's prior rating with this week's true
// game performance and appends the resulting snapshot.
//
//	new = blend*old + (1-blend)*trueGamePerformance
//
// The prior rating is the most recent snapshot's NewRating, or the preseason
// baseline for a team with no history. A second update for the same
// (team, season, week) fails with models.ErrDuplicateUpdate: double-
// processing a week must surface, never silently rewrite history.
func (s *Store) RecordWeeklyUpdate(teamID string, season, week int, trueGamePerformance float64, inputs models.RatingInputs) (models.PowerRatingSnapshot, error) {
	if teamID == "" {
		return models.PowerRatingSnapshot{}, fmt.Errorf("team_id is required")
	}
	if season <= 0 || week <= 0 {
		return models.PowerRatingSnapshot{}, fmt.Errorf("season and week must be positive: season=%d week=%d", season, week)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snaps := s.history[teamID]
	for _, snap := range snaps {
		if snap.Season == season && snap.Week == week {
			return models.PowerRatingSnapshot{}, fmt.Errorf("%w: team %s season %d week %d", models.ErrDuplicateUpdate, teamID, season, week)
		}
	}

	oldRating := s.baseline
	if len(snaps) > 0 {
		oldRating = snaps[len(snaps)-1].NewRating
	}

	snapshot := models.PowerRatingSnapshot{
		TeamID:              teamID,
		Season:              season,
		Week:                week,
		OldRating:           oldRating,
		TrueGamePerformance: trueGamePerformance,
		NewRating:           s.blend*oldRating + (1-s.blend)*trueGamePerformance,
		BlendWeight:         s.blend,
		Inputs:              inputs,
		RecordedAt:          time.Now().UTC(),
	}

	s.history[teamID] = append(snaps, snapshot)

	return snapshot, nil
}
