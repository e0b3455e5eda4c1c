package writer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// HolocronWriter mirrors emitted recommendations and rating snapshots to the
// Holocron database. Persistence is an external collaborator here: the
// engine and rating store never read back through this path.
type HolocronWriter struct {
	db *sql.DB
}

// NewHolocronWriter creates a new Holocron writer
func NewHolocronWriter(db *sql.DB) *HolocronWriter {
	return &HolocronWriter{
		db: db,
	}
}

// WriteRecommendation writes a recommendation and returns its row ID
func (w *HolocronWriter) WriteRecommendation(ctx context.Context, rec models.BetRecommendation) (int64, error) {
	query := `
		INSERT INTO bet_recommendations (
			recommendation_id, evaluation_id, game_id, sport_key,
			bet_type, side, line, price, edge_pct, star_rating,
			stake_fraction, stake_amount, bankroll, is_play, rationale, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`

	var id int64
	err := w.db.QueryRowContext(
		ctx,
		query,
		rec.RecommendationID,
		rec.EvaluationID,
		rec.GameID,
		rec.SportKey,
		string(rec.BetType),
		string(rec.Side),
		rec.Line,
		rec.Price,
		rec.EdgePercent,
		rec.StarRating,
		rec.StakeFraction,
		rec.StakeAmount,
		rec.Bankroll,
		rec.IsPlay,
		rec.Rationale,
		rec.CreatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to insert recommendation: %w", err)
	}

	return id, nil
}

// WriteRatingSnapshot mirrors one weekly rating snapshot
func (w *HolocronWriter) WriteRatingSnapshot(ctx context.Context, snap models.PowerRatingSnapshot) error {
	query := `
		INSERT INTO power_rating_snapshots (
			team_id, season, week, old_rating, true_game_performance,
			new_rating, blend_weight, score_differential, opponent_rating,
			injury_diff, home_field_value, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := w.db.ExecContext(ctx, query,
		snap.TeamID,
		snap.Season,
		snap.Week,
		snap.OldRating,
		snap.TrueGamePerformance,
		snap.NewRating,
		snap.BlendWeight,
		snap.Inputs.ScoreDifferential,
		snap.Inputs.OpponentRating,
		snap.Inputs.InjuryDiff,
		snap.Inputs.HomeFieldValue,
		snap.RecordedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert rating snapshot: %w", err)
	}

	return nil
}

// GetRecommendationByID retrieves a recommendation by row ID
func (w *HolocronWriter) GetRecommendationByID(ctx context.Context, id int64) (*models.BetRecommendation, error) {
	query := `
		SELECT id, recommendation_id, evaluation_id, game_id, sport_key,
		       bet_type, side, line, price, edge_pct, star_rating,
		       stake_fraction, stake_amount, bankroll, is_play, rationale, created_at
		FROM bet_recommendations
		WHERE id = $1
	`

	var rec models.BetRecommendation
	err := w.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.RecommendationID,
		&rec.EvaluationID,
		&rec.GameID,
		&rec.SportKey,
		&rec.BetType,
		&rec.Side,
		&rec.Line,
		&rec.Price,
		&rec.EdgePercent,
		&rec.StarRating,
		&rec.StakeFraction,
		&rec.StakeAmount,
		&rec.Bankroll,
		&rec.IsPlay,
		&rec.Rationale,
		&rec.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recommendation not found: %d", id)
		}
		return nil, fmt.Errorf("failed to query recommendation: %w", err)
	}

	return &rec, nil
}
