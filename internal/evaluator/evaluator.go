package evaluator

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/oddsmath"
)

// evalNamespace makes evaluation IDs deterministic: the same game and market
// snapshot always evaluate to the same ID, so repeated runs are comparable.
var evalNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fortuna.internal/line-model/evaluation"))

// Evaluator combines power ratings, adjustments and a market line into a
// MatchupEvaluation. It holds no mutable state: every evaluation reads an
// immutable ratings view and produces a new value object, so independent
// games can be evaluated concurrently with no coordination.
type Evaluator struct {
	ratings     contracts.RatingSource
	adjustments contracts.AdjustmentSource
	config      contracts.ModelConfig
}

// NewEvaluator creates an evaluator.
func NewEvaluator(ratings contracts.RatingSource, adjustments contracts.AdjustmentSource, config contracts.ModelConfig) *Evaluator {
	return &Evaluator{
		ratings:     ratings,
		adjustments: adjustments,
		config:      config,
	}
}

// Evaluate scores one matchup against its market.
//
//  1. base power diff = home rating - away rating
//  2. adjusted power per side = rating + total side adjustment
//  3. predicted spread = adjusted home - adjusted away (positive favors home)
//  4. effective spread = posted spread normalized for vig skew
//  5. edge percentage = |predicted - effective| * conversion factor
//
// Fails with models.ErrMissingRating when either side has no rating,
// models.ErrInvalidMarket when the market snapshot fails boundary validation
// and models.ErrInvalidWeather when a supplied forecast does. A
// below-threshold evaluation is still returned for audit, with
// QualifiesAsPlay false.
func (e *Evaluator) Evaluate(game models.Game, market models.MarketSnapshot, homeCtx, awayCtx models.SituationalContext, forecast *models.WeatherSnapshot, injuries []models.InjuryReport) (models.MatchupEvaluation, error) {
	if err := game.Validate(); err != nil {
		return models.MatchupEvaluation{}, fmt.Errorf("invalid game: %w", err)
	}
	if err := market.Validate(); err != nil {
		return models.MatchupEvaluation{}, err
	}
	if forecast != nil {
		if err := forecast.Validate(); err != nil {
			return models.MatchupEvaluation{}, err
		}
	}

	homeRating, err := e.ratings.CurrentRating(game.HomeTeamID)
	if err != nil {
		return models.MatchupEvaluation{}, fmt.Errorf("%w: home team %s", models.ErrMissingRating, game.HomeTeamID)
	}

	awayRating, err := e.ratings.CurrentRating(game.AwayTeamID)
	if err != nil {
		return models.MatchupEvaluation{}, fmt.Errorf("%w: away team %s", models.ErrMissingRating, game.AwayTeamID)
	}

	breakdown := e.adjustments.Compute(game, homeCtx, awayCtx, forecast, injuries)

	adjustedHome := homeRating + breakdown.TotalHome()
	adjustedAway := awayRating + breakdown.TotalAway()
	predicted := adjustedHome - adjustedAway

	effective, err := oddsmath.EffectiveSpread(market.Spread, market.SpreadHomePrice, market.SpreadAwayPrice, e.config.GetVigShiftPerPct())
	if err != nil {
		return models.MatchupEvaluation{}, fmt.Errorf("%w: %v", models.ErrInvalidMarket, err)
	}

	edgePoints := math.Abs(predicted - effective)
	edgePct := edgePoints * e.config.GetEdgePctPerPoint()

	return models.MatchupEvaluation{
		EvaluationID:      evaluationID(game, market),
		GameID:            game.GameID,
		Season:            game.Season,
		Week:              game.Week,
		HomeTeamID:        game.HomeTeamID,
		AwayTeamID:        game.AwayTeamID,
		HomeRating:        homeRating,
		AwayRating:        awayRating,
		BasePowerDiff:     homeRating - awayRating,
		Breakdown:         breakdown,
		AdjustedPowerHome: adjustedHome,
		AdjustedPowerAway: adjustedAway,
		PredictedSpread:   predicted,
		MarketSpread:      market.Spread,
		EffectiveSpread:   effective,
		EdgePoints:        edgePoints,
		EdgePercent:       edgePct,
		StarRating:        starRating(edgePct, e.config.GetStarBands()),
		QualifiesAsPlay:   edgePct >= e.config.GetPlayThresholdPct(),
		EvaluatedAt:       time.Now().UTC(),
	}, nil
}

// RecommendedSide returns which side of the spread the model backs: home
// when the signed model-vs-market difference behind the edge computation is
// positive, away otherwise.
func RecommendedSide(eval models.MatchupEvaluation) models.BetSide {
	if eval.PredictedSpread >= eval.EffectiveSpread {
		return models.SideHome
	}
	return models.SideAway
}

// evaluationID derives the deterministic evaluation identifier from the game
// identity and the market snapshot's collection time.
func evaluationID(game models.Game, market models.MarketSnapshot) string {
	key := fmt.Sprintf("%s|%s|%d", game.GameID, market.Book, market.CollectedAt.UTC().UnixNano())
	return uuid.NewSHA1(evalNamespace, []byte(key)).String()
}

// starRating discretizes an edge percentage into an ordinal confidence tier:
// the stars of the highest band reached, or 0 below every band.
func starRating(edgePct float64, bands []contracts.StarBand) int {
	stars := 0
	for _, band := range bands {
		if edgePct >= band.MinEdgePct {
			stars = band.Stars
		}
	}
	return stars
}
