package emitter

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/line-model/internal/evaluator"
	"github.com/XavierBriggs/fortuna/services/line-model/internal/stake"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// recNamespace makes recommendation IDs deterministic: re-running the same
// evaluation yields the same recommendation ID, so runs stay comparable.
var recNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fortuna.internal/line-model/recommendation"))

// fractionTolerance absorbs float noise when checking that a stake fraction
// matches what the sizer derives.
const fractionTolerance = 1e-9

// Emitter assembles and validates the final BetRecommendation. It enforces
// the stake-fraction contract: the fraction must be exactly what the sizer
// derives from the evaluation, inside the configured bounds. Violations are
// programming errors and fail hard; clamping belongs to the sizer, never
// here.
type Emitter struct {
	sizer  *stake.Sizer
	config contracts.ModelConfig
	log    zerolog.Logger
}

// NewEmitter creates a recommendation emitter.
func NewEmitter(sizer *stake.Sizer, config contracts.ModelConfig, log zerolog.Logger) *Emitter {
	return &Emitter{
		sizer:  sizer,
		config: config,
		log:    log.With().Str("component", "emitter").Logger(),
	}
}

// Emit builds the recommendation for an evaluation. A non-qualifying
// evaluation still emits, as a no-action record (type none, zero stake),
// so batch consumers see every game accounted for.
func (e *Emitter) Emit(eval models.MatchupEvaluation, market models.MarketSnapshot, stakeFraction, bankroll float64) (models.BetRecommendation, error) {
	rec := models.BetRecommendation{
		RecommendationID: recommendationID(eval),
		EvaluationID:     eval.EvaluationID,
		GameID:           eval.GameID,
		SportKey:         e.config.GetSportKey(),
		BetType:          models.BetTypeNone,
		Side:             models.SideNone,
		EdgePercent:      eval.EdgePercent,
		StarRating:       eval.StarRating,
		StakeFraction:    stakeFraction,
		Bankroll:         bankroll,
		IsPlay:           eval.QualifiesAsPlay,
		Rationale:        buildRationale(eval),
		CreatedAt:        time.Now().UTC(),
	}

	if eval.QualifiesAsPlay {
		side := evaluator.RecommendedSide(eval)
		rec.BetType = models.BetTypeSpread
		rec.Side = side
		if side == models.SideHome {
			rec.Line = market.Spread
			rec.Price = market.SpreadHomePrice
		} else {
			rec.Line = -market.Spread
			rec.Price = market.SpreadAwayPrice
		}
	}

	if err := e.checkStakeInvariant(rec, eval, bankroll); err != nil {
		return models.BetRecommendation{}, err
	}

	rec.StakeAmount = e.sizer.Amount(rec.StakeFraction, bankroll)

	e.log.Debug().
		Str("recommendation_id", rec.RecommendationID).
		Str("game_id", rec.GameID).
		Str("side", string(rec.Side)).
		Float64("edge_pct", rec.EdgePercent).
		Float64("stake_fraction", rec.StakeFraction).
		Bool("is_play", rec.IsPlay).
		Msg("recommendation emitted")

	return rec, nil
}

// checkStakeInvariant verifies the stake fraction is inside bounds and
// derivable from the evaluation via the sizer's formula.
func (e *Emitter) checkStakeInvariant(rec models.BetRecommendation, eval models.MatchupEvaluation, bankroll float64) error {
	if rec.StakeFraction < 0 || rec.StakeFraction > e.config.GetMaxStakeFraction() {
		return fmt.Errorf("%w: stake fraction %.6f outside [0, %.4f]", models.ErrInvariantViolation, rec.StakeFraction, e.config.GetMaxStakeFraction())
	}

	if rec.Rationale == "" {
		return fmt.Errorf("%w: rationale is required", models.ErrInvariantViolation)
	}

	if !eval.QualifiesAsPlay {
		if rec.StakeFraction != 0 {
			return fmt.Errorf("%w: non-play carries stake fraction %.6f", models.ErrInvariantViolation, rec.StakeFraction)
		}
		return nil
	}

	derived := e.sizer.Fraction(eval.EdgePercent, rec.Price, eval.QualifiesAsPlay, bankroll)
	if math.Abs(derived-rec.StakeFraction) > fractionTolerance {
		return fmt.Errorf("%w: stake fraction %.6f not derivable from edge %.2f%% (sizer derives %.6f)", models.ErrInvariantViolation, rec.StakeFraction, eval.EdgePercent, derived)
	}

	return nil
}

// recommendationID derives the stable identifier from game id + evaluation id.
func recommendationID(eval models.MatchupEvaluation) string {
	key := fmt.Sprintf("%s|%s", eval.GameID, eval.EvaluationID)
	return uuid.NewSHA1(recNamespace, []byte(key)).String()
}

// buildRationale summarizes why the model landed where it did.
func buildRationale(eval models.MatchupEvaluation) string {
	b := eval.Breakdown
	return fmt.Sprintf(
		"power %.1f vs %.1f (base %+.1f); adj home S%+.1f W%+.1f E%+.1f HF%+.1f, away S%+.1f W%+.1f E%+.1f; predicted %+.1f vs effective %+.1f; edge %.1f pts (%.2f%%), %d star(s)",
		eval.HomeRating, eval.AwayRating, eval.BasePowerDiff,
		b.HomeSituational, b.HomeWeather, b.HomeInjury, b.HomeField,
		b.AwaySituational, b.AwayWeather, b.AwayInjury,
		eval.PredictedSpread, eval.EffectiveSpread,
		eval.EdgePoints, eval.EdgePercent, eval.StarRating,
	)
}
