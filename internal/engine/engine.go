package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/line-model/internal/consumer"
	"github.com/XavierBriggs/fortuna/services/line-model/internal/emitter"
	"github.com/XavierBriggs/fortuna/services/line-model/internal/evaluator"
	"github.com/XavierBriggs/fortuna/services/line-model/internal/stake"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// RecommendationSink persists emitted recommendations (Holocron writer in
// production, a fake in tests).
type RecommendationSink interface {
	WriteRecommendation(ctx context.Context, rec models.BetRecommendation) (int64, error)
}

// RecommendationPublisher fans recommendations out to downstream streams.
type RecommendationPublisher interface {
	Publish(ctx context.Context, rec models.BetRecommendation) error
}

// Broadcaster pushes recommendations to live subscribers (websocket hub).
type Broadcaster interface {
	Broadcast(rec models.BetRecommendation)
}

// Engine runs the evaluate → size → emit pipeline for every incoming game.
// Evaluations are independent: a failure in one game is reported and counted
// but never aborts the rest of a batch or the stream loop.
type Engine struct {
	evaluator *evaluator.Evaluator
	sizer     *stake.Sizer
	emitter   *emitter.Emitter
	consumer  *consumer.StreamConsumer

	sink        RecommendationSink
	publisher   RecommendationPublisher
	broadcaster Broadcaster

	config          contracts.ModelConfig
	defaultBankroll float64
	log             zerolog.Logger

	// Metrics
	evaluatedCount int64
	playCount      int64
	errorCount     int64
	totalLatencyMs int64
	mu             sync.Mutex
}

// NewEngine creates an evaluation engine. Sink, publisher and broadcaster
// are optional; the pure pipeline runs without them.
func NewEngine(
	eval *evaluator.Evaluator,
	sizer *stake.Sizer,
	emit *emitter.Emitter,
	streamConsumer *consumer.StreamConsumer,
	sink RecommendationSink,
	publisher RecommendationPublisher,
	broadcaster Broadcaster,
	config contracts.ModelConfig,
	defaultBankroll float64,
	log zerolog.Logger,
) *Engine {
	return &Engine{
		evaluator:       eval,
		sizer:           sizer,
		emitter:         emit,
		consumer:        streamConsumer,
		sink:            sink,
		publisher:       publisher,
		broadcaster:     broadcaster,
		config:          config,
		defaultBankroll: defaultBankroll,
		log:             log.With().Str("component", "engine").Logger(),
	}
}

// EvaluateGame runs the full pipeline for one game.
func (e *Engine) EvaluateGame(req models.EvaluationRequest) (models.EvaluationResult, error) {
	bankroll := req.Bankroll
	if bankroll == 0 {
		bankroll = e.defaultBankroll
	}

	eval, err := e.evaluator.Evaluate(req.Game, req.Market, req.HomeContext, req.AwayContext, req.Forecast, req.Injuries)
	if err != nil {
		return models.EvaluationResult{}, err
	}

	fraction := e.sizer.Fraction(eval.EdgePercent, e.sizingPrice(eval, req.Market), eval.QualifiesAsPlay, bankroll)

	rec, err := e.emitter.Emit(eval, req.Market, fraction, bankroll)
	if err != nil {
		return models.EvaluationResult{}, err
	}

	return models.EvaluationResult{
		Evaluation:     eval,
		Recommendation: rec,
	}, nil
}

// EvaluateBatch evaluates many games with per-game failure isolation: one
// bad game never aborts the run.
func (e *Engine) EvaluateBatch(ctx context.Context, reqs []models.EvaluationRequest) []models.BatchItem {
	items := make([]models.BatchItem, 0, len(reqs))

	for _, req := range reqs {
		item := models.BatchItem{GameID: req.Game.GameID}
		startTime := time.Now()

		result, err := e.EvaluateGame(req)
		if err != nil {
			e.incrementErrorCount()
			e.log.Warn().Str("game_id", req.Game.GameID).Err(err).Msg("evaluation failed")
			item.Error = err.Error()
			items = append(items, item)
			continue
		}

		if err := e.deliver(ctx, result.Recommendation); err != nil {
			e.log.Warn().Str("game_id", req.Game.GameID).Err(err).Msg("delivery failed")
		}

		e.recordEvaluation(result.Evaluation.QualifiesAsPlay, time.Since(startTime).Milliseconds())
		item.Result = &result
		items = append(items, item)
	}

	return items
}

// Start consumes evaluation requests from the sport's stream until the
// context is cancelled.
func (e *Engine) Start(ctx context.Context, sportKey string) error {
	if e.consumer == nil {
		return fmt.Errorf("engine has no stream consumer configured")
	}

	streamKey := fmt.Sprintf("markets.normalized.%s", sportKey)
	e.log.Info().Str("stream", streamKey).Msg("starting evaluation engine")

	messageCh, errorCh := e.consumer.ConsumeStream(ctx, streamKey)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-errorCh:
			if err != nil {
				e.log.Error().Err(err).Msg("stream error")
			}

		case msg, ok := <-messageCh:
			if !ok {
				return nil
			}

			if err := e.processMessage(ctx, msg); err != nil {
				e.incrementErrorCount()
				e.log.Warn().Str("message_id", msg.ID).Err(err).Msg("error processing message")
			}

			if err := e.consumer.AckMessage(ctx, msg.StreamKey, msg.ID); err != nil {
				e.log.Warn().Str("message_id", msg.ID).Err(err).Msg("error acknowledging message")
			}
		}
	}
}

// processMessage evaluates one streamed game and delivers the result.
func (e *Engine) processMessage(ctx context.Context, msg consumer.Message) error {
	startTime := time.Now()

	result, err := e.EvaluateGame(msg.Request)
	if err != nil {
		return err
	}

	if err := e.deliver(ctx, result.Recommendation); err != nil {
		return err
	}

	latency := time.Since(startTime).Milliseconds()
	e.recordEvaluation(result.Evaluation.QualifiesAsPlay, latency)

	e.log.Info().
		Str("game_id", result.Evaluation.GameID).
		Float64("predicted_spread", result.Evaluation.PredictedSpread).
		Float64("edge_pct", result.Evaluation.EdgePercent).
		Int("stars", result.Evaluation.StarRating).
		Bool("is_play", result.Recommendation.IsPlay).
		Int64("latency_ms", latency).
		Msg("game evaluated")

	return nil
}

// deliver writes, publishes and broadcasts an emitted recommendation through
// whichever outputs are configured.
func (e *Engine) deliver(ctx context.Context, rec models.BetRecommendation) error {
	if e.sink != nil {
		id, err := e.sink.WriteRecommendation(ctx, rec)
		if err != nil {
			return fmt.Errorf("failed to write recommendation: %w", err)
		}
		rec.ID = id
	}

	if e.publisher != nil {
		if err := e.publisher.Publish(ctx, rec); err != nil {
			return fmt.Errorf("failed to publish recommendation: %w", err)
		}
	}

	if e.broadcaster != nil {
		e.broadcaster.Broadcast(rec)
	}

	return nil
}

func (e *Engine) recordEvaluation(isPlay bool, latencyMs int64) {
	e.mu.Lock()
	e.evaluatedCount++
	if isPlay {
		e.playCount++
	}
	e.totalLatencyMs += latencyMs
	e.mu.Unlock()
}

func (e *Engine) incrementErrorCount() {
	e.mu.Lock()
	e.errorCount++
	e.mu.Unlock()
}

// GetMetrics returns evaluation counters.
func (e *Engine) GetMetrics() (evaluated, plays, errors int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.evaluatedCount, e.playCount, e.errorCount
}

// GetAvgLatencyMs returns the average end-to-end evaluation latency.
func (e *Engine) GetAvgLatencyMs() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.evaluatedCount == 0 {
		return 0
	}
	return float64(e.totalLatencyMs) / float64(e.evaluatedCount)
}

// sizingPrice picks the American price the sizer should size against: the
// price on the side the model recommends.
func (e *Engine) sizingPrice(eval models.MatchupEvaluation, market models.MarketSnapshot) int {
	if evaluator.RecommendedSide(eval) == models.SideHome {
		return market.SpreadHomePrice
	}
	return market.SpreadAwayPrice
}
