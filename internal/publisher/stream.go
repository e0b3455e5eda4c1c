package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/models"
)

// StreamPublisher publishes emitted recommendations to Redis Streams.
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		client: client,
	}
}

// PublishRecommendation publishes to the sport-specific stream
func (p *StreamPublisher) PublishRecommendation(ctx context.Context, rec models.BetRecommendation) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	streamKey := fmt.Sprintf("recommendations.emitted.%s", rec.SportKey)

	_, err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: streamKey,
		Values: map[string]interface{}{
			"recommendation": string(payload),
		},
	}).Result()

	if err != nil {
		return fmt.Errorf("failed to publish to stream %s: %w", streamKey, err)
	}

	return nil
}

// PublishToGlobalStream publishes to the all-sports recommendations stream
// for consumers that want everything
func (p *StreamPublisher) PublishToGlobalStream(ctx context.Context, rec models.BetRecommendation) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	_, err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: "recommendations.emitted",
		Values: map[string]interface{}{
			"recommendation": string(payload),
		},
	}).Result()

	if err != nil {
		return fmt.Errorf("failed to publish to global stream: %w", err)
	}

	return nil
}

// Publish sends a recommendation to both the sport-specific and global streams
func (p *StreamPublisher) Publish(ctx context.Context, rec models.BetRecommendation) error {
	if err := p.PublishRecommendation(ctx, rec); err != nil {
		return err
	}

	return p.PublishToGlobalStream(ctx, rec)
}
