package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Bet-Zero/BetTracker-sub001/internal/contract"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
	"github.com/redis/go-redis/v9"
)

// StreamPublisher publishes rejected bets to Redis Streams
type StreamPublisher struct {
	redis          *redis.Client
	rejectedStream string
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(redisClient *redis.Client, rejectedStream string) *StreamPublisher {
	return &StreamPublisher{
		redis:          redisClient,
		rejectedStream: rejectedStream,
	}
}

// RejectedBet pairs the original bet with the report that rejected it, so
// the scraper team can replay the exact failing ticket
type RejectedBet struct {
	Bet    models.Bet      `json:"bet"`
	Report contract.Report `json:"report"`
	Source string          `json:"source"`
}

// PublishRejected publishes a rejected bet with its validation report
func (p *StreamPublisher) PublishRejected(ctx context.Context, bet models.Bet, report contract.Report, source string) error {
	data, err := json.Marshal(RejectedBet{Bet: bet, Report: report, Source: source})
	if err != nil {
		return fmt.Errorf("error marshaling rejected bet: %w", err)
	}

	_, err = p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.rejectedStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if err != nil {
		return fmt.Errorf("error publishing to stream %s: %w", p.rejectedStream, err)
	}

	return nil
}
