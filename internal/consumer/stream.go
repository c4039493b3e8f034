package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/internal/config"
	"github.com/Bet-Zero/BetTracker-sub001/internal/processor"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Batch size for reading messages
	batchSize = 100

	// Block duration when waiting for new messages
	blockDuration = 1 * time.Second
)

// StreamConsumer consumes raw scraped bets from per-book Redis Streams
type StreamConsumer struct {
	redis        *redis.Client
	processor    *processor.Processor
	streamConfig config.StreamConfig
}

// NewStreamConsumer creates a new stream consumer
func NewStreamConsumer(redisClient *redis.Client, p *processor.Processor, streamConfig config.StreamConfig) *StreamConsumer {
	return &StreamConsumer{
		redis:        redisClient,
		processor:    p,
		streamConfig: streamConfig,
	}
}

// Start begins consuming from Redis Streams
func (sc *StreamConsumer) Start(ctx context.Context) error {
	fmt.Println("✓ Stream consumer started")

	streams := sc.streamConfig.RawBetStreams

	fmt.Printf("  📡 Configured streams: %v\n", streams)

	// Create consumer groups for all streams (ignore errors if they already exist)
	for _, stream := range streams {
		sc.createConsumerGroup(ctx, stream)
	}

	// Start consuming from all streams concurrently
	for _, stream := range streams {
		streamName := stream // Capture for goroutine
		go sc.consumeStream(ctx, streamName)
	}

	// Wait for context cancellation
	<-ctx.Done()
	return nil
}

// createConsumerGroup creates a consumer group for a stream
func (sc *StreamConsumer) createConsumerGroup(ctx context.Context, stream string) {
	err := sc.redis.XGroupCreateMkStream(ctx, stream, sc.streamConfig.ConsumerGroup, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		fmt.Printf("⚠️  Failed to create consumer group for %s: %v\n", stream, err)
	}
}

// consumeStream consumes messages from a specific stream
func (sc *StreamConsumer) consumeStream(ctx context.Context, stream string) {
	fmt.Printf("  📡 Consuming stream: %s\n", stream)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			// Read messages from stream
			streams, err := sc.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    sc.streamConfig.ConsumerGroup,
				Consumer: sc.streamConfig.ConsumerID,
				Streams:  []string{stream, ">"},
				Count:    batchSize,
				Block:    blockDuration,
			}).Result()

			if err != nil {
				if err == redis.Nil {
					// No new messages - continue
					continue
				}
				fmt.Printf("⚠️  Stream read error (%s): %v\n", stream, err)
				time.Sleep(1 * time.Second)
				continue
			}

			// Process messages
			for _, s := range streams {
				for _, message := range s.Messages {
					sc.processMessage(ctx, s.Stream, message)
				}
			}
		}
	}
}

// processMessage runs one raw bet through the import pipeline
func (sc *StreamConsumer) processMessage(ctx context.Context, stream string, msg redis.XMessage) {
	dataStr, ok := msg.Values["data"].(string)
	if !ok {
		fmt.Printf("⚠️  Invalid message format in %s: %v\n", stream, msg.Values)
		sc.ackMessage(ctx, stream, msg.ID)
		return
	}

	var bet models.Bet
	if err := json.Unmarshal([]byte(dataStr), &bet); err != nil {
		fmt.Printf("⚠️  Failed to parse bet from %s: %v\n", stream, err)
		sc.ackMessage(ctx, stream, msg.ID)
		return
	}

	// Stream name carries the book when the scraper left it blank
	if bet.Book == "" {
		bet.Book = bookFromStream(stream)
	}

	result, err := sc.processor.Process(ctx, bet, stream)
	if err != nil {
		// Storage failures leave the message unacked for redelivery
		fmt.Printf("⚠️  Failed to process bet %s from %s: %v\n", bet.BetID, stream, err)
		return
	}

	if result.Stored {
		fmt.Printf("📥 Imported bet: book=%s sport=%s bet_id=%s rows=%d\n",
			bet.Book, bet.Sport, bet.BetID, len(result.Rows))
	} else {
		fmt.Printf("⚠️  Rejected bet %s from %s: %v\n", bet.BetID, stream, result.Report.Errors)
	}

	sc.ackMessage(ctx, stream, msg.ID)
}

// ackMessage acknowledges a message in the stream
func (sc *StreamConsumer) ackMessage(ctx context.Context, stream string, messageID string) {
	err := sc.redis.XAck(ctx, stream, sc.streamConfig.ConsumerGroup, messageID).Err()
	if err != nil {
		fmt.Printf("⚠️  Failed to ack message %s in %s: %v\n", messageID, stream, err)
	}
}

// bookFromStream extracts the book key from a bets.raw.<book> stream name
func bookFromStream(stream string) string {
	parts := strings.Split(stream, ".")
	return parts[len(parts)-1]
}
