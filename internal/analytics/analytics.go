package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"storefront/internal/logger"
)

// Event is a storefront activity record published for downstream consumers.
type Event struct {
	Type      string                 `json:"type"`
	TargetID  string                 `json:"target_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Tracker publishes events. Implementations are best-effort: a failed
// publish never propagates to the caller.
type Tracker interface {
	Track(event Event)
	Flush() error
}

// Nop is the default tracker when no broker is configured.
type Nop struct{}

func (Nop) Track(Event) {}

func (Nop) Flush() error { return nil }

// Kafka publishes events as JSON messages on a single topic.
type Kafka struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewKafka(brokers, topic string, log *logger.Logger) *Kafka {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Kafka{
		writer: writer,
		logger: log,
	}
}

func (k *Kafka) Track(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		k.logger.Error("Failed to encode event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type),
		Value: value,
	}); err != nil {
		k.logger.Error("Failed to publish event: %v", err)
	}
}

func (k *Kafka) Flush() error {
	return k.writer.Close()
}
