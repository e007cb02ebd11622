package worker

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/analytics"
	"storefront/internal/config"
	"storefront/internal/logger"

	"github.com/segmentio/kafka-go"
)

// Worker consumes storefront events and records them. It is the sink side
// of the analytics tracker.
type Worker struct {
	config *config.Config
	logger *logger.Logger
	reader *kafka.Reader
}

func New(cfg *config.Config, logger *logger.Logger) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.KafkaBrokers},
		GroupID:        "storefront-worker",
		Topic:          cfg.EventsTopic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config: cfg,
		logger: logger,
		reader: reader,
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for events...")

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		var event analytics.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		w.handle(event)
	}
}

func (w *Worker) handle(event analytics.Event) {
	switch event.Type {
	case "order.placed":
		w.logger.Info("Order placed: %s (total %v %v)", event.TargetID, event.Data["total"], event.Data["currency"])
	case "review.submitted":
		w.logger.Info("Review submitted for %s (rating %v, verified %v)", event.TargetID, event.Data["rating"], event.Data["verified"])
	default:
		w.logger.Debug("Unhandled event type: %s", event.Type)
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}
