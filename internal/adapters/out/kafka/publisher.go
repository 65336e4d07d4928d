// Package kafka publishes load lifecycle events to a Kafka topic.
//
// The publisher is a thin wrapper over a kafka-go writer. The Writer
// interface covers the subset of the writer actually used, so tests can
// inject a fake and handlers never touch kafka-go types directly.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"loadboard/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

// Writer defines the subset of the segmentio kafka.Writer used by the publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// loadStatusChangedMessage is the wire shape of a lifecycle event.
type loadStatusChangedMessage struct {
	LoadID     string    `json:"load_id"`
	Status     string    `json:"status"`
	ShipperID  string    `json:"shipper_id"`
	DriverID   *string   `json:"driver_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements ports.EventPublisher on top of a Kafka topic.
// Messages are keyed by load ID so all events of one load land on the same
// partition, preserving their order for consumers.
type Publisher struct {
	writer Writer
	logger *slog.Logger
}

// NewPublisher creates a Publisher writing to the given broker and topic.
func NewPublisher(brokerURL, topic string, logger *slog.Logger) *Publisher {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return NewPublisherWithWriter(w, logger)
}

// NewPublisherWithWriter allows injecting a writer, primarily for tests.
func NewPublisherWithWriter(w Writer, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: w,
		logger: logger.With(slog.String("component", "kafka-publisher")),
	}
}

// PublishLoadStatusChanged serializes the event to JSON and writes it keyed
// by load ID.
func (p *Publisher) PublishLoadStatusChanged(ctx context.Context, event ports.LoadStatusChanged) error {
	msg := loadStatusChangedMessage{
		LoadID:     event.LoadID.String(),
		Status:     event.Status.String(),
		ShipperID:  event.ShipperID.String(),
		OccurredAt: event.OccurredAt,
	}
	if event.DriverID != nil {
		driverID := event.DriverID.String()
		msg.DriverID = &driverID
	}

	value, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("failed to marshal event", slog.Any("error", err))
		return err
	}

	if err := p.writer.WriteMessages(ctx, skafka.Message{
		Key:   []byte(msg.LoadID),
		Value: value,
	}); err != nil {
		p.logger.Error("kafka write failed",
			slog.String("load_id", msg.LoadID),
			slog.Any("error", err))
		return err
	}

	p.logger.Debug("event published",
		slog.String("load_id", msg.LoadID),
		slog.String("status", msg.Status))
	return nil
}

// marketplaceSnapshotMessage is the wire shape of a periodic stats snapshot.
type marketplaceSnapshotMessage struct {
	OpenLoads       int64     `json:"open_loads"`
	AssignedLoads   int64     `json:"assigned_loads"`
	InProgressLoads int64     `json:"in_progress_loads"`
	CompletedLoads  int64     `json:"completed_loads"`
	TotalShippers   int64     `json:"total_shippers"`
	TotalDrivers    int64     `json:"total_drivers"`
	CompletedValue  int64     `json:"completed_value"`
	TakenAt         time.Time `json:"taken_at"`
}

// snapshotMessageKey keeps all snapshots on one partition so consumers see
// them in order.
const snapshotMessageKey = "marketplace-stats"

// PublishMarketplaceSnapshot serializes the snapshot to JSON and writes it
// under the fixed stats key.
func (p *Publisher) PublishMarketplaceSnapshot(ctx context.Context, snapshot ports.MarketplaceSnapshot) error {
	value, err := json.Marshal(marketplaceSnapshotMessage{
		OpenLoads:       snapshot.OpenLoads,
		AssignedLoads:   snapshot.AssignedLoads,
		InProgressLoads: snapshot.InProgressLoads,
		CompletedLoads:  snapshot.CompletedLoads,
		TotalShippers:   snapshot.TotalShippers,
		TotalDrivers:    snapshot.TotalDrivers,
		CompletedValue:  snapshot.CompletedValue,
		TakenAt:         snapshot.TakenAt,
	})
	if err != nil {
		p.logger.Error("failed to marshal snapshot", slog.Any("error", err))
		return err
	}

	if err := p.writer.WriteMessages(ctx, skafka.Message{
		Key:   []byte(snapshotMessageKey),
		Value: value,
	}); err != nil {
		p.logger.Error("kafka write failed",
			slog.String("key", snapshotMessageKey),
			slog.Any("error", err))
		return err
	}

	p.logger.Debug("snapshot published",
		slog.Int64("open_loads", snapshot.OpenLoads),
		slog.Int64("completed_loads", snapshot.CompletedLoads))
	return nil
}

// Close shuts down the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards events. Used when no broker is configured.
type NopPublisher struct{}

// PublishLoadStatusChanged ignores the event.
func (NopPublisher) PublishLoadStatusChanged(context.Context, ports.LoadStatusChanged) error {
	return nil
}

// PublishMarketplaceSnapshot ignores the snapshot.
func (NopPublisher) PublishMarketplaceSnapshot(context.Context, ports.MarketplaceSnapshot) error {
	return nil
}
