package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"loadboard/internal/adapters/out/kafka"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records messages written to it.
type fakeWriter struct {
	msgs []skafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishLoadStatusChanged(t *testing.T) {
	t.Run("should_write_message_keyed_by_load_id", func(t *testing.T) {
		fw := &fakeWriter{}
		publisher := kafka.NewPublisherWithWriter(fw, testLogger())

		loadID := kernel.NewUUID()
		shipperID := kernel.NewUUID()
		driverID := kernel.NewUUID()
		occurredAt := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

		err := publisher.PublishLoadStatusChanged(context.Background(), ports.LoadStatusChanged{
			LoadID:     loadID,
			Status:     load.Assigned,
			ShipperID:  shipperID,
			DriverID:   &driverID,
			OccurredAt: occurredAt,
		})
		require.NoError(t, err)
		require.Len(t, fw.msgs, 1)

		assert.Equal(t, loadID.String(), string(fw.msgs[0].Key))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &payload))
		assert.Equal(t, loadID.String(), payload["load_id"])
		assert.Equal(t, "assigned", payload["status"])
		assert.Equal(t, shipperID.String(), payload["shipper_id"])
		assert.Equal(t, driverID.String(), payload["driver_id"])
	})

	t.Run("should_omit_driver_when_absent", func(t *testing.T) {
		fw := &fakeWriter{}
		publisher := kafka.NewPublisherWithWriter(fw, testLogger())

		err := publisher.PublishLoadStatusChanged(context.Background(), ports.LoadStatusChanged{
			LoadID:     kernel.NewUUID(),
			Status:     load.Open,
			ShipperID:  kernel.NewUUID(),
			OccurredAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		require.Len(t, fw.msgs, 1)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &payload))
		assert.NotContains(t, payload, "driver_id")
	})

	t.Run("should_propagate_writer_errors", func(t *testing.T) {
		fw := &fakeWriter{err: errors.New("broker unreachable")}
		publisher := kafka.NewPublisherWithWriter(fw, testLogger())

		err := publisher.PublishLoadStatusChanged(context.Background(), ports.LoadStatusChanged{
			LoadID:     kernel.NewUUID(),
			Status:     load.Completed,
			ShipperID:  kernel.NewUUID(),
			OccurredAt: time.Now().UTC(),
		})
		require.Error(t, err)
	})
}

func TestPublishMarketplaceSnapshot(t *testing.T) {
	t.Run("should_write_snapshot_under_stats_key", func(t *testing.T) {
		fw := &fakeWriter{}
		publisher := kafka.NewPublisherWithWriter(fw, testLogger())

		err := publisher.PublishMarketplaceSnapshot(context.Background(), ports.MarketplaceSnapshot{
			OpenLoads:      3,
			CompletedLoads: 7,
			TotalDrivers:   5,
			CompletedValue: 140000,
			TakenAt:        time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Len(t, fw.msgs, 1)

		assert.Equal(t, "marketplace-stats", string(fw.msgs[0].Key))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &payload))
		assert.EqualValues(t, 3, payload["open_loads"])
		assert.EqualValues(t, 7, payload["completed_loads"])
		assert.EqualValues(t, 5, payload["total_drivers"])
		assert.EqualValues(t, 140000, payload["completed_value"])
	})

	t.Run("should_propagate_writer_errors", func(t *testing.T) {
		fw := &fakeWriter{err: errors.New("broker unreachable")}
		publisher := kafka.NewPublisherWithWriter(fw, testLogger())

		err := publisher.PublishMarketplaceSnapshot(context.Background(), ports.MarketplaceSnapshot{})
		require.Error(t, err)
	})
}

func TestNopPublisher(t *testing.T) {
	t.Run("should_discard_events", func(t *testing.T) {
		var publisher ports.EventPublisher = kafka.NopPublisher{}
		err := publisher.PublishLoadStatusChanged(context.Background(), ports.LoadStatusChanged{})
		assert.NoError(t, err)
	})

	t.Run("should_discard_snapshots", func(t *testing.T) {
		var publisher ports.SnapshotPublisher = kafka.NopPublisher{}
		err := publisher.PublishMarketplaceSnapshot(context.Background(), ports.MarketplaceSnapshot{})
		assert.NoError(t, err)
	})
}
