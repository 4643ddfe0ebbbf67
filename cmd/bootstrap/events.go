package bootstrap

import (
	"context"
	"log/slog"

	"marketplace-api/internal/infra/events"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns a Kafka publisher when brokers are configured and
// a no-op otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafka brokers not configured, booking events are disabled")
		return events.NopPublisher{}
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka))
	logger.Info("Publishing booking events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
