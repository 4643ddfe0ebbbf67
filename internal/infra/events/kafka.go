package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

var ErrPublisherClosed = errs.New("event publisher is closed")

const headerEventType = "event-type"

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes booking events keyed by business id, so events of one
// business stay ordered within a partition.
type KafkaPublisher struct {
	writer MessageWriter
	mu     sync.RWMutex
	closed bool
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			slog.Error("kafka writer error", slog.Any("detail", args), slog.String("msg", msg))
		}),
	}
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev shared.BookingEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}
	msg := kafka.Message{
		Key:   []byte(ev.BusinessID.String()),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(ev.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "write %s event", ev.Type)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, ev shared.BookingEvent) error {
	slog.Debug("booking event dropped, publishing disabled",
		slog.String("type", string(ev.Type)),
		slog.String("booking_id", ev.BookingID.String()))
	return nil
}
