package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/openrent/sui-rental-gateway/internal/adapter"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/messaging"
)

const (
	subjectInvalidationPrefix = "rental.invalidate"
	subjectSnapshotPrefix     = "rental.snapshot"
)

// Config holds the NATS JetStream connection settings
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWait        time.Duration
}

// bus implements messaging.Publisher and messaging.Subscriber over one
// JetStream connection
type bus struct {
	nc   *nats.Conn
	js   jetstream.JetStream
	cfg  Config
	json adapter.JSON
}

// New connects to NATS and ensures the rental event stream exists
func New(ctx context.Context, cfg Config, json adapter.JSON) (messaging.Publisher, messaging.Subscriber, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{subjectInvalidationPrefix + ".>", subjectSnapshotPrefix + ".>"},
	})
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	b := &bus{nc: nc, js: js, cfg: cfg, json: json}
	return b, b, nil
}

func (b *bus) PublishInvalidation(ctx context.Context, event *messaging.InvalidationEvent) error {
	subject := fmt.Sprintf("%s.%s", subjectInvalidationPrefix, event.View)
	return b.publish(ctx, subject, event)
}

func (b *bus) PublishSnapshot(ctx context.Context, event *messaging.SnapshotEvent) error {
	subject := fmt.Sprintf("%s.%s", subjectSnapshotPrefix, event.View)
	return b.publish(ctx, subject, event)
}

func (b *bus) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := b.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := b.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	logger.DebugCtx(ctx, "published event", zap.String("subject", subject))
	return nil
}

func (b *bus) SubscribeInvalidations(ctx context.Context, handler messaging.InvalidationHandler) error {
	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       b.cfg.ConsumerName,
		FilterSubject: subjectInvalidationPrefix + ".>",
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.cfg.AckWait,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", b.cfg.ConsumerName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		var event messaging.InvalidationEvent
		if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
			logger.Error(err, zap.String("subject", msg.Subject()))
			_ = msg.Term()
			return
		}

		handler(ctx, &event)
		if err := msg.Ack(); err != nil {
			logger.Warn("failed to ack invalidation event", zap.Error(err), zap.String("event_id", event.ID))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to consume invalidations: %w", err)
	}

	go func() {
		<-ctx.Done()
		consumeCtx.Drain()
	}()

	return nil
}

func (b *bus) Close() {
	if b.nc != nil && !b.nc.IsClosed() {
		if err := b.nc.Drain(); err != nil {
			logger.Warn("failed to drain NATS connection", zap.Error(err))
			b.nc.Close()
		}
	}
}
