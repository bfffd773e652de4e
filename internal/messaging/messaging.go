package messaging

import (
	"context"
	"time"

	"github.com/openrent/sui-rental-gateway/internal/domain"
)

// InvalidationEvent announces that a successful transaction made one view of
// one identity stale
type InvalidationEvent struct {
	ID        string          `json:"id"`
	View      domain.ViewRole `json:"view"`
	Address   string          `json:"address"`
	TxDigest  string          `json:"tx_digest"`
	Timestamp time.Time       `json:"timestamp"`
}

// SnapshotEvent carries the content hashes of a freshly recomputed view
type SnapshotEvent struct {
	ID            string          `json:"id"`
	View          domain.ViewRole `json:"view"`
	Address       string          `json:"address"`
	AssetCount    int             `json:"asset_count"`
	ContentHashes []string        `json:"content_hashes"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Publisher publishes view lifecycle events
//
//go:generate mockgen -source=messaging.go -destination=../mocks/messaging.go -package=mocks -mock_names=Publisher=MockPublisher,Subscriber=MockSubscriber
type Publisher interface {
	PublishInvalidation(ctx context.Context, event *InvalidationEvent) error
	PublishSnapshot(ctx context.Context, event *SnapshotEvent) error
	Close()
}

// InvalidationHandler processes one invalidation event
type InvalidationHandler func(ctx context.Context, event *InvalidationEvent)

// Subscriber consumes invalidation events
type Subscriber interface {
	// SubscribeInvalidations starts consuming; the handler is invoked
	// sequentially per message until ctx is canceled
	SubscribeInvalidations(ctx context.Context, handler InvalidationHandler) error
	Close()
}
