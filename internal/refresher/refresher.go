package refresher

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/openrent/sui-rental-gateway/internal/adapter"
	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/messaging"
	"github.com/openrent/sui-rental-gateway/internal/pipeline"
)

// Refresher recomputes per-identity views when invalidation events arrive and
// publishes the fresh snapshots
type Refresher interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// viewKey identifies one (view, address) recomputation target
type viewKey struct {
	view    domain.ViewRole
	address string
}

type refresher struct {
	aggregator pipeline.Service
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	clock      adapter.Clock

	// generations guards against out-of-order completion: each (view, address)
	// recomputation records the generation it started under, and only the
	// latest-started one may publish its snapshot
	mu          sync.Mutex
	generations map[viewKey]uint64

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// New creates a view refresher
func New(aggregator pipeline.Service, subscriber messaging.Subscriber, publisher messaging.Publisher, clock adapter.Clock) Refresher {
	return &refresher{
		aggregator:  aggregator,
		subscriber:  subscriber,
		publisher:   publisher,
		clock:       clock,
		generations: make(map[viewKey]uint64),
		stopChan:    make(chan struct{}),
		stoppedCh:   make(chan struct{}),
	}
}

// Start subscribes to invalidation events and blocks until Stop is called or
// the context is canceled
func (r *refresher) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("refresher already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting view refresher")

	if err := r.subscriber.SubscribeInvalidations(ctx, r.handleInvalidation); err != nil {
		return fmt.Errorf("failed to subscribe to invalidations: %w", err)
	}

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "View refresher stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-r.stopChan:
		logger.InfoCtx(ctx, "View refresher stop requested")
	}
	return nil
}

// Stop gracefully stops the refresher with timeout support
func (r *refresher) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping view refresher")
	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "View refresher stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "View refresher stop interrupted by context timeout")
		return ctx.Err()
	}
}

// handleInvalidation recomputes the invalidated view and publishes a snapshot.
// A newer invalidation for the same (view, address) arriving mid-flight wins:
// the slower recomputation discards its result instead of publishing stale data.
func (r *refresher) handleInvalidation(ctx context.Context, event *messaging.InvalidationEvent) {
	logger.InfoCtx(ctx, "Invalidation received",
		zap.String("event_id", event.ID),
		zap.String("view", string(event.View)),
		zap.String("address", event.Address),
		zap.String("tx_digest", event.TxDigest),
	)

	if !domain.IsValidViewRole(event.View) || event.Address == "" {
		logger.WarnCtx(ctx, "Discarding malformed invalidation event", zap.String("event_id", event.ID))
		return
	}

	key := viewKey{view: event.View, address: domain.NormalizeAddress(event.Address)}
	generation := r.begin(key)

	assets, err := r.aggregator.View(ctx, event.View, event.Address)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to recompute view: %w", err),
			zap.String("view", string(event.View)),
			zap.String("address", event.Address),
		)
		return
	}

	if !r.isLatest(key, generation) {
		logger.DebugCtx(ctx, "Discarding superseded view snapshot",
			zap.String("view", string(event.View)),
			zap.String("address", event.Address),
			zap.Uint64("generation", generation),
		)
		return
	}

	hashes := make([]string, 0, len(assets))
	for _, asset := range assets {
		if asset.ContentHash != "" {
			hashes = append(hashes, asset.ContentHash)
		}
	}

	snapshot := &messaging.SnapshotEvent{
		ID:            ulid.MustNewDefault(r.clock.Now()).String(),
		View:          event.View,
		Address:       event.Address,
		AssetCount:    len(assets),
		ContentHashes: hashes,
		Timestamp:     r.clock.Now(),
	}
	if err := r.publisher.PublishSnapshot(ctx, snapshot); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish snapshot: %w", err),
			zap.String("view", string(event.View)),
			zap.String("address", event.Address),
		)
		return
	}

	logger.InfoCtx(ctx, "View snapshot published",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("view", string(event.View)),
		zap.Int("asset_count", len(assets)),
	)
}

// begin bumps the generation for a key and returns the new value
func (r *refresher) begin(key viewKey) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generations[key]++
	return r.generations[key]
}

// isLatest reports whether the given generation is still the most recent one
// started for the key
func (r *refresher) isLatest(key viewKey, generation uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generations[key] == generation
}
