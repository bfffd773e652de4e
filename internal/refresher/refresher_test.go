package refresher_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/messaging"
	"github.com/openrent/sui-rental-gateway/internal/mocks"
	"github.com/openrent/sui-rental-gateway/internal/refresher"
)

const testAddress = "0x000000000000000000000000000000000000000000000000000000000000a11c"

var testNow = time.UnixMilli(1_700_000_000_000)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type refresherMocks struct {
	ctrl       *gomock.Controller
	aggregator *mocks.MockAggregator
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
}

func newRefresherMocks(t *testing.T) refresherMocks {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()
	return refresherMocks{
		ctrl:       ctrl,
		aggregator: mocks.NewMockAggregator(ctrl),
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      clock,
	}
}

// startRefresher runs Start in the background and hands back the captured
// invalidation handler once subscribed
func startRefresher(t *testing.T, m refresherMocks) (refresher.Refresher, messaging.InvalidationHandler, func()) {
	handlerCh := make(chan messaging.InvalidationHandler, 1)
	m.subscriber.EXPECT().
		SubscribeInvalidations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, h messaging.InvalidationHandler) error {
			handlerCh <- h
			return nil
		})

	r := refresher.New(m.aggregator, m.subscriber, m.publisher, m.clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = r.Start(ctx)
		close(done)
	}()

	handler := <-handlerCh
	stop := func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
		defer stopCancel()
		assert.NoError(t, r.Stop(stopCtx))
		<-done
		cancel()
	}
	return r, handler, stop
}

func invalidation(view domain.ViewRole) *messaging.InvalidationEvent {
	return &messaging.InvalidationEvent{
		ID:        "01HQ0000000000000000000000",
		View:      view,
		Address:   testAddress,
		TxDigest:  "Dig1",
		Timestamp: testNow,
	}
}

func TestRefresherPublishesSnapshot(t *testing.T) {
	m := newRefresherMocks(t)
	defer m.ctrl.Finish()

	assets := []*domain.ResolvedAsset{
		{AssetID: "0xa1", ContentHash: "hash1"},
		{AssetID: "0xa2", ContentHash: "hash2"},
	}
	m.aggregator.EXPECT().
		View(gomock.Any(), domain.ViewRoleListed, testAddress).
		Return(assets, nil)

	var snapshot *messaging.SnapshotEvent
	m.publisher.EXPECT().
		PublishSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *messaging.SnapshotEvent) error {
			snapshot = event
			return nil
		})

	_, handler, stop := startRefresher(t, m)
	handler(context.Background(), invalidation(domain.ViewRoleListed))
	stop()

	assert.NotNil(t, snapshot)
	assert.Equal(t, domain.ViewRoleListed, snapshot.View)
	assert.Equal(t, testAddress, snapshot.Address)
	assert.Equal(t, 2, snapshot.AssetCount)
	assert.Equal(t, []string{"hash1", "hash2"}, snapshot.ContentHashes)
	assert.NotEmpty(t, snapshot.ID)
}

func TestRefresherDiscardsMalformedEvent(t *testing.T) {
	m := newRefresherMocks(t)
	defer m.ctrl.Finish()

	// No aggregator or publisher expectations: the event never gets that far
	_, handler, stop := startRefresher(t, m)
	handler(context.Background(), &messaging.InvalidationEvent{View: "borrowed", Address: testAddress})
	handler(context.Background(), &messaging.InvalidationEvent{View: domain.ViewRoleOwned, Address: ""})
	stop()
}

func TestRefresherSkipsSnapshotOnViewError(t *testing.T) {
	m := newRefresherMocks(t)
	defer m.ctrl.Finish()

	m.aggregator.EXPECT().
		View(gomock.Any(), domain.ViewRoleOwned, testAddress).
		Return(nil, errors.New("rpc down"))

	_, handler, stop := startRefresher(t, m)
	handler(context.Background(), invalidation(domain.ViewRoleOwned))
	stop()
}

func TestRefresherDiscardsSupersededComputation(t *testing.T) {
	m := newRefresherMocks(t)
	defer m.ctrl.Finish()

	_, handler, stop := startRefresher(t, m)

	newerAssets := []*domain.ResolvedAsset{{AssetID: "0xa2", ContentHash: "hash2"}}

	// The first recomputation is overtaken by a second invalidation for the
	// same view and address before it finishes; only the newer result may
	// publish.
	first := m.aggregator.EXPECT().
		View(gomock.Any(), domain.ViewRoleRented, testAddress).
		DoAndReturn(func(ctx context.Context, view domain.ViewRole, address string) ([]*domain.ResolvedAsset, error) {
			handler(ctx, invalidation(domain.ViewRoleRented))
			return []*domain.ResolvedAsset{{AssetID: "0xa1", ContentHash: "hash1"}}, nil
		})
	m.aggregator.EXPECT().
		View(gomock.Any(), domain.ViewRoleRented, testAddress).
		Return(newerAssets, nil).
		After(first)

	var snapshots []*messaging.SnapshotEvent
	m.publisher.EXPECT().
		PublishSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *messaging.SnapshotEvent) error {
			snapshots = append(snapshots, event)
			return nil
		})

	handler(context.Background(), invalidation(domain.ViewRoleRented))
	stop()

	assert.Len(t, snapshots, 1)
	assert.Equal(t, []string{"hash2"}, snapshots[0].ContentHashes)
}

func TestRefresherStartTwice(t *testing.T) {
	m := newRefresherMocks(t)
	defer m.ctrl.Finish()

	r, _, stop := startRefresher(t, m)

	err := r.Start(context.Background())
	assert.ErrorContains(t, err, "already running")

	stop()
}
