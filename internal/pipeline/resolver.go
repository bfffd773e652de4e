package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/openrent/sui-rental-gateway/internal/adapter"
	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/metadata"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
)

// KeyStrategy selects how the nested asset child record is looked up under a
// listing. The deployed contract uses exactly one scheme; the strategy is
// fixed at construction, never guessed per call.
type KeyStrategy string

const (
	// KeyStrategyNamed looks the asset up under the vector<u8> "asset" key
	KeyStrategyNamed KeyStrategy = "named"
	// KeyStrategyAssetID looks the asset up under an address key equal to the
	// listing's asset_id field
	KeyStrategyAssetID KeyStrategy = "asset_id"
)

// ParseKeyStrategy validates a configured key strategy
func ParseKeyStrategy(s string) (KeyStrategy, error) {
	switch KeyStrategy(s) {
	case "", KeyStrategyNamed:
		return KeyStrategyNamed, nil
	case KeyStrategyAssetID:
		return KeyStrategyAssetID, nil
	default:
		return "", fmt.Errorf("unknown asset key strategy %q", s)
	}
}

// ResolverConfig holds the resolver's contract-dependent knobs
type ResolverConfig struct {
	KeyStrategy KeyStrategy
	Precedence  []metadata.Source
	PoolSize    int
}

// Resolver turns listing object ids into resolved assets
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=Resolver=MockResolver
type Resolver interface {
	// ResolveListing resolves one listing id. Returns (nil, nil) when the
	// record is absent or malformed: a skip, not a batch failure.
	ResolveListing(ctx context.Context, listingID string) (*domain.ResolvedAsset, error)

	// ResolveAll fans the batch out over a worker pool. Individual failures
	// are logged and omitted; the batch itself always succeeds.
	ResolveAll(ctx context.Context, listingIDs []string) []*domain.ResolvedAsset
}

type resolver struct {
	client sui.Client
	clock  adapter.Clock
	cfg    ResolverConfig
}

// NewResolver creates a listing resolver
func NewResolver(client sui.Client, clock adapter.Clock, cfg ResolverConfig) Resolver {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 8
	}
	if len(cfg.Precedence) == 0 {
		cfg.Precedence = metadata.DefaultPrecedence
	}
	return &resolver{client: client, clock: clock, cfg: cfg}
}

func (r *resolver) ResolveAll(ctx context.Context, listingIDs []string) []*domain.ResolvedAsset {
	results := make([]*domain.ResolvedAsset, len(listingIDs))

	pool := pond.NewPool(r.cfg.PoolSize, pond.WithContext(ctx))
	for i, id := range listingIDs {
		pool.Submit(func() {
			asset, err := r.ResolveListing(ctx, id)
			if err != nil {
				logger.WarnCtx(ctx, "skipping unresolvable listing",
					zap.String("listing_id", id),
					zap.Error(err))
				return
			}
			results[i] = asset
		})
	}
	pool.StopAndWait()

	resolved := make([]*domain.ResolvedAsset, 0, len(results))
	for _, asset := range results {
		if asset != nil {
			resolved = append(resolved, asset)
		}
	}
	return resolved
}

func (r *resolver) ResolveListing(ctx context.Context, listingID string) (*domain.ResolvedAsset, error) {
	listingObj, err := r.client.GetObject(ctx, listingID, sui.ObjectOptions{ShowContent: true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", listingID, err)
	}

	listing, err := parseListing(listingID, listingObj)
	if err != nil {
		logger.DebugCtx(ctx, "listing record absent or malformed",
			zap.String("listing_id", listingID),
			zap.Error(err))
		return nil, nil
	}

	assetObj, err := r.fetchAssetChild(ctx, listing)
	if err != nil {
		// The wrapped asset is display material; a listing without it still
		// resolves with fallback attributes.
		logger.WarnCtx(ctx, "failed to fetch nested asset record",
			zap.String("listing_id", listingID),
			zap.Error(err))
	}

	display := r.fetchDisplay(ctx, assetObj)

	attrs := metadata.Reconcile(r.cfg.Precedence, display, assetObj.Fields())

	asset := &domain.ResolvedAsset{
		AssetID:     listing.AssetID,
		ListingID:   listing.ListingID,
		Name:        attrs.Name,
		Description: attrs.Description,
		URL:         attrs.URL,
		Type:        assetObj.ObjectType(),
		Owner:       listing.Owner,
		Renter:      listing.Renter,
		PricePerDay: listing.PricePerDay,
		RentedUntil: listing.RentedUntil,
	}

	now := r.clock.Now()
	asset.IsRented = listing.Rented(now)
	asset.RemainingLabel = domain.RemainingLabel(listing.RentedUntil, listing.HasRenter(), now)

	if hash, err := metadata.ContentHash(asset); err == nil {
		asset.ContentHash = hash
	} else {
		logger.WarnCtx(ctx, "failed to hash resolved asset", zap.String("listing_id", listingID), zap.Error(err))
	}

	return asset, nil
}

// fetchAssetChild looks up the wrapped asset under the listing using the
// configured key scheme
func (r *resolver) fetchAssetChild(ctx context.Context, listing *domain.Listing) (*sui.ObjectResponse, error) {
	var key sui.DynamicFieldKey
	switch r.cfg.KeyStrategy {
	case KeyStrategyAssetID:
		key = sui.AssetIDKey(listing.AssetID)
	default:
		key = sui.NamedAssetKey()
	}

	return r.client.GetDynamicFieldObject(ctx, listing.ListingID, key)
}

// fetchDisplay fetches the platform Display metadata for the wrapped asset
// object; absence is not an error
func (r *resolver) fetchDisplay(ctx context.Context, assetObj *sui.ObjectResponse) map[string]string {
	if !assetObj.Exists() {
		return nil
	}

	full, err := r.client.GetObject(ctx, assetObj.Data.ObjectID, sui.ObjectOptions{ShowDisplay: true})
	if err != nil {
		logger.DebugCtx(ctx, "display metadata unavailable",
			zap.String("object_id", assetObj.Data.ObjectID),
			zap.Error(err))
		return nil
	}
	return full.DisplayData()
}

// parseListing extracts the listing's Move fields
func parseListing(listingID string, obj *sui.ObjectResponse) (*domain.Listing, error) {
	fields := obj.Fields()
	if fields == nil {
		return nil, domain.ErrMalformedObject
	}

	assetID, _ := fields["asset_id"].(string)
	owner, _ := fields["owner"].(string)
	if assetID == "" || owner == "" {
		return nil, fmt.Errorf("%w: missing asset_id or owner", domain.ErrMalformedObject)
	}

	price, err := parseUintField(fields, "price_per_day")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedObject, err)
	}
	if price == nil {
		return nil, fmt.Errorf("%w: missing price_per_day", domain.ErrMalformedObject)
	}

	rentedUntil := int64(0)
	if until, err := parseUintField(fields, "rented_until"); err == nil && until != nil {
		rentedUntil = until.Int64()
	}

	renter, _ := fields["renter"].(string)

	return &domain.Listing{
		ListingID:   listingID,
		AssetID:     assetID,
		Owner:       owner,
		Renter:      renter,
		PricePerDay: price,
		RentedUntil: rentedUntil,
	}, nil
}

// parseUintField reads a u64 Move field, which the node serializes as a JSON
// string or number depending on magnitude
func parseUintField(fields map[string]interface{}, key string) (*big.Int, error) {
	switch v := fields[key].(type) {
	case nil:
		return nil, nil
	case string:
		value, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("field %s is not numeric: %q", key, v)
		}
		return value, nil
	case float64:
		return big.NewInt(int64(v)), nil
	case json.Number:
		value, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, fmt.Errorf("field %s is not numeric: %q", key, v.String())
		}
		return value, nil
	default:
		return nil, fmt.Errorf("field %s has unexpected type %T", key, v)
	}
}
