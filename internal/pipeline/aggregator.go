package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/metadata"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
)

// Service is the aggregation pipeline entry point: enumerate listings,
// resolve them, and classify per identity. Every call reads fresh chain
// state; nothing is cached between calls.
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Service=MockAggregator
type Service interface {
	// Marketplace resolves every active listing in the registry
	Marketplace(ctx context.Context) ([]*domain.ResolvedAsset, error)

	// View computes one of the three per-identity views
	View(ctx context.Context, role domain.ViewRole, identity string) ([]*domain.ResolvedAsset, error)
}

type service struct {
	enumerator Enumerator
	resolver   Resolver
	client     sui.Client
	assetType  string
	precedence []metadata.Source
}

// NewService creates the aggregation service. assetType is the fully
// qualified Move type of rentable assets, used for direct-ownership
// enumeration.
func NewService(enumerator Enumerator, resolver Resolver, client sui.Client, assetType string, precedence []metadata.Source) Service {
	if len(precedence) == 0 {
		precedence = metadata.DefaultPrecedence
	}
	return &service{
		enumerator: enumerator,
		resolver:   resolver,
		client:     client,
		assetType:  assetType,
		precedence: precedence,
	}
}

func (s *service) Marketplace(ctx context.Context) ([]*domain.ResolvedAsset, error) {
	listingIDs, err := s.enumerator.Enumerate(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolver.ResolveAll(ctx, listingIDs), nil
}

func (s *service) View(ctx context.Context, role domain.ViewRole, identity string) ([]*domain.ResolvedAsset, error) {
	if identity == "" {
		return nil, domain.ErrNoIdentity
	}
	if !domain.IsValidViewRole(role) {
		return nil, fmt.Errorf("unknown view role %q", role)
	}

	batch, err := s.Marketplace(ctx)
	if err != nil {
		return nil, err
	}

	var owned []*domain.ResolvedAsset
	if role == domain.ViewRoleOwned {
		owned, err = s.ownedAssets(ctx, identity)
		if err != nil {
			return nil, err
		}
	}

	views := Classify(batch, owned, identity)
	switch role {
	case domain.ViewRoleOwned:
		return views.Owned, nil
	case domain.ViewRoleListed:
		return views.Listed, nil
	default:
		return views.Rented, nil
	}
}

// ownedAssets enumerates assets held directly in the identity's wallet
func (s *service) ownedAssets(ctx context.Context, identity string) ([]*domain.ResolvedAsset, error) {
	objects, err := s.client.GetOwnedObjects(ctx, identity, s.assetType)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate owned assets of %s: %w", identity, err)
	}

	assets := make([]*domain.ResolvedAsset, 0, len(objects))
	for i := range objects {
		obj := &objects[i]
		if !obj.Exists() {
			continue
		}

		attrs := metadata.Reconcile(s.precedence, obj.DisplayData(), obj.Fields())
		asset := &domain.ResolvedAsset{
			AssetID:     obj.Data.ObjectID,
			Name:        attrs.Name,
			Description: attrs.Description,
			URL:         attrs.URL,
			Type:        obj.ObjectType(),
			Owner:       identity,
		}

		if hash, err := metadata.ContentHash(asset); err == nil {
			asset.ContentHash = hash
		} else {
			logger.WarnCtx(ctx, "failed to hash owned asset", zap.String("asset_id", asset.AssetID), zap.Error(err))
		}

		assets = append(assets, asset)
	}
	return assets, nil
}
