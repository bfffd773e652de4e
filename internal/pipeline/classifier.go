package pipeline

import (
	"github.com/openrent/sui-rental-gateway/internal/domain"
)

// Views is the per-identity partition of resolved assets. The three views
// are disjoint but not exhaustive: listings belonging to other identities
// appear in none of them.
type Views struct {
	Owned  []*domain.ResolvedAsset
	Listed []*domain.ResolvedAsset
	Rented []*domain.ResolvedAsset
}

// Classify partitions a resolved listing batch plus the identity's directly
// owned assets into the three views.
//
// Membership rules:
//   - Listed: listing owner is the identity.
//   - Rented: the identity is the renter of record, independent of expiry —
//     an expired rental stays here until returned or reclaimed; expiry only
//     changes the offered action.
//   - Owned: directly held assets not wrapped in any listing. When the same
//     asset id shows up both directly owned and listed, the listing wins.
func Classify(batch []*domain.ResolvedAsset, owned []*domain.ResolvedAsset, identity string) Views {
	var views Views
	if identity == "" {
		return views
	}

	listedAssetIDs := make(map[string]bool, len(batch))
	for _, asset := range batch {
		if asset.AssetID != "" {
			listedAssetIDs[domain.NormalizeAddress(asset.AssetID)] = true
		}

		switch {
		case asset.HasRenter() && domain.SameAddress(asset.Renter, identity):
			rented := *asset
			rented.ViewRole = domain.ViewRoleRented
			views.Rented = append(views.Rented, &rented)
		case domain.SameAddress(asset.Owner, identity):
			listed := *asset
			listed.ViewRole = domain.ViewRoleListed
			views.Listed = append(views.Listed, &listed)
		}
	}

	for _, asset := range owned {
		if asset.AssetID != "" && listedAssetIDs[domain.NormalizeAddress(asset.AssetID)] {
			continue
		}
		direct := *asset
		direct.ViewRole = domain.ViewRoleOwned
		views.Owned = append(views.Owned, &direct)
	}

	return views
}
