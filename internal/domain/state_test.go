package domain_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openrent/sui-rental-gateway/internal/domain"
)

const (
	owner  = "0x000000000000000000000000000000000000000000000000000000000000a11c"
	renter = "0x000000000000000000000000000000000000000000000000000000000000b0b0"
	other  = "0x000000000000000000000000000000000000000000000000000000000000cafe"
)

func listedAsset(renterAddr string, rentedUntil int64) *domain.ResolvedAsset {
	return &domain.ResolvedAsset{
		AssetID:     "0x2",
		ListingID:   "0x1",
		Owner:       owner,
		Renter:      renterAddr,
		PricePerDay: big.NewInt(100_000_000),
		RentedUntil: rentedUntil,
	}
}

func TestStateOf(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	future := now.Add(24 * time.Hour).UnixMilli()
	past := now.Add(-24 * time.Hour).UnixMilli()

	tests := []struct {
		name     string
		asset    *domain.ResolvedAsset
		viewer   string
		expected domain.AssetState
	}{
		{
			name:     "owner of unlisted asset can list",
			asset:    &domain.ResolvedAsset{AssetID: "0x2", Owner: owner},
			viewer:   owner,
			expected: domain.StateListable,
		},
		{
			name:     "stranger sees unlisted asset as unavailable",
			asset:    &domain.ResolvedAsset{AssetID: "0x2", Owner: owner},
			viewer:   other,
			expected: domain.StateUnavailable,
		},
		{
			name:     "owner of idle listing can claim",
			asset:    listedAsset(domain.SUI_ZERO_ADDRESS, 0),
			viewer:   owner,
			expected: domain.StateListedIdle,
		},
		{
			name:     "owner of actively rented listing waits",
			asset:    listedAsset(renter, future),
			viewer:   owner,
			expected: domain.StateListedRented,
		},
		{
			name:     "owner of expired rental can claim",
			asset:    listedAsset(renter, past),
			viewer:   owner,
			expected: domain.StateListedIdle,
		},
		{
			name:     "stranger can rent an open listing",
			asset:    listedAsset(domain.SUI_ZERO_ADDRESS, 0),
			viewer:   other,
			expected: domain.StateMarketplaceAvailable,
		},
		{
			name:     "stranger cannot rent while a renter of record exists",
			asset:    listedAsset(renter, past),
			viewer:   other,
			expected: domain.StateUnavailable,
		},
		{
			name:     "renter with active period holds the asset",
			asset:    listedAsset(renter, future),
			viewer:   renter,
			expected: domain.StateRentedActive,
		},
		{
			name:     "renter past expiry can return",
			asset:    listedAsset(renter, past),
			viewer:   renter,
			expected: domain.StateRentedExpired,
		},
		{
			name:     "expiry exactly now is expired",
			asset:    listedAsset(renter, now.UnixMilli()),
			viewer:   renter,
			expected: domain.StateRentedExpired,
		},
		{
			name:     "no viewer sees open listing state",
			asset:    listedAsset(domain.SUI_ZERO_ADDRESS, 0),
			viewer:   "",
			expected: domain.StateMarketplaceAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.StateOf(tt.asset, tt.viewer, now))
		})
	}
}

func TestActionOf(t *testing.T) {
	tests := []struct {
		state    domain.AssetState
		expected domain.Action
	}{
		{domain.StateListable, domain.ActionList},
		{domain.StateListedIdle, domain.ActionClaim},
		{domain.StateListedRented, domain.ActionNone},
		{domain.StateMarketplaceAvailable, domain.ActionRent},
		{domain.StateRentedActive, domain.ActionNone},
		{domain.StateRentedExpired, domain.ActionReturn},
		{domain.StateUnavailable, domain.ActionNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ActionOf(tt.state, other))
		})
	}
}

func TestActionOfWithoutIdentity(t *testing.T) {
	// No action is ever offered without a connected identity
	for _, state := range []domain.AssetState{
		domain.StateListable,
		domain.StateListedIdle,
		domain.StateMarketplaceAvailable,
		domain.StateRentedExpired,
	} {
		assert.Equal(t, domain.ActionNone, domain.ActionOf(state, ""))
	}
}
