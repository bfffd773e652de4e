package metadata_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/metadata"
)

func sampleAsset() *domain.ResolvedAsset {
	return &domain.ResolvedAsset{
		AssetID:     "0x2",
		ListingID:   "0x1",
		Name:        "Sample",
		Description: "A sample asset",
		URL:         "https://example.com/a.png",
		Type:        "0xabc::gallery::Artwork",
		Owner:       "0x3",
		Renter:      "0x4",
		PricePerDay: big.NewInt(100_000_000),
		RentedUntil: 1_700_000_000_000,
	}
}

func TestContentHashStable(t *testing.T) {
	a := sampleAsset()
	b := sampleAsset()

	// Time-derived fields do not participate
	a.IsRented = true
	a.RemainingLabel = "1d 2h remaining"
	b.IsRented = false
	b.RemainingLabel = "Expired"

	hashA, err := metadata.ContentHash(a)
	assert.NoError(t, err)
	hashB, err := metadata.ContentHash(b)
	assert.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.Len(t, hashA, 64)
}

func TestContentHashChangesWithContent(t *testing.T) {
	a := sampleAsset()
	hashA, err := metadata.ContentHash(a)
	assert.NoError(t, err)

	b := sampleAsset()
	b.Renter = domain.SUI_ZERO_ADDRESS
	hashB, err := metadata.ContentHash(b)
	assert.NoError(t, err)

	assert.NotEqual(t, hashA, hashB)

	c := sampleAsset()
	c.PricePerDay = big.NewInt(200_000_000)
	hashC, err := metadata.ContentHash(c)
	assert.NoError(t, err)

	assert.NotEqual(t, hashA, hashC)
}

func TestContentHashNilPrice(t *testing.T) {
	a := sampleAsset()
	a.PricePerDay = nil

	hash, err := metadata.ContentHash(a)
	assert.NoError(t, err)
	assert.Len(t, hash, 64)
}
