package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/openrent/sui-rental-gateway/internal/domain"
)

// contentFields is the identity-independent projection of a resolved asset
// that the content hash covers. Time-derived fields are excluded so the hash
// is stable across reads of an unchanged listing.
type contentFields struct {
	AssetID     string `json:"asset_id"`
	ListingID   string `json:"listing_id"`
	Owner       string `json:"owner"`
	Renter      string `json:"renter"`
	PricePerDay string `json:"price_per_day"`
	RentedUntil int64  `json:"rented_until"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
}

// ContentHash returns the hex sha256 of the JCS-canonicalized content of a
// resolved asset
func ContentHash(a *domain.ResolvedAsset) (string, error) {
	fields := contentFields{
		AssetID:     a.AssetID,
		ListingID:   a.ListingID,
		Owner:       a.Owner,
		Renter:      a.Renter,
		RentedUntil: a.RentedUntil,
		Name:        a.Name,
		Description: a.Description,
		URL:         a.URL,
		Type:        a.Type,
	}
	if a.PricePerDay != nil {
		fields.PricePerDay = a.PricePerDay.String()
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal asset content: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize asset content: %w", err)
	}

	hash := sha256.Sum256(canonical)
	return hex.EncodeToString(hash[:]), nil
}
