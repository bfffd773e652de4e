package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

// ViewRole identifies which per-identity view a resolved asset belongs to
type ViewRole string

const (
	ViewRoleOwned  ViewRole = "owned"
	ViewRoleListed ViewRole = "listed"
	ViewRoleRented ViewRole = "rented"
)

// IsValidViewRole checks if a view role is one of the three known views
func IsValidViewRole(role ViewRole) bool {
	return role == ViewRoleOwned || role == ViewRoleListed || role == ViewRoleRented
}

// Listing is the on-chain record pairing an asset with a rental price and
// the current renter/expiry state. Read-only; owned by the marketplace registry.
type Listing struct {
	ListingID   string   `json:"listing_id"`
	AssetID     string   `json:"asset_id"`
	Owner       string   `json:"owner"`
	Renter      string   `json:"renter"`
	PricePerDay *big.Int `json:"price_per_day"`
	RentedUntil int64    `json:"rented_until"` // unix milliseconds, 0 = never rented
}

// HasRenter reports whether a renter of record exists (sentinel-aware)
func (l *Listing) HasRenter() bool {
	return l.Renter != "" && !IsZeroAddress(l.Renter)
}

// Rented reports whether the listing is currently rented at the given instant.
// This is a time-relative predicate recomputed on every read: a renter of
// record whose period has elapsed does not count. rentedUntil == now counts
// as expired.
func (l *Listing) Rented(now time.Time) bool {
	return l.HasRenter() && l.RentedUntil > now.UnixMilli()
}

// AssetRecord is the on-chain record describing a rentable item's display
// attributes. Nested under a Listing or directly owned by an identity.
type AssetRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"` // fully-qualified Move type tag
}

// ResolvedAsset is the transient merge of a Listing (optional) and an
// AssetRecord with derived, time-relative fields. Never persisted.
type ResolvedAsset struct {
	AssetID     string   `json:"asset_id"`
	ListingID   string   `json:"listing_id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Type        string   `json:"type"`
	Owner       string   `json:"owner"`
	Renter      string   `json:"renter,omitempty"`
	PricePerDay *big.Int `json:"price_per_day,omitempty"`
	RentedUntil int64    `json:"rented_until,omitempty"`

	// Derived at resolution time
	IsRented       bool     `json:"is_rented"`
	RemainingLabel string   `json:"remaining_label,omitempty"`
	ContentHash    string   `json:"content_hash,omitempty"`
	ViewRole       ViewRole `json:"view_role,omitempty"`
}

// Listed reports whether the asset is wrapped in a marketplace listing
func (a *ResolvedAsset) Listed() bool {
	return a.ListingID != ""
}

// HasRenter reports whether a renter of record exists
func (a *ResolvedAsset) HasRenter() bool {
	return a.Renter != "" && !IsZeroAddress(a.Renter)
}

// RemainingLabel renders the human-readable rental countdown for a listing.
// Empty when there is no renter of record, "Expired" once the period elapsed.
func RemainingLabel(rentedUntil int64, hasRenter bool, now time.Time) string {
	if !hasRenter || rentedUntil == 0 {
		return ""
	}

	remaining := time.Duration(rentedUntil-now.UnixMilli()) * time.Millisecond
	if remaining <= 0 {
		return "Expired"
	}

	days := int(remaining.Hours()) / 24
	hours := int(remaining.Hours()) % 24
	return fmt.Sprintf("%dd %dh remaining", days, hours)
}

var objectIDPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

// IsValidObjectID checks if a string is a well-formed Sui object identifier
func IsValidObjectID(id string) bool {
	return objectIDPattern.MatchString(id)
}

// IsZeroAddress reports whether an address is the empty-renter sentinel
func IsZeroAddress(address string) bool {
	hex := strings.TrimPrefix(address, "0x")
	if hex == "" {
		return false
	}
	return strings.Trim(hex, "0") == ""
}

// NormalizeAddress lowercases and zero-pads a Sui address to 32 bytes
func NormalizeAddress(address string) string {
	hex := strings.ToLower(strings.TrimPrefix(address, "0x"))
	if len(hex) < 64 {
		hex = strings.Repeat("0", 64-len(hex)) + hex
	}
	return "0x" + hex
}

// SameAddress compares two addresses after normalization
func SameAddress(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return NormalizeAddress(a) == NormalizeAddress(b)
}
