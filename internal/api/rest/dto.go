package rest

import (
	"time"

	"github.com/openrent/sui-rental-gateway/internal/domain"
)

// AssetDTO is the wire representation of a resolved asset. Prices are carried
// in MIST and mirrored in two-decimal display units; state and action are
// computed for the requesting viewer at response time.
type AssetDTO struct {
	AssetID        string `json:"asset_id"`
	ListingID      string `json:"listing_id,omitempty"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	URL            string `json:"url,omitempty"`
	Type           string `json:"type,omitempty"`
	Owner          string `json:"owner"`
	Renter         string `json:"renter,omitempty"`
	PricePerDay    string `json:"price_per_day,omitempty"`     // MIST
	PricePerDaySUI string `json:"price_per_day_sui,omitempty"` // display units
	RentedUntil    int64  `json:"rented_until,omitempty"`      // unix milliseconds
	IsRented       bool   `json:"is_rented"`
	RemainingLabel string `json:"remaining_label,omitempty"`
	State          string `json:"state"`
	Action         string `json:"action,omitempty"`
	ContentHash    string `json:"content_hash,omitempty"`
	View           string `json:"view,omitempty"`
}

// toAssetDTO converts a resolved asset, computing the viewer-relative state
// and permitted action
func toAssetDTO(a *domain.ResolvedAsset, viewer string, now time.Time) AssetDTO {
	dto := AssetDTO{
		AssetID:        a.AssetID,
		ListingID:      a.ListingID,
		Name:           a.Name,
		Description:    a.Description,
		URL:            a.URL,
		Type:           a.Type,
		Owner:          a.Owner,
		Renter:         a.Renter,
		RentedUntil:    a.RentedUntil,
		IsRented:       a.IsRented,
		RemainingLabel: a.RemainingLabel,
		ContentHash:    a.ContentHash,
		View:           string(a.ViewRole),
	}

	if a.PricePerDay != nil {
		dto.PricePerDay = a.PricePerDay.String()
		dto.PricePerDaySUI = domain.FormatSUI(a.PricePerDay)
	}

	state := domain.StateOf(a, viewer, now)
	dto.State = string(state)
	dto.Action = string(domain.ActionOf(state, viewer))

	return dto
}

func toAssetDTOs(assets []*domain.ResolvedAsset, viewer string, now time.Time) []AssetDTO {
	dtos := make([]AssetDTO, 0, len(assets))
	for _, a := range assets {
		dtos = append(dtos, toAssetDTO(a, viewer, now))
	}
	return dtos
}

// ListingsResponse is the marketplace batch
type ListingsResponse struct {
	Assets []AssetDTO `json:"assets"`
	Count  int        `json:"count"`
}

// ViewResponse is one per-identity view
type ViewResponse struct {
	View    string     `json:"view"`
	Address string     `json:"address"`
	Assets  []AssetDTO `json:"assets"`
	Count   int        `json:"count"`
}

// ListTxRequest builds a list_for_rent transaction. The price is a decimal
// display-unit string ("0.1" SUI) converted to MIST server-side.
type ListTxRequest struct {
	Signer      string `json:"signer" binding:"required"`
	AssetID     string `json:"asset_id" binding:"required"`
	PricePerDay string `json:"price_per_day" binding:"required"`
}

// RentTxRequest builds a rent_asset transaction. The price is echoed back in
// MIST exactly as the listing carried it.
type RentTxRequest struct {
	Signer          string `json:"signer" binding:"required"`
	AssetID         string `json:"asset_id" binding:"required"`
	Days            uint64 `json:"days" binding:"required"`
	PricePerDayMist string `json:"price_per_day_mist" binding:"required"`
}

// ExpiryTxRequest builds a claim_asset or return_asset transaction
type ExpiryTxRequest struct {
	Signer  string `json:"signer" binding:"required"`
	AssetID string `json:"asset_id" binding:"required"`
}

// SubmitTxRequest executes wallet-signed transaction bytes
type SubmitTxRequest struct {
	Action     string   `json:"action" binding:"required"`
	Address    string   `json:"address" binding:"required"`
	TxBytes    string   `json:"tx_bytes" binding:"required"`
	Signatures []string `json:"signatures" binding:"required"`
}

// SubmitTxResponse reports the digest and the views made stale by the action
type SubmitTxResponse struct {
	Digest      string   `json:"digest"`
	Invalidates []string `json:"invalidates"`
}
