package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/openrent/sui-rental-gateway/internal/adapter"
	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/logger"
	"github.com/openrent/sui-rental-gateway/internal/messaging"
	"github.com/openrent/sui-rental-gateway/internal/pipeline"
	"github.com/openrent/sui-rental-gateway/internal/txbuilder"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetListings retrieves the full marketplace batch
	// GET /api/v1/listings?viewer=<address>
	GetListings(c *gin.Context)

	// GetView retrieves one per-identity view (owned, listed or rented)
	// GET /api/v1/views/:role?address=<address>
	GetView(c *gin.Context)

	// BuildListTx builds an unsigned list_for_rent transaction
	// POST /api/v1/tx/list
	BuildListTx(c *gin.Context)

	// BuildRentTx builds an unsigned rent_asset transaction
	// POST /api/v1/tx/rent
	BuildRentTx(c *gin.Context)

	// BuildClaimTx builds an unsigned claim_asset transaction
	// POST /api/v1/tx/claim
	BuildClaimTx(c *gin.Context)

	// BuildReturnTx builds an unsigned return_asset transaction
	// POST /api/v1/tx/return
	BuildReturnTx(c *gin.Context)

	// SubmitTx executes wallet-signed transaction bytes and publishes the
	// resulting view invalidations
	// POST /api/v1/tx/submit
	SubmitTx(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	aggregator pipeline.Service
	builder    txbuilder.Builder
	publisher  messaging.Publisher // nil when NATS is not configured
	clock      adapter.Clock
	assetType  string
}

// NewHandler creates a new REST API handler
func NewHandler(aggregator pipeline.Service, builder txbuilder.Builder, publisher messaging.Publisher, clock adapter.Clock, assetType string) Handler {
	return &handler{
		aggregator: aggregator,
		builder:    builder,
		publisher:  publisher,
		clock:      clock,
		assetType:  assetType,
	}
}

// GetListings retrieves every active listing. The viewer address is optional;
// without it no actions are offered.
func (h *handler) GetListings(c *gin.Context) {
	viewer := c.Query("viewer")
	if viewer != "" && !domain.IsValidObjectID(viewer) {
		respondBadRequest(c, "Invalid viewer address")
		return
	}

	assets, err := h.aggregator.Marketplace(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to fetch listings")
		return
	}

	dtos := toAssetDTOs(assets, viewer, h.clock.Now())
	c.JSON(http.StatusOK, ListingsResponse{Assets: dtos, Count: len(dtos)})
}

// GetView retrieves one per-identity view
func (h *handler) GetView(c *gin.Context) {
	role := domain.ViewRole(c.Param("role"))
	if !domain.IsValidViewRole(role) {
		respondBadRequest(c, "Unknown view role", string(role))
		return
	}

	address := c.Query("address")
	if address == "" {
		respondBadRequest(c, "Address is required")
		return
	}
	if !domain.IsValidObjectID(address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	assets, err := h.aggregator.View(c.Request.Context(), role, address)
	if err != nil {
		respondDomainError(c, err, "Failed to compute view")
		return
	}

	dtos := toAssetDTOs(assets, address, h.clock.Now())
	c.JSON(http.StatusOK, ViewResponse{
		View:    string(role),
		Address: address,
		Assets:  dtos,
		Count:   len(dtos),
	})
}

// BuildListTx builds an unsigned list_for_rent transaction
func (h *handler) BuildListTx(c *gin.Context) {
	var req ListTxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	price, err := domain.ParseSUI(req.PricePerDay)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tx, err := h.builder.ListForRent(c.Request.Context(), req.Signer, req.AssetID, h.assetType, price)
	if err != nil {
		respondDomainError(c, err, "Failed to build list transaction")
		return
	}

	c.JSON(http.StatusOK, tx)
}

// BuildRentTx builds an unsigned rent_asset transaction
func (h *handler) BuildRentTx(c *gin.Context) {
	var req RentTxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	price, err := domain.ParseMist(req.PricePerDayMist)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tx, err := h.builder.RentAsset(c.Request.Context(), req.Signer, req.AssetID, h.assetType, req.Days, price)
	if err != nil {
		respondDomainError(c, err, "Failed to build rent transaction")
		return
	}

	c.JSON(http.StatusOK, tx)
}

// BuildClaimTx builds an unsigned claim_asset transaction
func (h *handler) BuildClaimTx(c *gin.Context) {
	h.buildExpiryTx(c, h.builder.ClaimAsset, "Failed to build claim transaction")
}

// BuildReturnTx builds an unsigned return_asset transaction
func (h *handler) BuildReturnTx(c *gin.Context) {
	h.buildExpiryTx(c, h.builder.ReturnAsset, "Failed to build return transaction")
}

// expiryBuildFunc matches the builder's claim/return methods
type expiryBuildFunc func(ctx context.Context, signer, assetID, assetType string) (*txbuilder.UnsignedTx, error)

func (h *handler) buildExpiryTx(c *gin.Context, build expiryBuildFunc, message string) {
	var req ExpiryTxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tx, err := build(c.Request.Context(), req.Signer, req.AssetID, h.assetType)
	if err != nil {
		respondDomainError(c, err, message)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// SubmitTx executes wallet-signed transaction bytes
func (h *handler) SubmitTx(c *gin.Context) {
	var req SubmitTxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	action := domain.Action(req.Action)
	switch action {
	case domain.ActionList, domain.ActionRent, domain.ActionClaim, domain.ActionReturn:
	default:
		respondBadRequest(c, "Unknown action", req.Action)
		return
	}
	if !domain.IsValidObjectID(req.Address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	result, err := h.builder.Submit(c.Request.Context(), action, req.TxBytes, req.Signatures)
	if err != nil {
		respondDomainError(c, err, "Failed to submit transaction")
		return
	}

	h.publishInvalidations(c, req.Address, result)

	invalidates := make([]string, 0, len(result.Invalidates))
	for _, view := range result.Invalidates {
		invalidates = append(invalidates, string(view))
	}
	c.JSON(http.StatusOK, SubmitTxResponse{Digest: result.Digest, Invalidates: invalidates})
}

// publishInvalidations emits one invalidation event per stale view. Publish
// failures are logged, not surfaced: the transaction already succeeded.
func (h *handler) publishInvalidations(c *gin.Context, address string, result *txbuilder.SubmitResult) {
	if h.publisher == nil {
		return
	}

	ctx := c.Request.Context()
	for _, view := range result.Invalidates {
		event := &messaging.InvalidationEvent{
			ID:        ulid.MustNewDefault(h.clock.Now()).String(),
			View:      view,
			Address:   address,
			TxDigest:  result.Digest,
			Timestamp: h.clock.Now(),
		}
		if err := h.publisher.PublishInvalidation(ctx, event); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("view", string(view)),
				zap.String("tx_digest", result.Digest),
			)
		}
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
