package txbuilder

import (
	"context"
	"fmt"
	"math/big"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
)

const marketplaceModule = "marketplace"

// Config holds the marketplace contract coordinates
type Config struct {
	PackageID  string
	RegistryID string
	GasBudget  uint64
}

// UnsignedTx is a built transaction awaiting wallet co-signing
type UnsignedTx struct {
	TxBytes string `json:"tx_bytes"`
	// TotalMist is set for rent transactions: the escrow amount in MIST
	TotalMist string `json:"total_mist,omitempty"`
}

// SubmitResult is the outcome of an executed transaction plus the views the
// caller must refetch
type SubmitResult struct {
	Digest      string            `json:"digest"`
	Invalidates []domain.ViewRole `json:"invalidates"`
}

// Builder constructs unsigned marketplace transactions and submits signed
// bytes. It never holds keys: every build result goes back to the wallet for
// co-signing. A failed submission is surfaced, never retried here.
//
//go:generate mockgen -source=builder.go -destination=../mocks/txbuilder.go -package=mocks -mock_names=Builder=MockTxBuilder
type Builder interface {
	// ListForRent lists an owned asset at a daily price in MIST
	ListForRent(ctx context.Context, signer, assetID, assetType string, pricePerDay *big.Int) (*UnsignedTx, error)

	// RentAsset rents a listed asset for a number of days, escrowing
	// pricePerDay×days MIST
	RentAsset(ctx context.Context, signer, assetID, assetType string, days uint64, pricePerDay *big.Int) (*UnsignedTx, error)

	// ClaimAsset reclaims an expired listing back to its owner
	ClaimAsset(ctx context.Context, signer, assetID, assetType string) (*UnsignedTx, error)

	// ReturnAsset returns an expired rental to the marketplace
	ReturnAsset(ctx context.Context, signer, assetID, assetType string) (*UnsignedTx, error)

	// Submit executes wallet-signed transaction bytes and reports which views
	// the submitted action invalidates
	Submit(ctx context.Context, action domain.Action, txBytes string, signatures []string) (*SubmitResult, error)
}

type builder struct {
	client sui.Client
	cfg    Config
}

// New creates a transaction builder bound to one marketplace deployment
func New(client sui.Client, cfg Config) Builder {
	if cfg.GasBudget == 0 {
		cfg.GasBudget = 50_000_000
	}
	return &builder{client: client, cfg: cfg}
}

func (b *builder) target(function string) (string, string, string) {
	return b.cfg.PackageID, marketplaceModule, function
}

func (b *builder) ListForRent(ctx context.Context, signer, assetID, assetType string, pricePerDay *big.Int) (*UnsignedTx, error) {
	if err := validateSigner(signer); err != nil {
		return nil, err
	}
	if pricePerDay == nil || pricePerDay.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidAmount)
	}

	pkg, module, function := b.target("list_for_rent")
	tx, err := b.client.MoveCall(ctx, signer, pkg, module, function,
		[]string{assetType},
		[]interface{}{b.cfg.RegistryID, assetID, pricePerDay.String()},
		b.cfg.GasBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to build list_for_rent: %w", err)
	}

	return &UnsignedTx{TxBytes: tx.TxBytes}, nil
}

func (b *builder) RentAsset(ctx context.Context, signer, assetID, assetType string, days uint64, pricePerDay *big.Int) (*UnsignedTx, error) {
	if err := validateSigner(signer); err != nil {
		return nil, err
	}
	if days == 0 {
		return nil, fmt.Errorf("%w: rental period must be at least one day", domain.ErrInvalidAmount)
	}
	if pricePerDay == nil || pricePerDay.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidAmount)
	}

	total := domain.RentTotal(pricePerDay, days)

	pkg, module, function := b.target("rent_asset")
	tx, err := b.client.MoveCall(ctx, signer, pkg, module, function,
		[]string{assetType},
		[]interface{}{
			b.cfg.RegistryID,
			assetID,
			total.String(), // escrow amount, split from gas by the contract call
			fmt.Sprintf("%d", days),
			domain.SUI_CLOCK_OBJECT_ID,
		},
		b.cfg.GasBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to build rent_asset: %w", err)
	}

	return &UnsignedTx{TxBytes: tx.TxBytes, TotalMist: total.String()}, nil
}

func (b *builder) ClaimAsset(ctx context.Context, signer, assetID, assetType string) (*UnsignedTx, error) {
	return b.expiryCall(ctx, "claim_asset", signer, assetID, assetType)
}

func (b *builder) ReturnAsset(ctx context.Context, signer, assetID, assetType string) (*UnsignedTx, error) {
	return b.expiryCall(ctx, "return_asset", signer, assetID, assetType)
}

// expiryCall builds the two post-expiry operations, which share a signature:
// (marketplace, asset_id, clock)
func (b *builder) expiryCall(ctx context.Context, function, signer, assetID, assetType string) (*UnsignedTx, error) {
	if err := validateSigner(signer); err != nil {
		return nil, err
	}

	pkg, module, fn := b.target(function)
	tx, err := b.client.MoveCall(ctx, signer, pkg, module, fn,
		[]string{assetType},
		[]interface{}{b.cfg.RegistryID, assetID, domain.SUI_CLOCK_OBJECT_ID},
		b.cfg.GasBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", function, err)
	}

	return &UnsignedTx{TxBytes: tx.TxBytes}, nil
}

func (b *builder) Submit(ctx context.Context, action domain.Action, txBytes string, signatures []string) (*SubmitResult, error) {
	if txBytes == "" || len(signatures) == 0 {
		return nil, fmt.Errorf("transaction bytes and signatures are required")
	}

	result, err := b.client.ExecuteTransaction(ctx, txBytes, signatures)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}
	if !result.Succeeded() {
		status := "unknown"
		if result.Effects != nil {
			status = result.Effects.Status.Error
		}
		return nil, fmt.Errorf("transaction %s rejected on chain: %s", result.Digest, status)
	}

	return &SubmitResult{
		Digest:      result.Digest,
		Invalidates: InvalidatedViews(action),
	}, nil
}

// InvalidatedViews maps a completed action to the views that must be
// refetched: listing and claiming move assets between the wallet and the
// registry, renting and returning move them between renter and listing.
func InvalidatedViews(action domain.Action) []domain.ViewRole {
	switch action {
	case domain.ActionList, domain.ActionClaim:
		return []domain.ViewRole{domain.ViewRoleOwned, domain.ViewRoleListed}
	case domain.ActionRent, domain.ActionReturn:
		return []domain.ViewRole{domain.ViewRoleRented, domain.ViewRoleListed}
	default:
		return nil
	}
}

func validateSigner(signer string) error {
	if signer == "" {
		return domain.ErrNoIdentity
	}
	if !domain.IsValidObjectID(signer) {
		return fmt.Errorf("invalid signer address %q", signer)
	}
	return nil
}
