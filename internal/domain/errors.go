package domain

import "errors"

var (
	// ErrRegistryNotFound is returned when the marketplace registry object is unreachable
	ErrRegistryNotFound = errors.New("marketplace registry not found")

	// ErrObjectNotFound is returned when an on-chain object cannot be fetched
	ErrObjectNotFound = errors.New("object not found")

	// ErrMalformedObject is returned when an on-chain object lacks expected fields
	ErrMalformedObject = errors.New("malformed object content")

	// ErrNoIdentity is returned when an owner/renter operation is attempted without a connected identity
	ErrNoIdentity = errors.New("no identity connected")

	// ErrInvalidAmount is returned when a price or payment amount fails validation
	ErrInvalidAmount = errors.New("invalid amount")
)
