package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/providers/sui"
)

// Enumerator discovers the listing records attached to the marketplace
// registry as dynamic children. Order of the returned identifiers is
// implementation-defined on the node and not relied upon downstream.
//
//go:generate mockgen -source=enumerator.go -destination=../mocks/enumerator.go -package=mocks -mock_names=Enumerator=MockEnumerator
type Enumerator interface {
	// Enumerate returns the object ids of all active listings. A registry
	// that cannot be reached fails the whole batch with ErrRegistryNotFound.
	Enumerate(ctx context.Context) ([]string, error)
}

type enumerator struct {
	client     sui.Client
	registryID string
}

// NewEnumerator creates a listing enumerator bound to one registry object
func NewEnumerator(client sui.Client, registryID string) Enumerator {
	return &enumerator{client: client, registryID: registryID}
}

func (e *enumerator) Enumerate(ctx context.Context) ([]string, error) {
	fields, err := e.client.GetDynamicFields(ctx, e.registryID)
	if err != nil {
		if errors.Is(err, domain.ErrObjectNotFound) {
			return nil, fmt.Errorf("registry %s: %w", e.registryID, domain.ErrRegistryNotFound)
		}
		return nil, fmt.Errorf("failed to enumerate registry %s: %w", e.registryID, err)
	}

	ids := make([]string, 0, len(fields))
	for _, field := range fields {
		if field.ObjectID != "" {
			ids = append(ids, field.ObjectID)
		}
	}
	return ids, nil
}
