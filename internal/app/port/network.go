package port

import (
	"context"

	"object_explorer/internal/domain/entity"
)

// ObjectSource defines the read capability the explorer needs from a data source.
// Implementations are the live RPC client and the static snapshot.
type ObjectSource interface {
	// ListOwned returns the references owned by ownerID. byParentObject selects
	// object-owned lookup instead of address-owned lookup.
	ListOwned(ctx context.Context, ownerID string, byParentObject bool) ([]entity.Reference, error)

	// ResolveBatch resolves every id to its object record, preserving input order.
	// A missing object is reported through its Status, not as an error.
	ResolveBatch(ctx context.Context, ids []string) ([]entity.ObjectRecord, error)
}

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all available network definitions as a slice.
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByName returns a specific network definition by its identifier.
	GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool)

	// DefaultNetwork returns the identifier used when a request names no network.
	DefaultNetwork() string
}

// ObjectSourceProvider hands out the ObjectSource serving a network.
type ObjectSourceProvider interface {
	GetSource(network string) (ObjectSource, error)
	Mode() entity.SourceMode
}
