package snapshotloader

import (
	"fmt"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
)

// StaticSourceProvider implements port.ObjectSourceProvider with one snapshot
// shared by every known network.
type StaticSourceProvider struct {
	source   *StaticSource
	networks port.NetworkDefinitionProvider
}

// NewStaticSourceProvider creates a provider over source.
func NewStaticSourceProvider(source *StaticSource, networks port.NetworkDefinitionProvider) *StaticSourceProvider {
	return &StaticSourceProvider{source: source, networks: networks}
}

// GetSource returns the shared static source. Unknown networks are rejected
// so that both modes agree on which selectors are valid.
func (p *StaticSourceProvider) GetSource(network string) (port.ObjectSource, error) {
	if _, ok := p.networks.GetNetworkDefinitionByName(network); !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownNetwork, network)
	}
	return p.source, nil
}

// Mode implements port.ObjectSourceProvider.
func (p *StaticSourceProvider) Mode() entity.SourceMode {
	return entity.SourceStatic
}
