package networkdefinition

import (
	"fmt"
	"sort"
	"strings"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/infrastructure/configloader"
)

// NetworkDefinitionProvider provides network definitions.
type NetworkDefinitionProvider struct {
	logger         port.Logger
	allNetworkDefs map[string]entity.NetworkDefinition
	defaultNetwork string
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Devnet = entity.NetworkDefinition{
		Identifier:       "devnet",
		Name:             "Sui Devnet",
		PrimaryRPCURL:    "https://fullnode.devnet.sui.io:443",
		BlockExplorerURL: "https://explorer.devnet.sui.io",
	}
	Testnet = entity.NetworkDefinition{
		Identifier:       "testnet",
		Name:             "Sui Testnet",
		PrimaryRPCURL:    "https://fullnode.testnet.sui.io:443",
		BlockExplorerURL: "https://explorer.testnet.sui.io",
	}
	Local = entity.NetworkDefinition{
		Identifier:    "local",
		Name:          "Local Network",
		PrimaryRPCURL: "http://127.0.0.1:9000",
	}
)

var allKnownDefinitions = map[string]entity.NetworkDefinition{ //nolint:gochecknoglobals
	Devnet.Identifier:  Devnet,
	Testnet.Identifier: Testnet,
	Local.Identifier:   Local,
}

// NewNetworkDefinitionProvider creates a provider holding the built-in
// networks overlaid with the configured ones. A configured network with the
// same identifier as a built-in one overrides only the fields it sets.
func NewNetworkDefinitionProvider(log port.Logger, cfg *configloader.Config) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger:         log,
		allNetworkDefs: make(map[string]entity.NetworkDefinition, len(allKnownDefinitions)),
	}
	for id, def := range allKnownDefinitions {
		p.allNetworkDefs[id] = def
	}

	if cfg != nil {
		p.defaultNetwork = strings.ToLower(cfg.DefaultNetwork)
		for _, node := range cfg.Networks {
			id := strings.ToLower(node.Identifier)
			def, known := p.allNetworkDefs[id]
			if !known {
				def = entity.NetworkDefinition{Identifier: id, Name: node.Identifier}
			}
			if node.Name != "" {
				def.Name = node.Name
			}
			if node.RPCURL != "" {
				def.PrimaryRPCURL = node.RPCURL
			}
			if len(node.FallbackRPCURLs) > 0 {
				def.FallbackRPCURLs = append([]string(nil), node.FallbackRPCURLs...)
			}
			if node.ExplorerURL != "" {
				def.BlockExplorerURL = node.ExplorerURL
			}
			p.allNetworkDefs[id] = def
			p.logger.Debug(fmt.Sprintf("Network '%s' configured", id), "rpc", def.PrimaryRPCURL, "builtin", known)
		}
	}

	if p.defaultNetwork == "" {
		p.defaultNetwork = Devnet.Identifier
	}
	if _, ok := p.allNetworkDefs[p.defaultNetwork]; !ok {
		p.logger.Warn("Default network is not defined, requests without a network will fail", "network", p.defaultNetwork)
	}

	p.logger.Info(fmt.Sprintf("NetworkDefinitionProvider initialized. Networks: %d", len(p.allNetworkDefs)), "default", p.defaultNetwork)
	return p
}

// GetAllNetworkDefinitions returns every known network sorted by identifier.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defs := make([]entity.NetworkDefinition, 0, len(p.allNetworkDefs))
	for _, def := range p.allNetworkDefs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Identifier < defs[j].Identifier })
	return defs
}

// GetNetworkDefinitionByName returns a network definition by its identifier (case-insensitive).
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	def, ok := p.allNetworkDefs[strings.ToLower(strings.TrimSpace(identifier))]
	return def, ok
}

// DefaultNetwork returns the identifier used when a request names no network.
func (p *NetworkDefinitionProvider) DefaultNetwork() string {
	return p.defaultNetwork
}
