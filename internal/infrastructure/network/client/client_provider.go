package client

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/infrastructure/configloader"
)

const (
	defaultProviderConnectionTimeout = 10 * time.Second
)

// SuiClientProvider implements port.ObjectSourceProvider for live nodes.
// Clients are created lazily and cached per network identifier.
type SuiClientProvider struct {
	networks port.NetworkDefinitionProvider
	clients  map[string]*SuiClient
	mu       sync.Mutex
	opts     ClientOptions
	logger   *zap.Logger
}

// NewSuiClientProvider creates a new live ObjectSourceProvider.
func NewSuiClientProvider(cfg *configloader.Config, networks port.NetworkDefinitionProvider, logger *zap.Logger) *SuiClientProvider {
	return &SuiClientProvider{
		networks: networks,
		clients:  make(map[string]*SuiClient),
		opts: ClientOptions{
			ConnectionTimeout:    defaultProviderConnectionTimeout,
			RPCCallTimeout:       time.Duration(cfg.Performance.RPCCallTimeoutSeconds) * time.Second,
			MaxObjectsPerBatch:   cfg.Performance.MaxObjectsPerBatch,
			MaxConcurrentBatches: cfg.Performance.MaxConcurrentBatches,
			RateLimit:            cfg.RpcClient.RateLimit,
			BurstLimit:           cfg.RpcClient.BurstLimit,
		},
		logger: logger.Named("SuiClientProvider"),
	}
}

// GetSource returns the cached client for network, creating it on first use.
func (p *SuiClientProvider) GetSource(network string) (port.ObjectSource, error) {
	netDef, ok := p.networks.GetNetworkDefinitionByName(network)
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownNetwork, network)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, exists := p.clients[netDef.Identifier]; exists {
		return c, nil
	}

	p.logger.Info("Creating new Sui client", zap.String("network", netDef.Identifier), zap.String("rpc_primary", netDef.PrimaryRPCURL))
	c, err := NewSuiClient(netDef, p.opts, p.logger)
	if err != nil {
		p.logger.Error("Failed to create Sui client", zap.String("network", netDef.Identifier), zap.Error(err))
		return nil, fmt.Errorf("failed to create client for %s: %w", netDef.Identifier, err)
	}

	p.clients[netDef.Identifier] = c
	return c, nil
}

// Mode implements port.ObjectSourceProvider.
func (p *SuiClientProvider) Mode() entity.SourceMode {
	return entity.SourceLive
}

// Close closes every cached client.
func (p *SuiClientProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, c := range p.clients {
		c.Close()
		delete(p.clients, id)
	}
}
