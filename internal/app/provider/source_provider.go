package provider

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/infrastructure/configloader"
	"object_explorer/internal/infrastructure/network/client"
	"object_explorer/internal/infrastructure/snapshotloader"
)

const snapshotDownloadTimeout = 30 * time.Second

// SourceProvider is the ObjectSourceProvider selected by source.mode.
type SourceProvider struct {
	port.ObjectSourceProvider
	closeFn func()
}

// NewSourceProvider builds the live or the static source provider. In static
// mode the snapshot is loaded eagerly, so a broken snapshot fails startup.
func NewSourceProvider(
	ctx context.Context,
	cfg *configloader.Config,
	networks port.NetworkDefinitionProvider,
	zapLogger *zap.Logger,
	logger port.Logger,
) (*SourceProvider, error) {
	switch cfg.Source.Mode {
	case entity.SourceLive:
		live := client.NewSuiClientProvider(cfg, networks, zapLogger)
		logger.Info("Using live object source", "default_network", networks.DefaultNetwork())
		return &SourceProvider{ObjectSourceProvider: live, closeFn: live.Close}, nil

	case entity.SourceStatic:
		loader := snapshotloader.NewLoader(snapshotDownloadTimeout, zapLogger)
		snap, err := loader.Load(ctx, cfg.Source.SnapshotPath)
		if err != nil {
			logger.Error("Failed to load snapshot", "location", cfg.Source.SnapshotPath, "error", err)
			return nil, err
		}
		static := snapshotloader.NewStaticSource(snap)
		logger.Info("Using static object source", "location", cfg.Source.SnapshotPath, "objects", static.Len())
		return &SourceProvider{ObjectSourceProvider: snapshotloader.NewStaticSourceProvider(static, networks)}, nil

	default:
		return nil, fmt.Errorf("unsupported source mode %q", cfg.Source.Mode)
	}
}

// Close releases live RPC connections, if any.
func (p *SourceProvider) Close() {
	if p.closeFn != nil {
		p.closeFn()
	}
}
