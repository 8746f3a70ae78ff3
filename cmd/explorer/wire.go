package main

import (
	"context"
	"time"

	"object_explorer/internal/app/port"
	"object_explorer/internal/app/provider"
	"object_explorer/internal/app/service"
	networkdefinition "object_explorer/internal/infrastructure/network/definition"
	"object_explorer/internal/pkg/logger"
)

// application holds the wired services shared by every command.
type application struct {
	networks port.NetworkDefinitionProvider
	sources  *provider.SourceProvider
	fetcher  *service.OwnedObjectsFetcherImpl
	owned    port.OwnedObjectsService
	modules  port.ModuleService
	staking  port.StakingService
	panels   *service.PanelRegistry
}

func newApplication(ctx context.Context) (*application, error) {
	appLogger := logger.NewSlogAdapter()

	networks := networkdefinition.NewNetworkDefinitionProvider(logger.NewSlogAdapter("component", "networks"), cfg)
	sources, err := provider.NewSourceProvider(ctx, cfg, networks, zapLogger, appLogger)
	if err != nil {
		return nil, err
	}

	fetcher := service.NewOwnedObjectsFetcher(sources, networks, cfg.Explorer.IPFSGateway, logger.NewSlogAdapter("component", "fetcher"))
	app := &application{
		networks: networks,
		sources:  sources,
		fetcher:  fetcher,
		owned:    service.NewOwnedObjectsService(fetcher, cfg.Explorer.ItemsPerPage, appLogger),
		modules:  service.NewModuleService(sources, networks, cfg.Explorer.ModulesPerPage, appLogger),
		staking:  service.NewStakingService(sources, networks, cfg.Staking.APYBasisPoints, appLogger),
		panels: service.NewPanelRegistry(
			fetcher,
			sources.Mode(),
			cfg.Explorer.ItemsPerPage,
			time.Duration(cfg.Cache.PanelTTLMinutes)*time.Minute,
			time.Duration(cfg.Cache.CleanupIntervalMinutes)*time.Minute,
			logger.NewSlogAdapter("component", "panels"),
		),
	}
	logger.Info("Application wired", "source", sources.Mode(), "default_network", networks.DefaultNetwork())
	return app, nil
}

func (a *application) Close() {
	a.panels.Flush()
	a.sources.Close()
}
