package service

import (
	"context"
	"fmt"
	"sort"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
)

const (
	modulesTitle     = "Modules"
	modulesStatsText = "total modules"
)

// ModuleServiceImpl implements port.ModuleService.
type ModuleServiceImpl struct {
	sources  port.ObjectSourceProvider
	networks port.NetworkDefinitionProvider
	perPage  int
	logger   port.Logger
}

// NewModuleService creates a module viewer service.
func NewModuleService(sources port.ObjectSourceProvider, networks port.NetworkDefinitionProvider, perPage int, logger port.Logger) port.ModuleService {
	return &ModuleServiceImpl{sources: sources, networks: networks, perPage: perPage, logger: logger}
}

// GetModulesPage resolves packageID and returns one page of its modules,
// ordered by module name.
func (s *ModuleServiceImpl) GetModulesPage(ctx context.Context, network, packageID string, page int) (entity.ModulesPage, error) {
	if network == "" {
		network = s.networks.DefaultNetwork()
	}
	src, err := s.sources.GetSource(network)
	if err != nil {
		return entity.ModulesPage{}, err
	}

	recs, err := src.ResolveBatch(ctx, []string{packageID})
	if err != nil {
		s.logger.Warn("Package resolution failed", "package", packageID, "network", network, "error", err)
		return entity.ModulesPage{}, &entity.FetchError{Stage: entity.StageResolve, OwnerID: packageID, Network: network, Err: err}
	}
	if len(recs) != 1 || !recs[0].Exists() {
		return entity.ModulesPage{}, fmt.Errorf("%w: %s", entity.ErrObjectNotFound, packageID)
	}
	if !recs[0].IsPackage() {
		return entity.ModulesPage{}, fmt.Errorf("%w: %s (%s)", entity.ErrNotAPackage, packageID, recs[0].Type)
	}

	return BuildModulesPage(modulesTitle, recs[0].Modules, page, s.perPage), nil
}

// BuildModulesPage windows the modules of a package, sorted by name.
func BuildModulesPage(title string, modules map[string]string, page, perPage int) entity.ModulesPage {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]entity.ModuleEntry, len(names))
	for i, name := range names {
		entries[i] = entity.ModuleEntry{Name: name, Code: modules[name]}
	}

	return entity.ModulesPage{
		Title:      title,
		Modules:    WindowOf(entries, perPage, page),
		Stats:      entity.Stats{Count: len(entries), Text: modulesStatsText},
		Pagination: NewPagination(len(entries), perPage, page),
	}
}
