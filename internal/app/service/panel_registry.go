package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/metrics"
)

// PanelRegistry keeps panel instances alive for a sliding TTL.
type PanelRegistry struct {
	panels  *cache.Cache
	ttl     time.Duration
	fetcher port.OwnedObjectsFetcher
	perPage int
	source  entity.SourceMode
	logger  port.Logger
}

// NewPanelRegistry creates a registry. Expired panels are closed by the
// cache janitor every cleanupInterval.
func NewPanelRegistry(
	fetcher port.OwnedObjectsFetcher,
	source entity.SourceMode,
	perPage int,
	ttl, cleanupInterval time.Duration,
	logger port.Logger,
) *PanelRegistry {
	r := &PanelRegistry{
		panels:  cache.New(ttl, cleanupInterval),
		ttl:     ttl,
		fetcher: fetcher,
		perPage: perPage,
		source:  source,
		logger:  logger,
	}
	r.panels.OnEvicted(func(id string, v interface{}) {
		if p, ok := v.(*Panel); ok {
			p.Close()
		}
		metrics.ActivePanels.Set(float64(r.panels.ItemCount()))
		logger.Debug("Panel evicted", "panel", id)
	})
	return r
}

// Create registers a new idle panel.
func (r *PanelRegistry) Create() *Panel {
	id := uuid.NewString()
	p := NewPanel(id, r.fetcher, r.perPage, r.source, r.logger)
	r.panels.Set(id, p, r.ttl)
	metrics.ActivePanels.Set(float64(r.panels.ItemCount()))
	r.logger.Info("Panel created", "panel", id)
	return p
}

// Get returns the panel with the given id and renews its TTL.
func (r *PanelRegistry) Get(id string) (*Panel, error) {
	v, found := r.panels.Get(id)
	if !found {
		return nil, fmt.Errorf("%w: %s", entity.ErrPanelNotFound, id)
	}
	p := v.(*Panel)
	r.panels.Set(id, p, r.ttl)
	return p, nil
}

// Delete closes and removes a panel.
func (r *PanelRegistry) Delete(id string) error {
	if _, found := r.panels.Get(id); !found {
		return fmt.Errorf("%w: %s", entity.ErrPanelNotFound, id)
	}
	r.panels.Delete(id)
	r.logger.Info("Panel deleted", "panel", id)
	return nil
}

// Len returns the number of live panels.
func (r *PanelRegistry) Len() int {
	return r.panels.ItemCount()
}

// Flush closes and removes every panel.
func (r *PanelRegistry) Flush() {
	for id := range r.panels.Items() {
		r.panels.Delete(id)
	}
}
