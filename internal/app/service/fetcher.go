package service

import (
	"context"
	"errors"
	"time"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/metrics"
)

// OwnedObjectsFetcherImpl implements port.OwnedObjectsFetcher.
type OwnedObjectsFetcherImpl struct {
	sources  port.ObjectSourceProvider
	networks port.NetworkDefinitionProvider
	gateway  string
	logger   port.Logger
}

// NewOwnedObjectsFetcher creates a fetcher over the configured source provider.
// gateway is the HTTP gateway used for ipfs:// display URLs.
func NewOwnedObjectsFetcher(
	sources port.ObjectSourceProvider,
	networks port.NetworkDefinitionProvider,
	gateway string,
	logger port.Logger,
) *OwnedObjectsFetcherImpl {
	return &OwnedObjectsFetcherImpl{
		sources:  sources,
		networks: networks,
		gateway:  gateway,
		logger:   logger,
	}
}

// ResolveNetwork returns the network a request runs on, falling back to the
// default network when none is named.
func (f *OwnedObjectsFetcherImpl) ResolveNetwork(network string) string {
	if network == "" {
		return f.networks.DefaultNetwork()
	}
	return network
}

// FetchOwned lists the references owned by in.OwnerID, resolves them in one
// batch and returns the existing ones, normalized, in listing order.
// Listing and resolution failures are returned as *entity.FetchError; nothing
// partial is ever returned.
func (f *OwnedObjectsFetcherImpl) FetchOwned(ctx context.Context, in entity.PanelInputs) ([]entity.OwnedRecord, error) {
	started := time.Now()
	mode := string(f.sources.Mode())
	network := f.ResolveNetwork(in.Network)

	fail := func(stage entity.FetchStage, cause error) error {
		metrics.ObserveFetch(mode, metrics.OutcomeFailed, started)
		f.logger.Warn("Owned objects fetch failed", "stage", stage, "owner", in.OwnerID, "network", network, "error", cause)
		return &entity.FetchError{Stage: stage, OwnerID: in.OwnerID, Network: network, Err: cause}
	}

	src, err := f.sources.GetSource(network)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownNetwork) {
			metrics.ObserveFetch(mode, metrics.OutcomeFailed, started)
			return nil, err
		}
		// the network is configured but its endpoint could not be reached
		return nil, fail(entity.StageList, err)
	}

	refs, err := src.ListOwned(ctx, in.OwnerID, in.ByParentObject)
	if err != nil {
		return nil, fail(entity.StageList, err)
	}

	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ObjectID
	}

	resolved, err := src.ResolveBatch(ctx, ids)
	if err != nil {
		return nil, fail(entity.StageResolve, err)
	}

	records := make([]entity.OwnedRecord, 0, len(resolved))
	absent := 0
	for _, rec := range resolved {
		metrics.ObjectsResolved.WithLabelValues(string(rec.Status)).Inc()
		if !rec.Exists() {
			absent++
			continue
		}
		records = append(records, NormalizeRecord(rec, f.gateway))
	}

	metrics.ObserveFetch(mode, metrics.OutcomeLoaded, started)
	f.logger.Debug("Owned objects fetched",
		"owner", in.OwnerID,
		"network", network,
		"by_object", in.ByParentObject,
		"listed", len(refs),
		"absent", absent,
		"kept", len(records))
	return records, nil
}
