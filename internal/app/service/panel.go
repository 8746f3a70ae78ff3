package service

import (
	"context"
	"sync"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/metrics"
)

// Panel is one owned-objects panel instance. It owns its records and view
// state; only the most recently dispatched fetch may commit into it.
type Panel struct {
	id      string
	fetcher port.OwnedObjectsFetcher
	perPage int
	source  string
	logger  port.Logger

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	state   entity.PanelState
	inputs  entity.PanelInputs
	records []entity.OwnedRecord
	coins   entity.ViewState
	nftPage int
}

// NewPanel creates an idle panel.
func NewPanel(id string, fetcher port.OwnedObjectsFetcher, perPage int, source entity.SourceMode, logger port.Logger) *Panel {
	return &Panel{
		id:      id,
		fetcher: fetcher,
		perPage: perPage,
		source:  string(source),
		logger:  logger,
		state:   entity.PanelIdle,
		coins:   InitialViewState(),
		nftPage: 1,
	}
}

// ID returns the panel identifier.
func (p *Panel) ID() string {
	return p.id
}

// State returns the current fetch state.
func (p *Panel) State() entity.PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetInputs dispatches a fetch for in and waits for it. The panel enters
// Loading immediately and any older in-flight fetch is cancelled.
//
// If another SetInputs supersedes this one before it completes, its result is
// dropped and entity.ErrStaleResult is returned. Otherwise the panel ends up
// Loaded or Failed and the fetch error, if any, is returned.
func (p *Panel) SetInputs(ctx context.Context, in entity.PanelInputs) error {
	fetchCtx, seq := p.dispatch(ctx, in)
	records, err := p.fetcher.FetchOwned(fetchCtx, in)
	return p.commit(seq, in, records, err)
}

func (p *Panel) dispatch(ctx context.Context, in entity.PanelInputs) (context.Context, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.seq++
	p.state = entity.PanelLoading
	p.inputs = in
	p.records = nil
	p.coins = InitialViewState()
	p.nftPage = 1

	p.logger.Debug("Panel fetch dispatched", "panel", p.id, "seq", p.seq, "owner", in.OwnerID, "network", in.Network)
	return fetchCtx, p.seq
}

func (p *Panel) commit(seq uint64, in entity.PanelInputs, records []entity.OwnedRecord, fetchErr error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq || in != p.inputs {
		metrics.FetchTotal.WithLabelValues(p.source, metrics.OutcomeStale).Inc()
		p.logger.Debug("Dropping stale panel fetch result", "panel", p.id, "seq", seq, "current_seq", p.seq)
		return entity.ErrStaleResult
	}

	p.cancel()
	p.cancel = nil

	if fetchErr != nil {
		p.state = entity.PanelFailed
		p.records = nil
		return fetchErr
	}
	p.state = entity.PanelLoaded
	p.records = records
	return nil
}

// OnCoinPageChange moves the coin table to page and closes any open group.
func (p *Panel) OnCoinPageChange(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins = OnPageChange(p.coins, page)
}

// ToggleGroup opens or closes the coin group with the given type tag.
func (p *Panel) ToggleGroup(typeTag string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins = ToggleGroup(p.coins, typeTag)
}

// ExpandGroup opens the coin group with the given type tag.
func (p *Panel) ExpandGroup(typeTag string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins = ExpandGroup(p.coins, typeTag)
}

// CollapseGroup closes the open coin group.
func (p *Panel) CollapseGroup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins = CollapseGroup(p.coins)
}

// OnNFTPageChange moves the NFT grid to page.
func (p *Panel) OnNFTPageChange(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nftPage = page
}

// CoinViewState returns the current coin table selection.
func (p *Panel) CoinViewState() entity.ViewState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.coins
}

// View renders the panel's current render-state.
func (p *Panel) View() entity.OwnedObjectsView {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case entity.PanelLoading:
		return LoadingView(p.inputs)
	case entity.PanelFailed:
		return FailedView(p.inputs)
	case entity.PanelLoaded:
		return BuildOwnedObjectsView(p.inputs, p.records, p.coins, p.nftPage, p.perPage)
	default:
		return IdleView()
	}
}

// Close cancels an in-flight fetch. Its result will be dropped.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.seq++
}
