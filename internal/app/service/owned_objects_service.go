package service

import (
	"context"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
)

// OwnedObjectsServiceImpl implements port.OwnedObjectsService.
type OwnedObjectsServiceImpl struct {
	fetcher port.OwnedObjectsFetcher
	perPage int
	logger  port.Logger
}

// NewOwnedObjectsService creates a stateless owned-objects view service.
func NewOwnedObjectsService(fetcher port.OwnedObjectsFetcher, perPage int, logger port.Logger) port.OwnedObjectsService {
	return &OwnedObjectsServiceImpl{fetcher: fetcher, perPage: perPage, logger: logger}
}

// GetOwnedObjectsView fetches the objects of in.OwnerID and renders them with
// the given view selection. On failure it returns the Failed view together
// with the error.
func (s *OwnedObjectsServiceImpl) GetOwnedObjectsView(ctx context.Context, in entity.PanelInputs, coins entity.ViewState, nftPage int) (entity.OwnedObjectsView, error) {
	records, err := s.fetcher.FetchOwned(ctx, in)
	if err != nil {
		return FailedView(in), err
	}
	s.logger.Debug("Rendering owned objects view", "owner", in.OwnerID, "records", len(records), "coin_page", coins.Page, "nft_page", nftPage)
	return BuildOwnedObjectsView(in, records, coins, nftPage, s.perPage), nil
}
