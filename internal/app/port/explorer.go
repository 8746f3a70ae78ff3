package port

import (
	"context"

	"object_explorer/internal/domain/entity"
)

// OwnedObjectsFetcher fetches and normalizes the objects owned by an id.
type OwnedObjectsFetcher interface {
	FetchOwned(ctx context.Context, in entity.PanelInputs) ([]entity.OwnedRecord, error)
}

// OwnedObjectsService renders a one-shot owned-objects view without panel state.
type OwnedObjectsService interface {
	GetOwnedObjectsView(ctx context.Context, in entity.PanelInputs, coins entity.ViewState, nftPage int) (entity.OwnedObjectsView, error)
}

// ModuleService pages through the disassembled modules of a package.
type ModuleService interface {
	GetModulesPage(ctx context.Context, network, packageID string, page int) (entity.ModulesPage, error)
}

// StakingService summarizes the delegations owned by an address.
type StakingService interface {
	GetStakingSummary(ctx context.Context, network, owner string) (entity.StakingSummary, error)
}
