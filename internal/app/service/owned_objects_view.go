package service

import (
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/utils"
)

const (
	// FailureMessage is shown by a panel whose last fetch failed.
	FailureMessage = "Failed to find Owned Objects"
	nftStatsText   = "Total NFTs"
	gridColumns    = 3
)

// BuildOwnedObjectsView renders loaded records. coins is the view state of the
// grouped coin table; nftPage is the current page of the NFT grid.
func BuildOwnedObjectsView(in entity.PanelInputs, records []entity.OwnedRecord, coins entity.ViewState, nftPage, perPage int) entity.OwnedObjectsView {
	coinRecords, other := Partition(records)

	view := entity.OwnedObjectsView{State: entity.PanelLoaded, Inputs: in}
	if len(coinRecords) > 0 {
		view.Coins = buildCoinSection(GroupByType(coinRecords), coins, perPage)
	}
	if len(other) > 0 {
		view.NFTs = buildNFTSection(other, nftPage, perPage)
	}
	return view
}

// LoadingView is the view of a panel with a fetch in flight.
func LoadingView(in entity.PanelInputs) entity.OwnedObjectsView {
	return entity.OwnedObjectsView{State: entity.PanelLoading, Inputs: in}
}

// FailedView is the view of a panel whose fetch failed.
func FailedView(in entity.PanelInputs) entity.OwnedObjectsView {
	return entity.OwnedObjectsView{State: entity.PanelFailed, Inputs: in, Message: FailureMessage}
}

// IdleView is the view of a panel that has not been given inputs yet.
func IdleView() entity.OwnedObjectsView {
	return entity.OwnedObjectsView{State: entity.PanelIdle}
}

func buildCoinSection(groups []entity.TypeGroup, state entity.ViewState, perPage int) *entity.CoinSection {
	window := WindowOf(groups, perPage, state.Page)
	rows := make([]entity.GroupRow, 0, len(window))
	for _, g := range window {
		row := entity.GroupRow{
			TypeTag:     g.TypeTag,
			DisplayType: utils.CoinDisplayType(g.TypeTag),
			Objects:     g.Count(),
			Balance:     g.TotalString(),
			Expanded:    state.ExpandedKey != entity.ClosedGroup && g.TypeTag == state.ExpandedKey,
		}
		if row.Expanded {
			row.Members = make([]entity.GroupMemberRow, 0, len(g.Members))
			for _, m := range g.Members {
				row.Members = append(row.Members, entity.GroupMemberRow{ObjectID: m.ID, Balance: m.BalanceString()})
			}
		}
		rows = append(rows, row)
	}
	return &entity.CoinSection{
		Groups:     rows,
		Expanded:   state.ExpandedKey,
		Pagination: NewPagination(len(groups), perPage, state.Page),
	}
}

func buildNFTSection(other []entity.OwnedRecord, page, perPage int) *entity.NFTSection {
	window := WindowOf(other, perPage, page)
	cards := make([]entity.ObjectCard, 0, len(window))
	for _, r := range window {
		cards = append(cards, entity.ObjectCard{
			ID:          r.ID,
			AltText:     utils.AltText(r.ID),
			Type:        r.TypeTag,
			DisplayType: utils.TrimStdLibPrefix(r.TypeTag),
			DisplayURL:  r.DisplayURL,
			Version:     r.Version,
		})
	}
	return &entity.NFTSection{
		Items:      cards,
		Stats:      entity.Stats{Count: len(other), Text: nftStatsText},
		Pagination: NewPagination(len(other), perPage, page),
		FillerBox:  len(cards)%gridColumns == 2,
	}
}
