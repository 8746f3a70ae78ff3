package entity

// Stats is the footer counter shown under a paginated section.
type Stats struct {
	Count int    `json:"count"`
	Text  string `json:"stats_text"`
}

// Pagination describes the pagination control state for one section.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	ShowControls bool `json:"showControls"`
}

// GroupMemberRow is one object row shown under an expanded coin group.
type GroupMemberRow struct {
	ObjectID string `json:"objectId"`
	Balance  string `json:"balance"`
}

// GroupRow is one coin type row of the grouped coin table.
type GroupRow struct {
	TypeTag     string           `json:"type"`
	DisplayType string           `json:"displayType"`
	Objects     int              `json:"objects"`
	Balance     string           `json:"balance"`
	Expanded    bool             `json:"expanded"`
	Members     []GroupMemberRow `json:"members,omitempty"`
}

// CoinSection is the grouped coins table of an owned-objects view.
type CoinSection struct {
	Groups     []GroupRow `json:"groups"`
	Expanded   string     `json:"expanded,omitempty"`
	Pagination Pagination `json:"pagination"`
}

// ObjectCard is one entry of the NFT grid.
type ObjectCard struct {
	ID          string `json:"id"`
	AltText     string `json:"altText"`
	Type        string `json:"type"`
	DisplayType string `json:"displayType"`
	DisplayURL  string `json:"display,omitempty"`
	Version     string `json:"version,omitempty"`
}

// NFTSection is the paginated grid of non-coin objects.
type NFTSection struct {
	Items      []ObjectCard `json:"items"`
	Stats      Stats        `json:"stats"`
	Pagination Pagination   `json:"pagination"`
	FillerBox  bool         `json:"fillerBox"`
}

// OwnedObjectsView is the render-state of one owned-objects panel.
// Coins and NFTs are nil when the corresponding partition is empty.
type OwnedObjectsView struct {
	State   PanelState   `json:"state"`
	Inputs  PanelInputs  `json:"inputs"`
	Message string       `json:"message,omitempty"`
	Coins   *CoinSection `json:"coins,omitempty"`
	NFTs    *NFTSection  `json:"nfts,omitempty"`
}
