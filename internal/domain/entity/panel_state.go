package entity

// PanelState is the fetch lifecycle of one owned-objects panel instance.
type PanelState string

const (
	PanelIdle    PanelState = "idle"
	PanelLoading PanelState = "loading"
	PanelLoaded  PanelState = "loaded"
	PanelFailed  PanelState = "failed"
)

// PanelInputs is the (owner, network) pair that a fetch is dispatched for.
type PanelInputs struct {
	OwnerID        string `json:"ownerId"`
	ByParentObject bool   `json:"byParentObject"`
	Network        string `json:"network"`
}

// ViewState is the local view selection of a paginated group table.
// An empty ExpandedKey means every group is closed.
type ViewState struct {
	Page        int    `json:"page"`
	ExpandedKey string `json:"expanded,omitempty"`
}

// ClosedGroup is the ExpandedKey value meaning no group is open.
const ClosedGroup = ""
