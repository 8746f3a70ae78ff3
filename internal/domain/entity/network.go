package entity

// NetworkDefinition holds the endpoint configuration for one named network.
type NetworkDefinition struct {
	Identifier       string   `json:"identifier" yaml:"identifier"` // e.g. "devnet", "testnet"
	Name             string   `json:"name" yaml:"name"`
	PrimaryRPCURL    string   `json:"primaryRpcUrl" yaml:"primaryRpcUrl"`
	FallbackRPCURLs  []string `json:"fallbackRpcUrls,omitempty" yaml:"fallbackRpcUrls,omitempty"`
	BlockExplorerURL string   `json:"blockExplorerUrl,omitempty" yaml:"blockExplorerUrl,omitempty"`
}

// SourceMode selects which ObjectSource implementation backs the explorer.
type SourceMode string

const (
	SourceLive   SourceMode = "live"
	SourceStatic SourceMode = "static"
)
