package configloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"object_explorer/internal/domain/entity"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SourceConfig selects the object data source.
type SourceConfig struct {
	Mode         entity.SourceMode `yaml:"mode"`
	SnapshotPath string            `yaml:"snapshotPath"` // file path or http(s) URL
}

// NetworkNodeConfig holds configuration for a specific network.
type NetworkNodeConfig struct {
	Identifier      string   `yaml:"identifier"`
	Name            string   `yaml:"name"`
	RPCURL          string   `yaml:"rpcURL"`
	FallbackRPCURLs []string `yaml:"fallbackRpcURLs"`
	ExplorerURL     string   `yaml:"explorerURL"`
}

// ExplorerConfig holds the view settings of the explorer panels.
type ExplorerConfig struct {
	ItemsPerPage   int    `yaml:"itemsPerPage"`
	ModulesPerPage int    `yaml:"modulesPerPage"`
	IPFSGateway    string `yaml:"ipfsGateway"`
}

// PerformanceConfig holds performance-related configurations.
type PerformanceConfig struct {
	RPCCallTimeoutSeconds int `yaml:"rpcCallTimeoutSeconds"`
	MaxObjectsPerBatch    int `yaml:"maxObjectsPerBatch"`
	MaxConcurrentBatches  int `yaml:"maxConcurrentBatches"`
}

// RpcClientConfig holds rate limits applied to every live RPC client.
type RpcClientConfig struct {
	RateLimit  float64 `yaml:"rateLimit"` // requests per second, 0 disables limiting
	BurstLimit int     `yaml:"burstLimit"`
}

// CacheConfig holds configuration for the panel registry cache.
type CacheConfig struct {
	PanelTTLMinutes        int `yaml:"panelTTLMinutes"`
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// StakingConfig holds the staking card settings.
type StakingConfig struct {
	APYBasisPoints int `yaml:"apyBasisPoints"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server         ServerConfig        `yaml:"server"`
	Logging        LoggingConfig       `yaml:"logging"`
	Source         SourceConfig        `yaml:"source"`
	DefaultNetwork string              `yaml:"defaultNetwork"`
	Networks       []NetworkNodeConfig `yaml:"networks"`
	Explorer       ExplorerConfig      `yaml:"explorer"`
	Performance    PerformanceConfig   `yaml:"performance"`
	RpcClient      RpcClientConfig     `yaml:"rpcClient"`
	Cache          CacheConfig         `yaml:"cache"`
	Staking        StakingConfig       `yaml:"staking"`
}

// Load reads the YAML configuration file from the given path, applies
// defaults and environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Config from raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// Default returns a configuration with every default applied, used when no
// config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EXPLORER_SERVER_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("EXPLORER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EXPLORER_SOURCE_MODE"); v != "" {
		c.Source.Mode = entity.SourceMode(strings.ToLower(v))
	}
	if v := os.Getenv("EXPLORER_SNAPSHOT_PATH"); v != "" {
		c.Source.SnapshotPath = v
	}
	if v := os.Getenv("EXPLORER_DEFAULT_NETWORK"); v != "" {
		c.DefaultNetwork = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Source.Mode == "" {
		c.Source.Mode = entity.SourceLive
	}
	if c.Source.Mode == entity.SourceStatic && c.Source.SnapshotPath == "" {
		c.Source.SnapshotPath = "data/static/objects.json"
		logrus.Infof("source.snapshotPath not set, defaulting to %s", c.Source.SnapshotPath)
	}
	if c.DefaultNetwork == "" {
		c.DefaultNetwork = "devnet"
	}
	if c.Explorer.ItemsPerPage <= 0 {
		c.Explorer.ItemsPerPage = 6
	}
	if c.Explorer.ModulesPerPage <= 0 {
		c.Explorer.ModulesPerPage = 3
	}
	if c.Explorer.IPFSGateway == "" {
		c.Explorer.IPFSGateway = "https://ipfs.io/ipfs/"
	}
	if c.Performance.RPCCallTimeoutSeconds <= 0 {
		c.Performance.RPCCallTimeoutSeconds = 10
	}
	if c.Performance.MaxObjectsPerBatch <= 0 {
		c.Performance.MaxObjectsPerBatch = 50
	}
	if c.Performance.MaxConcurrentBatches <= 0 {
		c.Performance.MaxConcurrentBatches = 4
	}
	if c.RpcClient.BurstLimit <= 0 {
		c.RpcClient.BurstLimit = 10
	}
	if c.Cache.PanelTTLMinutes <= 0 {
		c.Cache.PanelTTLMinutes = 30
	}
	if c.Cache.CleanupIntervalMinutes <= 0 {
		c.Cache.CleanupIntervalMinutes = 10
	}
	if c.Staking.APYBasisPoints <= 0 {
		c.Staking.APYBasisPoints = 100 // 1%
	}
}

// Validate checks the values that have no sensible default.
func (c *Config) Validate() error {
	switch c.Source.Mode {
	case entity.SourceLive, entity.SourceStatic:
	default:
		return fmt.Errorf("invalid source.mode %q: want %q or %q", c.Source.Mode, entity.SourceLive, entity.SourceStatic)
	}
	seen := make(map[string]bool, len(c.Networks))
	for i, n := range c.Networks {
		if n.Identifier == "" {
			return fmt.Errorf("networks[%d]: identifier is required", i)
		}
		if seen[n.Identifier] {
			return fmt.Errorf("networks[%d]: duplicate identifier %q", i, n.Identifier)
		}
		seen[n.Identifier] = true
		if n.RPCURL == "" && c.Source.Mode == entity.SourceLive {
			logrus.Warnf("Network '%s' has no rpcURL; the built-in endpoint is used if one exists.", n.Identifier)
		}
	}
	return nil
}
