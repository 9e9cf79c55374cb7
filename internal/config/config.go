// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no config file is supplied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration filename cannot be empty")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes. Environment variables
// referenced as $NAME or ${NAME} are expanded before parsing.
func LoadFromBytes(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("configuration data cannot be empty")
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in defaults for anything the file left unset.
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = "jsonl"
	}
	if cfg.DiscoveryLimit == 0 {
		cfg.DiscoveryLimit = 200
	}
	if cfg.CrawlLimit == 0 {
		cfg.CrawlLimit = 100
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.SnapshotInterval == 0 {
		cfg.SnapshotInterval = 50
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		}
	}
	if cfg.Output.QAFile == "" {
		cfg.Output.QAFile = "data_qa"
	}
	if cfg.Output.DiscussionFile == "" {
		cfg.Output.DiscussionFile = "data_discussion"
	}
	if cfg.Output.QASnapshot == "" {
		cfg.Output.QASnapshot = "data_qa_intermediate.jsonl"
	}
	if cfg.Output.DiscussionSnapshot == "" {
		cfg.Output.DiscussionSnapshot = "data_discussion_intermediate.jsonl"
	}
}
