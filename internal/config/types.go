// internal/config/types.go
package config

import (
	"fmt"
	"time"

	"github.com/qaharvest/qaharvest/internal/pipeline"
	"github.com/qaharvest/qaharvest/internal/utils"
)

// Config is the full runtime configuration. Every field has a default; a
// config file and CLI flags only override what they name.
type Config struct {
	BaseURL          string                   `yaml:"base_url"`
	Format           string                   `yaml:"format"`
	MaxPages         int                      `yaml:"max_pages"`
	DiscoveryLimit   int                      `yaml:"discovery_limit"`
	CrawlLimit       int                      `yaml:"crawl_limit"`
	RequestTimeout   time.Duration            `yaml:"request_timeout"`
	SnapshotInterval int                      `yaml:"snapshot_interval"`
	UserAgents       []string                 `yaml:"user_agents"`
	LogLevel         string                   `yaml:"log_level"`
	MetricsAddress   string                   `yaml:"metrics_address"`
	Transforms       pipeline.TransformList   `yaml:"transforms,omitempty"`
	Output           OutputConfig             `yaml:"output"`
	Profiles         map[string]ProfileConfig `yaml:"profiles,omitempty"`
}

// OutputConfig controls where deduplicated records land. QAFile and
// DiscussionFile are basenames; the format's extension is appended.
type OutputConfig struct {
	QAFile             string        `yaml:"qa_file"`
	DiscussionFile     string        `yaml:"discussion_file"`
	QASnapshot         string        `yaml:"qa_snapshot"`
	DiscussionSnapshot string        `yaml:"discussion_snapshot"`
	SQLite             *SQLiteConfig `yaml:"sqlite,omitempty"`
	Excel              *ExcelConfig  `yaml:"excel,omitempty"`
}

// SQLiteConfig enables the optional SQLite sink.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// ExcelConfig enables the optional XLSX review workbook.
type ExcelConfig struct {
	Path string `yaml:"path"`
}

// ProfileConfig declares or overrides a site-specific selector profile.
type ProfileConfig struct {
	Hosts            []string `yaml:"hosts"`
	PostContainers   []string `yaml:"post_containers"`
	TitleSelectors   []string `yaml:"title_selectors"`
	ContentSelectors []string `yaml:"content_selectors"`
}

var validFormats = map[string]bool{
	"jsonl": true,
	"csv":   true,
	"txt":   true,
}

// Validate checks the configuration for values the run cannot proceed with.
func (c *Config) Validate() error {
	if c.Format != "" && !validFormats[c.Format] {
		return fmt.Errorf("unsupported output format: %q (want jsonl, csv or txt)", c.Format)
	}
	if c.BaseURL != "" && !utils.IsValidURL(c.BaseURL) {
		return fmt.Errorf("invalid base URL: %q", c.BaseURL)
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages cannot be negative")
	}
	if c.DiscoveryLimit < 0 {
		return fmt.Errorf("discovery_limit cannot be negative")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout cannot be negative")
	}
	if _, err := c.Transforms.Apply(""); err != nil {
		return fmt.Errorf("invalid transforms: %w", err)
	}
	for name, profile := range c.Profiles {
		if len(profile.Hosts) == 0 {
			return fmt.Errorf("profile %q must list at least one host", name)
		}
	}
	return nil
}
