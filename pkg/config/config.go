package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in generated feeds"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newswire.db?cache=shared&mode=rwc&_txlock=immediate&_time_format=sqlite,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Scoring ScoringConfig `yaml:"scoring" json:"scoring" jsonschema:"description=Relevance scoring configuration"`

	Sources []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Feed sources registered at startup"`
}

// ScheduleConfig holds poll cycle settings
type ScheduleConfig struct {
	PollInterval    int           `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=15,minimum=1,description=Poll interval in minutes"`
	SourceDelay     time.Duration `yaml:"source_delay" json:"source_delay" jsonschema:"default=1s,description=Pause between sources within a cycle, negative disables it"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" jsonschema:"default=30s,description=Maximum wait for an in-flight cycle on shutdown"`
	ShutdownStep    time.Duration `yaml:"shutdown_step" json:"shutdown_step" jsonschema:"default=1s,description=Check step of the shutdown wait"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per source"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newswire/1.0,description=User agent for HTTP requests"`
}

// ScoringConfig holds keyword tiers for the relevance scorer. Empty tiers use built-in defaults.
type ScoringConfig struct {
	CriticalKeywords []string      `yaml:"critical_keywords" json:"critical_keywords" jsonschema:"description=Keywords adding 0.15 each"`
	MediumKeywords   []string      `yaml:"medium_keywords" json:"medium_keywords" jsonschema:"description=Keywords adding 0.05 each"`
	RecencyWindow    time.Duration `yaml:"recency_window" json:"recency_window" jsonschema:"default=24h,description=Items published within this window get a recency bonus"`
}

// SourceConfig is a feed source seeded into the registry
type SourceConfig struct {
	URL    string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Title  string `yaml:"title" json:"title" jsonschema:"description=Human readable source name"`
	Active *bool  `yaml:"active" json:"active,omitempty" jsonschema:"default=true,description=Poll this source"`
}

// IsActive reports whether the source should be polled, true when not set
func (s SourceConfig) IsActive() bool {
	return s.Active == nil || *s.Active
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newswire.db?cache=shared&mode=rwc&_txlock=immediate&_time_format=sqlite"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// schedule
	if c.Schedule.PollInterval == 0 {
		c.Schedule.PollInterval = 15
	}
	if c.Schedule.SourceDelay == 0 {
		c.Schedule.SourceDelay = time.Second
	}
	if c.Schedule.ShutdownTimeout == 0 {
		c.Schedule.ShutdownTimeout = 30 * time.Second
	}
	if c.Schedule.ShutdownStep == 0 {
		c.Schedule.ShutdownStep = time.Second
	}

	// fetch
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 30 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Newswire/1.0"
	}

	// scoring
	if c.Scoring.RecencyWindow == 0 {
		c.Scoring.RecencyWindow = 24 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate schedule config
	if cfg.Schedule.PollInterval < 1 {
		return fmt.Errorf("schedule.poll_interval must be at least 1 minute")
	}
	if cfg.Schedule.ShutdownTimeout < 0 || cfg.Schedule.ShutdownStep < 0 {
		return fmt.Errorf("schedule shutdown durations must be non-negative")
	}
	if cfg.Schedule.ShutdownStep > cfg.Schedule.ShutdownTimeout {
		return fmt.Errorf("schedule.shutdown_step must not exceed schedule.shutdown_timeout")
	}

	// validate fetch and scoring config
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Scoring.RecencyWindow < 0 {
		return fmt.Errorf("scoring.recency_window must be non-negative")
	}

	// validate sources
	for i, src := range cfg.Sources {
		if src.URL == "" {
			return fmt.Errorf("sources[%d].url is required", i)
		}
		u, err := url.Parse(src.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("sources[%d].url %q is not a valid http(s) url", i, src.URL)
		}
	}
	if dups := lo.FindDuplicatesBy(cfg.Sources, func(s SourceConfig) string { return s.URL }); len(dups) > 0 {
		return fmt.Errorf("duplicate source url %s", dups[0].URL)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL used in generated feeds
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// PollInterval returns the scheduler poll interval
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Schedule.PollInterval) * time.Minute
}
