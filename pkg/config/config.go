package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newswatch.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		Interval      time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Interval between batch runs"`
		RetentionDays int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,description=Days to keep run history records"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=News index fetch configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for AI topic classification"`
}

// FetchConfig holds news index fetch settings
type FetchConfig struct {
	Source            string        `yaml:"source" json:"source" jsonschema:"default=gdelt,enum=gdelt,enum=rss,description=News index backend"`
	Window            time.Duration `yaml:"window" json:"window" jsonschema:"default=2h,description=Time window covered by each batch"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=News index request timeout"`
	RateLimit         time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=1s,description=Delay between per-domain index queries"`
	MinArticleLength  int           `yaml:"min_article_length" json:"min_article_length" jsonschema:"default=700,description=Minimum article text length in characters"`
	MaxDomainFailures int           `yaml:"max_domain_failures" json:"max_domain_failures" jsonschema:"default=5,description=Extraction failures before a domain is skipped for the rest of the batch"`
	MaxPerDomain      int           `yaml:"max_per_domain" json:"max_per_domain" jsonschema:"default=0,description=Maximum articles kept per domain per batch (0 = unlimited)"`
	DanishQuota       int           `yaml:"danish_quota" json:"danish_quota" jsonschema:"default=0,description=Target Danish article count per batch (0 = disabled)"`
	EnglishQuota      int           `yaml:"english_quota" json:"english_quota" jsonschema:"default=0,description=Target English article count per batch (0 = disabled)"`
	StorageDir        string        `yaml:"storage_dir" json:"storage_dir" jsonschema:"default=data,description=Directory for per-batch article JSON files"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newswatch/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=200,description=Minimum text length for an extraction strategy to count as sufficient"`
}

// LLMConfig holds LLM configuration for AI topic classification
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty uses the default OpenAI endpoint)"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (empty disables the external classifier)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.1,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	RequestDelay time.Duration `yaml:"request_delay" json:"request_delay" jsonschema:"default=100ms,description=Politeness delay after each successful API call"`
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
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when
// no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newswatch.db?cache=shared&mode=rwc&_txlock=immediate"
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

	// set defaults for schedule
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 30 * time.Minute
	}
	if c.Schedule.RetentionDays == 0 {
		c.Schedule.RetentionDays = 30
	}

	// set defaults for fetch
	if c.Fetch.Source == "" {
		c.Fetch.Source = "gdelt"
	}
	if c.Fetch.Window == 0 {
		c.Fetch.Window = 2 * time.Hour
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 30 * time.Second
	}
	if c.Fetch.RateLimit == 0 {
		c.Fetch.RateLimit = time.Second
	}
	if c.Fetch.MinArticleLength == 0 {
		c.Fetch.MinArticleLength = 700
	}
	if c.Fetch.MaxDomainFailures == 0 {
		c.Fetch.MaxDomainFailures = 5
	}
	if c.Fetch.StorageDir == "" {
		c.Fetch.StorageDir = "data"
	}

	// set defaults for extraction
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "Newswatch/1.0"
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 200
	}

	// set defaults for LLM
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.1
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 300
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.LLM.RequestDelay == 0 {
		c.LLM.RequestDelay = 100 * time.Millisecond
	}
}

// validate checks configuration values for consistency
func validate(cfg *Config) error {
	if cfg.Fetch.Source != "gdelt" && cfg.Fetch.Source != "rss" {
		return fmt.Errorf("fetch.source must be gdelt or rss, got %q", cfg.Fetch.Source)
	}
	if cfg.Fetch.Window < time.Minute {
		return fmt.Errorf("fetch.window must be at least 1 minute")
	}
	if cfg.Fetch.MinArticleLength < 0 {
		return fmt.Errorf("fetch.min_article_length must be non-negative")
	}
	if cfg.Fetch.MaxDomainFailures < 1 {
		return fmt.Errorf("fetch.max_domain_failures must be at least 1")
	}
	if cfg.Fetch.MaxPerDomain < 0 {
		return fmt.Errorf("fetch.max_per_domain must be non-negative")
	}
	if cfg.Fetch.DanishQuota < 0 || cfg.Fetch.EnglishQuota < 0 {
		return fmt.Errorf("fetch quotas must be non-negative")
	}

	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction.timeout must be at least 1 second")
	}
	if cfg.Extraction.MinTextLength < 0 {
		return fmt.Errorf("extraction.min_text_length must be non-negative")
	}

	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.APIKey != "" && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm.api_key is set")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}
	if cfg.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1 minute")
	}

	return nil
}

// GetServerConfig returns server listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFetchConfig returns news index fetch configuration
func (c *Config) GetFetchConfig() FetchConfig {
	return c.Fetch
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// LLMEnabled reports whether the external classifier is configured
func (c *Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}
