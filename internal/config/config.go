// Package config loads the pathwise service configuration from YAML files
// with ${VAR} environment expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the pathwise API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	Router    RouterConfig    `yaml:"router"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	Advisor   AdvisorConfig   `yaml:"advisor"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// RouterConfig holds intent-routing defaults. Every routing fallback the
// router can take is explicit here so absence of a signal stays testable.
type RouterConfig struct {
	DefaultQuery        string   `yaml:"default_query"`
	DefaultCapabilities []string `yaml:"default_capabilities"` // courses, jobs, projects
	DefaultDepartments  []string `yaml:"default_departments"`
	DefaultJobTitle     string   `yaml:"default_job_title"`
	DefaultLocation     string   `yaml:"default_location"`
	DefaultCountry      string   `yaml:"default_country"`
	MaxDepartments      int      `yaml:"max_departments"`
	MaxRequests         int      `yaml:"max_requests"`
}

// ProvidersConfig holds per-capability downstream settings.
type ProvidersConfig struct {
	Nebula   NebulaConfig   `yaml:"nebula"`
	SerpAPI  SerpAPIConfig  `yaml:"serpapi"`
	Projects ProjectsConfig `yaml:"projects"`
}

// NebulaConfig holds the UTD Nebula course catalog settings.
type NebulaConfig struct {
	APIKey           string `yaml:"api_key"`
	BaseURL          string `yaml:"base_url"`
	TimeoutSec       int    `yaml:"timeout_sec"`
	MaxResults       int    `yaml:"max_results"`
	DescriptionLimit int    `yaml:"description_limit"`
}

// SerpAPIConfig holds the SerpAPI job search settings.
type SerpAPIConfig struct {
	APIKey            string `yaml:"api_key"`
	BaseURL           string `yaml:"base_url"`
	Engine            string `yaml:"engine"`
	Language          string `yaml:"language"`
	TimeoutSec        int    `yaml:"timeout_sec"`
	MaxTitleResults   int    `yaml:"max_title_results"`
	MaxKeywordResults int    `yaml:"max_keyword_results"`
	DescriptionLimit  int    `yaml:"description_limit"`
}

// ProjectsConfig holds the curated project recommendation settings.
type ProjectsConfig struct {
	MaxResults int `yaml:"max_results"`
	TimeoutSec int `yaml:"timeout_sec"`
}

// CacheConfig holds the optional course-catalog cache settings.
// An empty address list disables the cache entirely.
type CacheConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	TTLSec           int      `yaml:"ttl_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// AdvisorConfig holds the optional plan-advisor LLM settings.
// An empty API key disables the advisor.
type AdvisorConfig struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}

	if c.Router.DefaultQuery == "" {
		c.Router.DefaultQuery = "software engineer career plan"
	}
	if len(c.Router.DefaultCapabilities) == 0 {
		c.Router.DefaultCapabilities = []string{"courses", "jobs", "projects"}
	}
	if len(c.Router.DefaultDepartments) == 0 {
		c.Router.DefaultDepartments = []string{"CS"}
	}
	if c.Router.DefaultJobTitle == "" {
		c.Router.DefaultJobTitle = "software engineer"
	}
	if c.Router.DefaultLocation == "" {
		c.Router.DefaultLocation = "New York"
	}
	if c.Router.DefaultCountry == "" {
		c.Router.DefaultCountry = "USA"
	}
	if c.Router.MaxDepartments <= 0 {
		c.Router.MaxDepartments = 2
	}
	if c.Router.MaxRequests <= 0 {
		c.Router.MaxRequests = 3
	}

	if c.Providers.Nebula.BaseURL == "" {
		c.Providers.Nebula.BaseURL = "https://api.utdnebula.com"
	}
	if c.Providers.Nebula.TimeoutSec <= 0 {
		c.Providers.Nebula.TimeoutSec = 15
	}
	if c.Providers.Nebula.MaxResults <= 0 {
		c.Providers.Nebula.MaxResults = 50
	}
	if c.Providers.Nebula.DescriptionLimit <= 0 {
		c.Providers.Nebula.DescriptionLimit = 250
	}

	if c.Providers.SerpAPI.BaseURL == "" {
		c.Providers.SerpAPI.BaseURL = "https://serpapi.com"
	}
	if c.Providers.SerpAPI.Engine == "" {
		c.Providers.SerpAPI.Engine = "google_jobs"
	}
	if c.Providers.SerpAPI.Language == "" {
		c.Providers.SerpAPI.Language = "en"
	}
	if c.Providers.SerpAPI.TimeoutSec <= 0 {
		c.Providers.SerpAPI.TimeoutSec = 10
	}
	if c.Providers.SerpAPI.MaxTitleResults <= 0 {
		c.Providers.SerpAPI.MaxTitleResults = 10
	}
	if c.Providers.SerpAPI.MaxKeywordResults <= 0 {
		c.Providers.SerpAPI.MaxKeywordResults = 20
	}
	if c.Providers.SerpAPI.DescriptionLimit <= 0 {
		c.Providers.SerpAPI.DescriptionLimit = 200
	}

	if c.Providers.Projects.MaxResults <= 0 {
		c.Providers.Projects.MaxResults = 3
	}
	if c.Providers.Projects.TimeoutSec <= 0 {
		c.Providers.Projects.TimeoutSec = 5
	}

	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = 600
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}

	if c.Advisor.Model == "" {
		c.Advisor.Model = "gpt-4o-mini"
	}
	if c.Advisor.MaxTokens <= 0 {
		c.Advisor.MaxTokens = 2000
	}
}

// Validate checks the configuration for correctness. A missing downstream
// credential is rejected here, before any client is constructed.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Providers.Nebula.APIKey == "" {
		return fmt.Errorf("providers.nebula.api_key is required")
	}
	if c.Providers.SerpAPI.APIKey == "" {
		return fmt.Errorf("providers.serpapi.api_key is required")
	}
	for _, name := range c.Router.DefaultCapabilities {
		switch name {
		case "courses", "jobs", "projects":
			// ok
		default:
			return fmt.Errorf(
				"router.default_capabilities entries must be courses, jobs, or projects, got %q", name)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
