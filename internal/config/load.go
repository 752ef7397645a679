package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// envPrefix is prepended to every environment variable this package
	// reads; nested keys use underscores (ACDSYN_SERVICE_PROJECT_ID).
	envPrefix = "ACDSYN"

	// envDomains optionally carries a YAML/JSON mapping of per-domain
	// settings, merged on top of any overlay file.
	envDomains = "ACDSYN_DOMAINS"
)

// Option customizes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	overlayPath string
}

// WithOverlay merges the domain-keyed YAML mapping at path into the
// per-domain settings registry before validation. The file must exist.
func WithOverlay(path string) Option {
	return func(lo *loadOptions) {
		lo.overlayPath = path
	}
}

// Load reads configuration from ACDSYN_-prefixed environment variables,
// applies defaults, merges any overlay, and validates the result as a
// whole. Environment values take precedence over overlay values.
//
// Loading is all-or-nothing: the first failure aborts with a *LoadError
// and no partially populated Config is ever observable. The returned
// snapshot is read-only from the caller's point of view.
func Load(opts ...Option) (*Config, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Required keys have no default, so viper must be told about them
	// explicitly for AutomaticEnv to pick them up.
	for _, key := range []string{"service.project_id", "service.credentials_path"} {
		if err := v.BindEnv(key); err != nil {
			return nil, &LoadError{Stage: "unmarshal", Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &LoadError{Stage: "unmarshal", Err: err}
	}

	// Enumerated string settings are matched case-insensitively.
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	cfg.Synthesis.DefaultStrategy = SynthesisStrategy(
		strings.ToLower(string(cfg.Synthesis.DefaultStrategy)),
	)

	domains, err := loadDomainOverlays(lo)
	if err != nil {
		return nil, err
	}
	cfg.Domains = domains

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, &LoadError{Stage: "validate", Err: fmt.Errorf("validation failed: %w", err)}
	}

	return &cfg, nil
}

// loadDomainOverlays gathers domain settings from the overlay file and the
// ACDSYN_DOMAINS variable, then merges them over the seeded defaults. The
// environment mapping wins over the file.
func loadDomainOverlays(lo loadOptions) (map[DomainType]DomainSettings, error) {
	var overlays []map[string]any

	if lo.overlayPath != "" {
		overlay, err := LoadOverlay(lo.overlayPath)
		if err != nil {
			return nil, &LoadError{Stage: "overlay", Err: err}
		}
		overlays = append(overlays, overlay)
	}

	if raw := os.Getenv(envDomains); raw != "" {
		var overlay map[string]any
		if err := yaml.Unmarshal([]byte(raw), &overlay); err != nil {
			return nil, &LoadError{Stage: "domains", Err: fmt.Errorf("parse %s: %w", envDomains, err)}
		}
		overlays = append(overlays, overlay)
	}

	domains, err := mergeDomainOverlays(overlays...)
	if err != nil {
		return nil, &LoadError{Stage: "domains", Err: err}
	}
	return domains, nil
}

// setDefaults registers the documented default for every optional setting.
// Only the project identifier and credentials path are required.
func setDefaults(v *viper.Viper) {
	v.SetDefault("service.collection_prefix", "acdsyn_")

	v.SetDefault("network.max_domain_connections", 100)
	v.SetDefault("network.synthesis_timeout_seconds", 300)
	v.SetDefault("network.retry_attempts", 3)
	v.SetDefault("network.retry_delay_seconds", 5)

	v.SetDefault("performance.metrics_collection_interval", 60)
	v.SetDefault("performance.optimization_cycle_hours", 24)
	v.SetDefault("performance.threshold", 0.8)

	v.SetDefault("logging.level", "INFO")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.structured", true)

	v.SetDefault("synthesis.default_strategy", string(StrategyHybrid))
	v.SetDefault("synthesis.enable_emergent_behavior", true)
	v.SetDefault("synthesis.max_synthesis_depth", 5)
	v.SetDefault("synthesis.compatibility_threshold", 0.7)
}
