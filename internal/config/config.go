package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// The struct is produced by Load, validated as a whole, and treated as
// read-only afterwards: the pointer handed out by Get is shared by every
// caller in the process and must never be mutated.
type Config struct {
	Service     ServiceConfig     `mapstructure:"service" validate:"required"`
	Network     NetworkConfig     `mapstructure:"network" validate:"required"`
	Performance PerformanceConfig `mapstructure:"performance" validate:"required"`
	Logging     LoggingConfig     `mapstructure:"logging" validate:"required"`
	Synthesis   SynthesisConfig   `mapstructure:"synthesis" validate:"required"`

	// Domains carries the per-domain settings registry, pre-seeded with
	// defaults for the data science and software engineering domains.
	// Overlay files and the ACDSYN_DOMAINS variable are merged in before
	// validation; a domain entry in either source replaces that domain's
	// defaults wholesale.
	Domains map[DomainType]DomainSettings `mapstructure:"-"`
}

// ServiceConfig identifies this deployment and the credential material for
// the managed backing service the network stores its state in. The service
// itself is an external collaborator; this core only checks that the
// credentials file exists.
type ServiceConfig struct {
	ProjectID        string `mapstructure:"project_id" validate:"required"`
	CredentialsPath  string `mapstructure:"credentials_path" validate:"required,file"`
	CollectionPrefix string `mapstructure:"collection_prefix" validate:"required"`
}

// NetworkConfig contains connection and retry tunables for the domain
// network. The retry knobs are declared configuration only: no retry loop
// consumes them yet.
type NetworkConfig struct {
	MaxDomainConnections    int `mapstructure:"max_domain_connections" validate:"gt=0"`
	SynthesisTimeoutSeconds int `mapstructure:"synthesis_timeout_seconds" validate:"gt=0"`
	RetryAttempts           int `mapstructure:"retry_attempts" validate:"gt=0"`
	RetryDelaySeconds       int `mapstructure:"retry_delay_seconds" validate:"gt=0"`
}

// PerformanceConfig contains metrics and optimization-cycle tunables.
type PerformanceConfig struct {
	MetricsCollectionInterval int     `mapstructure:"metrics_collection_interval" validate:"gt=0"`
	OptimizationCycleHours    int     `mapstructure:"optimization_cycle_hours" validate:"gt=0"`
	Threshold                 float64 `mapstructure:"threshold"`
}

// LoggingConfig governs the logging facade exclusively: minimum severity,
// render format, and whether records carry structured fields.
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARNING ERROR CRITICAL"`
	Format     string `mapstructure:"format" validate:"required,oneof=json console"`
	Structured bool   `mapstructure:"structured"`
}

// SynthesisConfig contains the synthesis engine's knobs. Only
// CompatibilityThreshold is consumed today; the rest describe future
// behavior.
type SynthesisConfig struct {
	DefaultStrategy        SynthesisStrategy `mapstructure:"default_strategy" validate:"required,oneof=parallel sequential hybrid emergent"`
	EnableEmergentBehavior bool              `mapstructure:"enable_emergent_behavior"`
	MaxSynthesisDepth      int               `mapstructure:"max_synthesis_depth" validate:"gt=0"`
	CompatibilityThreshold float64           `mapstructure:"compatibility_threshold" validate:"gte=0,lte=1"`
}
