package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DomainType identifies a supported application domain. The set is closed:
// every switch over DomainType in this package is exhaustive, so adding a
// domain forces each consumption site to be revisited.
type DomainType string

const (
	DomainDataScience         DomainType = "data_science"
	DomainSoftwareEngineering DomainType = "software_engineering"
	DomainResearch            DomainType = "research"
	DomainAutomation          DomainType = "automation"
	DomainFinance             DomainType = "finance"
	DomainHealthcare          DomainType = "healthcare"
)

// DomainTypes returns every supported domain in declaration order.
func DomainTypes() []DomainType {
	return []DomainType{
		DomainDataScience,
		DomainSoftwareEngineering,
		DomainResearch,
		DomainAutomation,
		DomainFinance,
		DomainHealthcare,
	}
}

// ParseDomainType converts s into a DomainType, rejecting values outside
// the closed set.
func ParseDomainType(s string) (DomainType, error) {
	switch DomainType(s) {
	case DomainDataScience, DomainSoftwareEngineering, DomainResearch,
		DomainAutomation, DomainFinance, DomainHealthcare:
		return DomainType(s), nil
	}
	return "", fmt.Errorf("unknown domain type %q", s)
}

// Valid reports whether d is a member of the closed domain set.
func (d DomainType) Valid() bool {
	_, err := ParseDomainType(string(d))
	return err == nil
}

// SynthesisStrategy names one of the available synthesis strategies.
// Pure value type; no strategy logic lives in this core.
type SynthesisStrategy string

const (
	StrategyParallel   SynthesisStrategy = "parallel"
	StrategySequential SynthesisStrategy = "sequential"
	StrategyHybrid     SynthesisStrategy = "hybrid"
	StrategyEmergent   SynthesisStrategy = "emergent"
)

// ParseSynthesisStrategy converts s into a SynthesisStrategy, rejecting
// values outside the closed set.
func ParseSynthesisStrategy(s string) (SynthesisStrategy, error) {
	switch SynthesisStrategy(s) {
	case StrategyParallel, StrategySequential, StrategyHybrid, StrategyEmergent:
		return SynthesisStrategy(s), nil
	}
	return "", fmt.Errorf("unknown synthesis strategy %q", s)
}

// DomainSettings is the per-domain settings variant held in the
// configuration registry. Domains with a dedicated schema carry their own
// typed struct; the remaining domains fall back to GenericSettings, an
// opaque key/value mapping whose schema is the consuming domain's
// responsibility.
type DomainSettings interface {
	Domain() DomainType
}

// DataScienceSettings captures the data science domain's knobs. Keys not
// covered by the schema land in Extra.
type DataScienceSettings struct {
	MaxComponents    int            `mapstructure:"max_components"`
	AllowedLibraries []string       `mapstructure:"allowed_libraries"`
	DataRequirements []string       `mapstructure:"data_requirements"`
	Extra            map[string]any `mapstructure:",remain"`
}

// Domain implements DomainSettings.
func (DataScienceSettings) Domain() DomainType { return DomainDataScience }

// SoftwareEngineeringSettings captures the software engineering domain's
// knobs. Keys not covered by the schema land in Extra.
type SoftwareEngineeringSettings struct {
	MaxComponents    int            `mapstructure:"max_components"`
	AllowedLanguages []string       `mapstructure:"allowed_languages"`
	CodeStandards    []string       `mapstructure:"code_standards"`
	Extra            map[string]any `mapstructure:",remain"`
}

// Domain implements DomainSettings.
func (SoftwareEngineeringSettings) Domain() DomainType { return DomainSoftwareEngineering }

// GenericSettings is the fallback variant for domains without a dedicated
// schema. Values is opaque at this layer.
type GenericSettings struct {
	domain DomainType
	Values map[string]any
}

// Domain implements DomainSettings.
func (g GenericSettings) Domain() DomainType { return g.domain }

// defaultDomainSettings seeds the registry. Only the data science and
// software engineering domains ship defaults; the rest are registered on
// demand through overlays.
func defaultDomainSettings() map[DomainType]DomainSettings {
	return map[DomainType]DomainSettings{
		DomainDataScience: DataScienceSettings{
			MaxComponents:    50,
			AllowedLibraries: []string{"pandas", "numpy", "scikit-learn"},
			DataRequirements: []string{"clean", "structured"},
		},
		DomainSoftwareEngineering: SoftwareEngineeringSettings{
			MaxComponents:    100,
			AllowedLanguages: []string{"python", "javascript"},
			CodeStandards:    []string{"pep8", "eslint"},
		},
	}
}

// decodeDomainSettings converts a raw overlay mapping into the typed
// variant for dt. The switch is exhaustive over the closed domain set.
func decodeDomainSettings(dt DomainType, raw map[string]any) (DomainSettings, error) {
	switch dt {
	case DomainDataScience:
		var s DataScienceSettings
		if err := mapstructure.Decode(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s settings: %w", dt, err)
		}
		return s, nil
	case DomainSoftwareEngineering:
		var s SoftwareEngineeringSettings
		if err := mapstructure.Decode(raw, &s); err != nil {
			return nil, fmt.Errorf("decode %s settings: %w", dt, err)
		}
		return s, nil
	case DomainResearch, DomainAutomation, DomainFinance, DomainHealthcare:
		return GenericSettings{domain: dt, Values: raw}, nil
	}
	return nil, fmt.Errorf("unsupported domain type %q", dt)
}

// mergeDomainOverlays applies domain-keyed mappings on top of the seeded
// defaults. Later overlays win; an entry replaces the domain's previous
// settings entirely.
func mergeDomainOverlays(overlays ...map[string]any) (map[DomainType]DomainSettings, error) {
	out := defaultDomainSettings()
	for _, overlay := range overlays {
		for key, val := range overlay {
			dt, err := ParseDomainType(key)
			if err != nil {
				return nil, err
			}
			raw, ok := val.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("domain %s: settings must be a mapping, got %T", key, val)
			}
			settings, err := decodeDomainSettings(dt, raw)
			if err != nil {
				return nil, err
			}
			out[dt] = settings
		}
	}
	return out, nil
}
