// Package config loads the feedstock catalog and logistics factors.
//
// The source is a YAML document with two sections:
//
//	feedstocks:
//	  CORN:
//	    name: Corn (Maize)
//	    water_intensity_l_per_l: 10.0
//	    carbon_intensity_kg_per_l: 1.2
//	    avg_price_usd_per_l: 0.50
//	    typical_yield_l_per_hectare: 3800
//	    water_scarcity_index: 1.2
//	logistics:
//	  emissions_per_kg_km:
//	    TRUCK: 0.0001
//	    RAIL: 0.00003
//	    SHIP: 0.00001
//
// Load reads an explicit file when a path is given and otherwise falls back
// to the reference data set compiled into the binary. Every failure wraps
// ErrConfiguration and is fatal to the calling tool.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"moonshine-core/impact"

	"moonshine/internal/logging"
)

// BuiltinSource is reported as Config.Source for the embedded data set.
const BuiltinSource = "builtin"

//go:embed data/impact.yaml
var builtinYAML []byte

var ErrConfiguration = errors.New("config: invalid configuration")

// FeedstockEntry is one record under `feedstocks`. Numeric fields are
// pointers so a missing field can be told apart from an explicit zero.
type FeedstockEntry struct {
	Name                string   `mapstructure:"name" yaml:"name"`
	WaterIntensityLPerL *float64 `mapstructure:"water_intensity_l_per_l" yaml:"water_intensity_l_per_l"`
	CarbonIntensityKgL  *float64 `mapstructure:"carbon_intensity_kg_per_l" yaml:"carbon_intensity_kg_per_l"`
	AvgPriceUSDPerL     *float64 `mapstructure:"avg_price_usd_per_l" yaml:"avg_price_usd_per_l"`
	YieldLPerHectare    *float64 `mapstructure:"typical_yield_l_per_hectare" yaml:"typical_yield_l_per_hectare"`
	WaterScarcityIndex  *float64 `mapstructure:"water_scarcity_index" yaml:"water_scarcity_index"`
}

// LogisticsEntry is the `logistics` section.
type LogisticsEntry struct {
	EmissionsPerKgKm map[string]float64 `mapstructure:"emissions_per_kg_km" yaml:"emissions_per_kg_km"`
}

// Document mirrors the configuration file.
type Document struct {
	Feedstocks map[string]FeedstockEntry `mapstructure:"feedstocks" yaml:"feedstocks"`
	Logistics  LogisticsEntry            `mapstructure:"logistics" yaml:"logistics"`
}

// Config is the validated, immutable result of Load.
type Config struct {
	Source    string
	Catalog   *impact.Catalog
	Logistics *impact.Logistics

	doc Document
}

// Load reads the configuration at path, or the built-in data set when path
// is empty.
func Load(path string, log logr.Logger) (*Config, error) {
	source, raw := BuiltinSource, builtinYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrConfiguration, path, err)
		}
		source, raw = path, b
	}
	if err := checkKeys(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, source, err)
	}

	// Feedstock keys may contain dots (E85.BLEND).
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrConfiguration, source, err)
	}

	var doc Document
	strict := viper.DecoderConfigOption(func(c *mapstructure.DecoderConfig) {
		c.WeaklyTypedInput = false
		c.ErrorUnused = true
	})
	if err := v.Unmarshal(&doc, strict); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrConfiguration, source, err)
	}
	doc = canonicalize(doc)

	cfg, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, source, err)
	}
	cfg.Source = source

	log.Info("Loaded sourcing configuration",
		"source", source,
		"feedstocks", cfg.Catalog.Len())
	log.V(logging.DEBUG).Info("Feedstock keys", "keys", cfg.Catalog.Keys())
	return cfg, nil
}

// checkKeys rejects map keys that collide once case is folded. viper
// lower-cases keys on read and would otherwise merge such records silently.
func checkKeys(raw []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return fmt.Errorf("parse: %v", err)
	}
	if len(root.Content) == 0 {
		return nil
	}
	return checkMapping(root.Content[0], "")
}

func checkMapping(n *yaml.Node, at string) error {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	seen := make(map[string]string, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if strings.Contains(key, "::") {
			return fmt.Errorf("key %q at %s: \"::\" is not allowed in keys", key, where(at))
		}
		folded := strings.ToUpper(key)
		if prev, ok := seen[folded]; ok {
			return fmt.Errorf("duplicate key %q at %s (collides with %q, keys are case-insensitive)", key, where(at), prev)
		}
		seen[folded] = key
		if err := checkMapping(n.Content[i+1], at+"."+key); err != nil {
			return err
		}
	}
	return nil
}

func where(at string) string {
	if at == "" {
		return "top level"
	}
	return strings.TrimPrefix(at, ".")
}

// canonicalize upper-cases map keys; viper lower-cases them on read.
func canonicalize(doc Document) Document {
	out := Document{
		Feedstocks: make(map[string]FeedstockEntry, len(doc.Feedstocks)),
		Logistics:  LogisticsEntry{EmissionsPerKgKm: make(map[string]float64, len(doc.Logistics.EmissionsPerKgKm))},
	}
	for k, f := range doc.Feedstocks {
		out.Feedstocks[strings.ToUpper(k)] = f
	}
	for k, e := range doc.Logistics.EmissionsPerKgKm {
		out.Logistics.EmissionsPerKgKm[strings.ToUpper(k)] = e
	}
	return out
}

func build(doc Document) (*Config, error) {
	if len(doc.Feedstocks) == 0 {
		return nil, errors.New("no feedstocks defined")
	}
	keys := make([]string, 0, len(doc.Feedstocks))
	for k := range doc.Feedstocks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make(map[string]impact.Feedstock, len(keys))
	for _, k := range keys {
		f, err := doc.Feedstocks[k].toFeedstock()
		if err != nil {
			return nil, fmt.Errorf("feedstock %s: %w", k, err)
		}
		records[k] = f
	}

	factors := make(map[impact.Mode]float64, len(impact.Modes))
	for name, factor := range doc.Logistics.EmissionsPerKgKm {
		m, ok := impact.ParseMode(name)
		if !ok {
			return nil, fmt.Errorf("logistics: unknown transport mode %q", name)
		}
		if err := checkNonNegative("emissions_per_kg_km."+name, factor); err != nil {
			return nil, fmt.Errorf("logistics: %w", err)
		}
		factors[m] = factor
	}
	logistics, err := impact.NewLogistics(factors)
	if err != nil {
		return nil, fmt.Errorf("logistics: %w", err)
	}

	return &Config{
		Catalog:   impact.NewCatalog(records),
		Logistics: logistics,
		doc:       doc,
	}, nil
}

func (e FeedstockEntry) toFeedstock() (impact.Feedstock, error) {
	if strings.TrimSpace(e.Name) == "" {
		return impact.Feedstock{}, errors.New("name is required")
	}
	fields := []struct {
		name string
		val  *float64
	}{
		{"water_intensity_l_per_l", e.WaterIntensityLPerL},
		{"carbon_intensity_kg_per_l", e.CarbonIntensityKgL},
		{"avg_price_usd_per_l", e.AvgPriceUSDPerL},
		{"typical_yield_l_per_hectare", e.YieldLPerHectare},
		{"water_scarcity_index", e.WaterScarcityIndex},
	}
	for _, f := range fields {
		if f.val == nil {
			return impact.Feedstock{}, fmt.Errorf("%s is required", f.name)
		}
		if err := checkNonNegative(f.name, *f.val); err != nil {
			return impact.Feedstock{}, err
		}
	}
	return impact.Feedstock{
		Name:                e.Name,
		WaterIntensityLPerL: *e.WaterIntensityLPerL,
		CarbonIntensityKgL:  *e.CarbonIntensityKgL,
		PriceUSDPerL:        *e.AvgPriceUSDPerL,
		YieldLPerHectare:    *e.YieldLPerHectare,
		WaterScarcityIndex:  *e.WaterScarcityIndex,
	}, nil
}

func checkNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %g", name, v)
	}
	if v < 0 {
		return fmt.Errorf("%s must be >= 0, got %g", name, v)
	}
	return nil
}

// Document returns the canonicalized document the Config was built from.
func (c *Config) Document() Document { return c.doc }

// Dump writes the effective configuration as YAML.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.doc); err != nil {
		return err
	}
	return enc.Close()
}
