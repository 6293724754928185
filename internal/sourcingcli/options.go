// internal/sourcingcli/options.go
package sourcingcli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"moonshine-core/impact"
	"moonshine-core/thermo"

	"moonshine/internal/clibase"
)

// Scenario is one (feedstock, distance, mode) sourcing option to price.
type Scenario struct {
	Name       string
	Key        string
	DistanceKm float64
	Mode       impact.Mode
	// ModeName is the mode as written; it differs from Mode.String() when an
	// unknown mode fell back to TRUCK.
	ModeName string
}

// ModeKnown reports whether ModeName named a real transport mode.
func (s Scenario) ModeKnown() bool {
	_, ok := impact.ParseMode(s.ModeName)
	return ok
}

// Breakeven asks how far B may travel by Mode before it loses its carbon
// advantage over a zero-distance A.
type Breakeven struct {
	A, B     string
	Mode     impact.Mode
	ModeName string
}

// ModeKnown reports whether ModeName named a real transport mode.
func (b Breakeven) ModeKnown() bool {
	_, ok := impact.ParseMode(b.ModeName)
	return ok
}

// DefaultScenarios is the reference 5 L fill comparison.
var DefaultScenarios = []Scenario{
	{Name: "Local Corn (Truck 100km)", Key: "CORN", DistanceKm: 100, Mode: impact.ModeTruck, ModeName: "TRUCK"},
	{Name: "Distant Sugar Beet (Rail 1000km)", Key: "SUGAR_BEET", DistanceKm: 1000, Mode: impact.ModeRail, ModeName: "RAIL"},
	{Name: "Imported Sugarcane (Ship 8000km + Truck 200km)", Key: "SUGARCANE", DistanceKm: 8200, Mode: impact.ModeShip, ModeName: "SHIP"},
	{Name: "Local Cellulosic (Truck 50km)", Key: "CELLULOSIC", DistanceKm: 50, Mode: impact.ModeTruck, ModeName: "TRUCK"},
	{Name: "Regional Potato (Truck 500km)", Key: "POTATO", DistanceKm: 500, Mode: impact.ModeTruck, ModeName: "TRUCK"},
}

// DefaultBreakevens are evaluated when no --breakeven is given.
var DefaultBreakevens = []Breakeven{
	{A: "CORN", B: "SUGAR_BEET", Mode: impact.ModeRail, ModeName: "RAIL"},
	{A: "CORN", B: "SUGAR_BEET", Mode: impact.ModeTruck, ModeName: "TRUCK"},
	{A: "CORN", B: "SUGARCANE", Mode: impact.ModeShip, ModeName: "SHIP"},
}

type Options struct {
	clibase.Common

	VolumeL    float64
	Mix        float64
	NoDefaults bool

	Scenarios  []Scenario
	Breakevens []Breakeven
}

// ParseArgs registers sourcing flags on fs, parses argv and validates the result.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var (
		o          Options
		scenarios  []string
		breakevens []string
	)
	noHeader := clibase.Register(fs, &o.Common)
	clibase.RegisterConfig(fs, &o.Common)

	fs.Float64Var(&o.VolumeL, "volume", 5.0, "fill volume in liters")
	fs.Float64Var(&o.Mix, "mix", thermo.DefaultMixFraction, "target ethanol fraction, for the flash-point note")
	fs.StringArrayVar(&scenarios, "scenario", nil, "extra scenario NAME:KEY:DIST_KM[:MODE] (repeatable)")
	fs.BoolVar(&o.NoDefaults, "no-default-scenarios", false, "price only the --scenario entries")
	fs.StringArrayVar(&breakevens, "breakeven", nil, "carbon breakeven A:B[:MODE] (repeatable; replaces the defaults)")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if err := clibase.AfterParse(fs, &o.Common, noHeader); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if !(o.VolumeL > 0) || math.IsInf(o.VolumeL, 0) {
		return o, fmt.Errorf("--volume must be > 0, got %g", o.VolumeL)
	}
	if math.IsNaN(o.Mix) || o.Mix < 0 || o.Mix > 1 {
		return o, fmt.Errorf("--mix must be in [0,1], got %g", o.Mix)
	}

	if !o.NoDefaults {
		o.Scenarios = append(o.Scenarios, DefaultScenarios...)
	}
	for _, raw := range scenarios {
		s, err := ParseScenario(raw)
		if err != nil {
			return o, err
		}
		o.Scenarios = append(o.Scenarios, s)
	}
	if len(o.Scenarios) == 0 {
		return o, fmt.Errorf("no scenarios: give --scenario or drop --no-default-scenarios")
	}

	if len(breakevens) == 0 {
		o.Breakevens = append(o.Breakevens, DefaultBreakevens...)
	}
	for _, raw := range breakevens {
		b, err := ParseBreakeven(raw)
		if err != nil {
			return o, err
		}
		o.Breakevens = append(o.Breakevens, b)
	}
	return o, nil
}

// ParseScenario parses NAME:KEY:DIST_KM[:MODE]. MODE defaults to TRUCK and
// an unknown MODE is kept in ModeName while Mode falls back to TRUCK.
func ParseScenario(raw string) (Scenario, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Scenario{}, fmt.Errorf("--scenario %q: want NAME:KEY:DIST_KM[:MODE]", raw)
	}
	name := strings.TrimSpace(parts[0])
	key := strings.ToUpper(strings.TrimSpace(parts[1]))
	if name == "" || key == "" {
		return Scenario{}, fmt.Errorf("--scenario %q: empty name or feedstock key", raw)
	}
	dist, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil || math.IsNaN(dist) || math.IsInf(dist, 0) || dist < 0 {
		return Scenario{}, fmt.Errorf("--scenario %q: bad distance %q", raw, parts[2])
	}
	modeName := "TRUCK"
	if len(parts) == 4 {
		modeName = strings.ToUpper(strings.TrimSpace(parts[3]))
	}
	mode, _ := impact.ParseMode(modeName)
	return Scenario{Name: name, Key: key, DistanceKm: dist, Mode: mode, ModeName: modeName}, nil
}

// ParseBreakeven parses A:B[:MODE]. MODE defaults to TRUCK.
func ParseBreakeven(raw string) (Breakeven, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Breakeven{}, fmt.Errorf("--breakeven %q: want A:B[:MODE]", raw)
	}
	a := strings.ToUpper(strings.TrimSpace(parts[0]))
	b := strings.ToUpper(strings.TrimSpace(parts[1]))
	if a == "" || b == "" {
		return Breakeven{}, fmt.Errorf("--breakeven %q: empty feedstock key", raw)
	}
	modeName := "TRUCK"
	if len(parts) == 3 {
		modeName = strings.ToUpper(strings.TrimSpace(parts[2]))
	}
	mode, _ := impact.ParseMode(modeName)
	return Breakeven{A: a, B: b, Mode: mode, ModeName: modeName}, nil
}
