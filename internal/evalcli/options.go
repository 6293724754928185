// internal/evalcli/options.go
package evalcli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"

	"moonshine-core/impact"
	"moonshine-core/thermo"

	"moonshine/internal/clibase"
)

type Options struct {
	clibase.Common

	TDPWatts   float64
	Efficiency float64
	Mix        float64
	VolumeL    float64
	Feedstock  string
	DistanceKm float64
	Mode       impact.Mode
	ModeName   string
}

// ParseArgs registers evaluation flags on fs, parses argv and validates the result.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader := clibase.Register(fs, &o.Common)
	clibase.RegisterConfig(fs, &o.Common)

	fs.Float64Var(&o.TDPWatts, "tdp", 350, "heat load of the component in watts")
	fs.Float64Var(&o.Efficiency, "efficiency", thermo.DefaultTurbineEfficiency, "turbine efficiency (0..1]")
	fs.Float64Var(&o.Mix, "mix", thermo.DefaultMixFraction, "ethanol volume fraction of the charge [0..1]")
	fs.Float64Var(&o.VolumeL, "volume", 5.0, "fill volume in liters")
	fs.StringVar(&o.Feedstock, "feedstock", "CORN", "feedstock key of the fill")
	fs.Float64Var(&o.DistanceKm, "distance", 100, "shipping distance in km")
	fs.StringVar(&o.ModeName, "mode", "TRUCK", "transport mode: TRUCK | RAIL | SHIP")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if err := clibase.AfterParse(fs, &o.Common, noHeader); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	o.Feedstock = strings.ToUpper(strings.TrimSpace(o.Feedstock))
	o.ModeName = strings.ToUpper(strings.TrimSpace(o.ModeName))
	o.Mode, _ = impact.ParseMode(o.ModeName)

	switch {
	case !(o.TDPWatts > 0):
		return o, fmt.Errorf("--tdp must be > 0, got %g", o.TDPWatts)
	case !(o.Efficiency > 0) || o.Efficiency > 1:
		return o, fmt.Errorf("--efficiency must be in (0,1], got %g", o.Efficiency)
	case math.IsNaN(o.Mix) || o.Mix < 0 || o.Mix > 1:
		return o, fmt.Errorf("--mix must be in [0,1], got %g", o.Mix)
	case !(o.VolumeL > 0) || math.IsInf(o.VolumeL, 0):
		return o, fmt.Errorf("--volume must be > 0, got %g", o.VolumeL)
	case o.Feedstock == "":
		return o, fmt.Errorf("--feedstock is required")
	case math.IsNaN(o.DistanceKm) || math.IsInf(o.DistanceKm, 0) || o.DistanceKm < 0:
		return o, fmt.Errorf("--distance must be >= 0, got %g", o.DistanceKm)
	}
	return o, nil
}

// ModeKnown reports whether --mode named a real transport mode.
func (o Options) ModeKnown() bool {
	_, ok := impact.ParseMode(o.ModeName)
	return ok
}
