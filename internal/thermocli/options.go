// internal/thermocli/options.go
package thermocli

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"

	"moonshine-core/thermo"

	"moonshine/internal/clibase"
)

// Default drift checkpoints, in days.
var DefaultDays = []int{30, 90, 180, 365}

type Options struct {
	clibase.Common

	Mix        float64
	TDPWatts   float64
	Efficiency float64
	LeakPct    float64 // percent of charge volume per day
	Days       []int
}

// LeakFraction converts --leak-pct into the per-day fraction the still model takes.
func (o Options) LeakFraction() float64 { return o.LeakPct / 100.0 }

// ParseArgs registers thermo flags on fs, parses argv and validates the result.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader := clibase.Register(fs, &o.Common)

	fs.Float64Var(&o.Mix, "mix", thermo.DefaultMixFraction, "ethanol volume fraction of the charge [0..1]")
	fs.Float64Var(&o.TDPWatts, "tdp", 350, "heat load of the component in watts")
	fs.Float64Var(&o.Efficiency, "efficiency", thermo.DefaultTurbineEfficiency, "turbine efficiency (0..1]")
	fs.Float64Var(&o.LeakPct, "leak-pct", 0.5, "vapor leak, percent of charge volume per day")
	fs.IntSliceVar(&o.Days, "days", DefaultDays, "drift checkpoints in days (repeatable or comma separated)")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if err := clibase.AfterParse(fs, &o.Common, noHeader); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return o, validate(o)
}

func validate(o Options) error {
	switch {
	case math.IsNaN(o.Mix) || o.Mix < 0 || o.Mix > 1:
		return fmt.Errorf("--mix must be in [0,1], got %g", o.Mix)
	case !(o.TDPWatts > 0):
		return fmt.Errorf("--tdp must be > 0, got %g", o.TDPWatts)
	case !(o.Efficiency > 0) || o.Efficiency > 1:
		return fmt.Errorf("--efficiency must be in (0,1], got %g", o.Efficiency)
	case math.IsNaN(o.LeakPct) || o.LeakPct < 0 || o.LeakPct > 100:
		return fmt.Errorf("--leak-pct must be in [0,100], got %g", o.LeakPct)
	}
	for _, d := range o.Days {
		if d < 0 {
			return fmt.Errorf("--days must be >= 0, got %d", d)
		}
	}
	return nil
}
