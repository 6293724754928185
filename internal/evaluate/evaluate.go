// Package evaluate scores candidate still architectures against a fixed set
// of design checks for one heat load and one feedstock sourcing choice.
package evaluate

import (
	"errors"
	"fmt"

	"moonshine-core/impact"
	"moonshine-core/thermo"
)

// Check names one design criterion.
type Check string

const (
	NetEnergySurplus    Check = "NET_ENERGY_SURPLUS"
	ThermalStability    Check = "THERMAL_STABILITY"
	EnvironmentalImpact Check = "ENVIRONMENTAL_IMPACT"
)

// Checks lists every criterion in report order.
var Checks = []Check{NetEnergySurplus, ThermalStability, EnvironmentalImpact}

// CarbonBudgetKg is the fill footprint below which ENVIRONMENTAL_IMPACT passes.
const CarbonBudgetKg = 10.0

// Option is one candidate architecture.
type Option struct {
	ID             string
	Name           string
	ParasiticLoadW float64
	// ForcedCirculation keeps the charge mixed; without it the mixture
	// fractionates and THERMAL_STABILITY fails.
	ForcedCirculation bool
}

// Architectures are the built-in candidates.
var Architectures = []Option{
	{ID: "A", Name: "Forced Circulation (Pump)", ParasiticLoadW: 12.0, ForcedCirculation: true},
	{ID: "B", Name: "Pumpless Ejector (Vapor-Jet)", ParasiticLoadW: 0},
	{ID: "C", Name: "Passive Thermosyphon (Gravity)", ParasiticLoadW: 0},
}

// Inputs fixes the operating point shared by every option.
type Inputs struct {
	TDPWatts          float64
	TurbineEfficiency float64
	Feedstock         string
	DistanceKm        float64
	Mode              impact.Mode
}

// Outcome is the result of one check for one option. Value carries the
// quantity the check compared: surplus watts, boiling point, or kg CO2e.
type Outcome struct {
	Option Option
	Check  Check
	Passed bool
	Value  float64
}

// Evaluation is the full result set, grouped by option in input order.
type Evaluation struct {
	Analysis thermo.Analysis
	Impact   impact.Result
	Outcomes []Outcome
}

// Passed reports whether every check passed for the option with id.
func (e Evaluation) Passed(id string) bool {
	found := false
	for _, o := range e.Outcomes {
		if o.Option.ID != id {
			continue
		}
		found = true
		if !o.Passed {
			return false
		}
	}
	return found
}

// Evaluate runs every check for each option.
func Evaluate(still *thermo.Still, an *impact.Analyzer, in Inputs, options []Option) (Evaluation, error) {
	if still == nil || an == nil {
		return Evaluation{}, errors.New("evaluate: still and analyzer are required")
	}
	a, err := still.Analyze(in.TDPWatts, in.TurbineEfficiency)
	if err != nil {
		return Evaluation{}, err
	}
	res, err := an.AnalyzeSource(in.Feedstock, in.DistanceKm, in.Mode)
	if err != nil {
		return Evaluation{}, fmt.Errorf("evaluate: %w", err)
	}

	ev := Evaluation{Analysis: a, Impact: res}
	for _, opt := range options {
		surplus := a.RecoveredPowerW - opt.ParasiticLoadW
		ev.Outcomes = append(ev.Outcomes,
			Outcome{Option: opt, Check: NetEnergySurplus, Passed: surplus > 0, Value: surplus},
			Outcome{Option: opt, Check: ThermalStability, Passed: opt.ForcedCirculation, Value: a.BoilingPointC},
			Outcome{Option: opt, Check: EnvironmentalImpact, Passed: res.TotalCarbonKg < CarbonBudgetKg, Value: res.TotalCarbonKg},
		)
	}
	return ev, nil
}
