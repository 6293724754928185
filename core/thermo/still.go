// core/thermo/still.go
// Steady-state and drift model for an ethanol/water still driven by
// component waste heat.
//
// Units: latent heat in kJ/kg, density in kg/m³, power in W, temperatures in °C.
// Mixture properties are linear volume-weighted averages of the pure
// components, not a rigorous mixing rule.
//
// This package has no app/output deps.

package thermo

import (
	"errors"
	"fmt"
	"math"

	"moonshine-core/phase"
)

// Pure-component constants.
const (
	LatentHeatEthanol = 841.0  // kJ/kg
	LatentHeatWater   = 2260.0 // kJ/kg
	DensityEthanol    = 789.0  // kg/m³
	DensityWater      = 997.0  // kg/m³
)

// Defaults used by the drivers.
const (
	DefaultMixFraction       = 0.60
	DefaultTurbineEfficiency = 0.15
)

// Drift model constants. Unvalidated modeling assumptions carried at fixed
// values: leaking vapor is 1.5x richer in ethanol than the liquid, and the
// charge needs a flush once its boiling point passes 85 °C.
const (
	VaporEnrichment     = 1.5
	MaintenanceBoilingC = 85.0
)

var (
	ErrInvalidMixtureFraction = errors.New("thermo: mixture fraction must be within [0,1]")
	ErrInvalidInput           = errors.New("thermo: input out of valid bounds")
)

// Still holds a fixed mixture and the properties derived from it.
type Still struct {
	mix          float64
	latentHeatKJ float64 // kJ/kg
	densityKgM3  float64
}

// Analysis is the steady-state result for a given heat input.
type Analysis struct {
	MassFlowKgS     float64
	VolFlowMLMin    float64
	RecoveredPowerW float64
	BoilingPointC   float64
}

// Drift is the outcome of a composition-drift simulation.
type Drift struct {
	Days                int
	MixFraction         float64
	BoilingPointC       float64
	RequiresMaintenance bool
}

// New returns a Still for the given ethanol volume fraction.
func New(mix float64) (*Still, error) {
	if math.IsNaN(mix) || mix < 0 || mix > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidMixtureFraction, mix)
	}
	return &Still{
		mix:          mix,
		latentHeatKJ: mix*LatentHeatEthanol + (1-mix)*LatentHeatWater,
		densityKgM3:  mix*DensityEthanol + (1-mix)*DensityWater,
	}, nil
}

// MixFraction returns the ethanol mass fraction of the wash.
func (s *Still) MixFraction() float64 { return s.mix }

// LatentHeat returns the weighted latent heat of vaporization (kJ/kg).
func (s *Still) LatentHeat() float64 { return s.latentHeatKJ }

// Density returns the weighted liquid density (kg/m³).
func (s *Still) Density() float64 { return s.densityKgM3 }

// BoilingPoint returns the wash boiling point in °C.
func (s *Still) BoilingPoint() float64 { return phase.BoilingCurve().Lookup(s.mix) }

// FlashPoint returns the wash flash point in °C.
func (s *Still) FlashPoint() float64 { return phase.FlashCurve().Lookup(s.mix) }

// Analyze computes the vapor flow needed to carry tdpWatts of heat and the
// power a turbine of the given efficiency recovers from it.
func (s *Still) Analyze(tdpWatts, turbineEfficiency float64) (Analysis, error) {
	if !(tdpWatts > 0) || math.IsInf(tdpWatts, 0) {
		return Analysis{}, fmt.Errorf("%w: thermal power must be > 0, got %g", ErrInvalidInput, tdpWatts)
	}
	if !(turbineEfficiency > 0 && turbineEfficiency <= 1) {
		return Analysis{}, fmt.Errorf("%w: turbine efficiency must be in (0,1], got %g", ErrInvalidInput, turbineEfficiency)
	}
	massFlow := tdpWatts / (s.latentHeatKJ * 1000) // kg/s
	volM3s := massFlow / s.densityKgM3
	return Analysis{
		MassFlowKgS:     massFlow,
		VolFlowMLMin:    volM3s * 1e6 * 60,
		RecoveredPowerW: tdpWatts * turbineEfficiency,
		BoilingPointC:   s.BoilingPoint(),
	}, nil
}

// SimulateDrift steps the liquid composition one day at a time while vapor
// leaks at leakFractionPerDay of the charge volume. The Still itself is not
// modified.
func (s *Still) SimulateDrift(leakFractionPerDay float64, days int) (Drift, error) {
	if math.IsNaN(leakFractionPerDay) || leakFractionPerDay < 0 || leakFractionPerDay > 1 {
		return Drift{}, fmt.Errorf("%w: leak rate must be in [0,1] per day, got %g", ErrInvalidInput, leakFractionPerDay)
	}
	if days < 0 {
		return Drift{}, fmt.Errorf("%w: day count must be >= 0, got %d", ErrInvalidInput, days)
	}
	mix := s.mix
	for d := 0; d < days && mix > 0; d++ {
		mix -= leakFractionPerDay * mix * VaporEnrichment
		// Clamp every step; a rate above 1/VaporEnrichment overshoots zero.
		mix = math.Max(0, mix)
	}
	bp := phase.BoilingCurve().Lookup(mix)
	return Drift{
		Days:                days,
		MixFraction:         mix,
		BoilingPointC:       bp,
		RequiresMaintenance: bp > MaintenanceBoilingC,
	}, nil
}
