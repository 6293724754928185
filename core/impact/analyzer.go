// core/impact/analyzer.go
// Carbon, water and cost accounting for a fixed shipment volume, plus
// closed-form breakeven comparisons between feedstocks.

package impact

import (
	"fmt"
	"math"
)

// Result is the footprint of sourcing one shipment.
type Result struct {
	Key                string
	Feedstock          string // display name
	Mode               Mode
	DistanceKm         float64
	ProductionCarbonKg float64
	TransportCarbonKg  float64
	TotalCarbonKg      float64
	TotalWaterL        float64
	WeightedWaterL     float64 // TotalWaterL scaled by the scarcity index
	TotalCostUSD       float64
	CarbonPerL         float64
}

// Analyzer evaluates sourcing options for a fixed volume.
type Analyzer struct {
	volumeL   float64
	catalog   *Catalog
	logistics *Logistics
}

// NewAnalyzer binds a shipment volume to a catalog and logistics table.
// The volume must be positive; it is the divisor of CarbonPerL.
func NewAnalyzer(volumeL float64, catalog *Catalog, logistics *Logistics) (*Analyzer, error) {
	if math.IsNaN(volumeL) || volumeL <= 0 {
		return nil, fmt.Errorf("%w: shipment volume must be > 0, got %g", ErrDivisionHazard, volumeL)
	}
	if catalog == nil || logistics == nil {
		return nil, fmt.Errorf("impact: analyzer needs a catalog and logistics table")
	}
	return &Analyzer{volumeL: volumeL, catalog: catalog, logistics: logistics}, nil
}

// VolumeL returns the batch volume in liters.
func (a *Analyzer) VolumeL() float64 { return a.volumeL }

// AnalyzeSource totals carbon, water and cost for sourcing key from
// distanceKm away by mode.
func (a *Analyzer) AnalyzeSource(key string, distanceKm float64, mode Mode) (Result, error) {
	f, err := a.catalog.Lookup(key)
	if err != nil {
		return Result{}, err
	}
	production := f.CarbonIntensityKgL * a.volumeL
	transport := a.logistics.TransportCarbon(a.volumeL, distanceKm, mode)
	total := production + transport
	water := f.WaterIntensityLPerL * a.volumeL
	return Result{
		Key:                key,
		Feedstock:          f.Name,
		Mode:               mode,
		DistanceKm:         distanceKm,
		ProductionCarbonKg: production,
		TransportCarbonKg:  transport,
		TotalCarbonKg:      total,
		TotalWaterL:        water,
		WeightedWaterL:     water * f.WaterScarcityIndex,
		TotalCostUSD:       f.PriceUSDPerL * a.volumeL,
		CarbonPerL:         total / a.volumeL,
	}, nil
}

// CarbonBreakevenKm returns how far b can travel by modeB before its total
// carbon equals a's at zero distance. Total carbon is linear in distance,
// so this is a direct solve. A result of 0 means b is never favorable.
func (a *Analyzer) CarbonBreakevenKm(keyA, keyB string, modeB Mode) (float64, error) {
	fa, err := a.catalog.Lookup(keyA)
	if err != nil {
		return 0, err
	}
	fb, err := a.catalog.Lookup(keyB)
	if err != nil {
		return 0, err
	}
	diff := fa.CarbonIntensityKgL - fb.CarbonIntensityKgL
	if diff <= 0 {
		return 0, nil
	}
	factor := a.logistics.FactorFor(modeB)
	if factor == 0 {
		return 0, fmt.Errorf("%w: emission factor for %s is zero", ErrDivisionHazard, modeB)
	}
	return diff / factor, nil
}

// WaterBreakevenDelta returns a's water intensity minus b's (L water per L
// ethanol). Shipping is assumed to consume no fresh water, so distance does
// not enter.
func (a *Analyzer) WaterBreakevenDelta(keyA, keyB string) (float64, error) {
	fa, err := a.catalog.Lookup(keyA)
	if err != nil {
		return 0, err
	}
	fb, err := a.catalog.Lookup(keyB)
	if err != nil {
		return 0, err
	}
	return fa.WaterIntensityLPerL - fb.WaterIntensityLPerL, nil
}
