// internal/sourcingapp/api_conv.go
package sourcingapp

import (
	"moonshine-core/impact"

	"moonshine/internal/writers"
	"moonshine/pkg/api"
)

// ImpactRecord converts an analyzer result to its v1 wire form.
func ImpactRecord(scenario string, r impact.Result) api.ImpactV1 {
	return api.ImpactV1{
		Kind:               "impact",
		Scenario:           scenario,
		FeedstockKey:       r.Key,
		Feedstock:          r.Feedstock,
		Mode:               r.Mode.String(),
		DistanceKm:         r.DistanceKm,
		ProductionCarbonKg: r.ProductionCarbonKg,
		TransportCarbonKg:  r.TransportCarbonKg,
		TotalCarbonKg:      r.TotalCarbonKg,
		TotalWaterL:        r.TotalWaterL,
		WeightedWaterL:     r.WeightedWaterL,
		TotalCostUSD:       r.TotalCostUSD,
		CarbonPerL:         r.CarbonPerL,
	}
}

// ImpactColumns heads the rows produced by ImpactCells.
var ImpactColumns = []string{
	"scenario", "feedstock", "mode", "distance_km",
	"co2_kg", "water_l", "weighted_water_l", "cost_usd",
}

// ImpactCells renders one impact record as a TSV row.
func ImpactCells(r api.ImpactV1) []string {
	return []string{
		r.Scenario, r.FeedstockKey, r.Mode, writers.F(r.DistanceKm, 0),
		writers.F(r.TotalCarbonKg, 2), writers.F(r.TotalWaterL, 1),
		writers.F(r.WeightedWaterL, 1), writers.F(r.TotalCostUSD, 2),
	}
}
