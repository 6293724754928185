package impact

// Best holds the index of the lowest-scoring result per metric.
type Best struct {
	Carbon        int
	WeightedWater int
	Cost          int
}

// Compare picks the lowest total carbon, weighted water and cost across
// results. Ties keep the earliest entry. It returns ok=false for no results.
func Compare(results []Result) (best Best, ok bool) {
	if len(results) == 0 {
		return Best{-1, -1, -1}, false
	}
	for i := 1; i < len(results); i++ {
		r := results[i]
		if r.TotalCarbonKg < results[best.Carbon].TotalCarbonKg {
			best.Carbon = i
		}
		if r.WeightedWaterL < results[best.WeightedWater].WeightedWaterL {
			best.WeightedWater = i
		}
		if r.TotalCostUSD < results[best.Cost].TotalCostUSD {
			best.Cost = i
		}
	}
	return best, true
}
