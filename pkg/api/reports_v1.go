// pkg/api/reports_v1.go
package api

// ReportV1 is the JSON/YAML envelope every tool writes.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	RunID   string `json:"run_id" yaml:"run_id"`
	Tool    string `json:"tool" yaml:"tool"`
	Version string `json:"version" yaml:"version"`
	Data    any    `json:"data" yaml:"data"`
}

// ThermoReportV1 is the data of moonshine-thermo.
type ThermoReportV1 struct {
	Analysis AnalysisV1 `json:"analysis" yaml:"analysis"`
	Drift    []DriftV1  `json:"drift,omitempty" yaml:"drift,omitempty"`
}

// AnalysisV1 is a steady-state still analysis.
type AnalysisV1 struct {
	Kind            string  `json:"kind" yaml:"kind"` // "analysis"
	MixFraction     float64 `json:"mix_fraction" yaml:"mix_fraction"`
	TDPWatts        float64 `json:"tdp_w" yaml:"tdp_w"`
	Efficiency      float64 `json:"turbine_efficiency" yaml:"turbine_efficiency"`
	MassFlowKgS     float64 `json:"mass_flow_kg_s" yaml:"mass_flow_kg_s"`
	VolFlowMLMin    float64 `json:"vol_flow_ml_min" yaml:"vol_flow_ml_min"`
	RecoveredPowerW float64 `json:"recovered_power_w" yaml:"recovered_power_w"`
	BoilingPointC   float64 `json:"boiling_point_c" yaml:"boiling_point_c"`
	FlashPointC     float64 `json:"flash_point_c" yaml:"flash_point_c"`
}

// DriftV1 is one composition-drift checkpoint.
type DriftV1 struct {
	Kind                string  `json:"kind" yaml:"kind"` // "drift"
	Days                int     `json:"days" yaml:"days"`
	LeakPctPerDay       float64 `json:"leak_pct_per_day" yaml:"leak_pct_per_day"`
	MixFraction         float64 `json:"mix_fraction" yaml:"mix_fraction"`
	BoilingPointC       float64 `json:"boiling_point_c" yaml:"boiling_point_c"`
	RequiresMaintenance bool    `json:"requires_maintenance" yaml:"requires_maintenance"`
}

// SourcingReportV1 is the data of moonshine-sourcing.
type SourcingReportV1 struct {
	Summary    SourcingSummaryV1 `json:"summary" yaml:"summary"`
	Scenarios  []ImpactV1        `json:"scenarios" yaml:"scenarios"`
	Best       []BestV1          `json:"best,omitempty" yaml:"best,omitempty"`
	Breakevens []BreakevenV1     `json:"breakevens,omitempty" yaml:"breakevens,omitempty"`
}

// SourcingSummaryV1 is the run-level part of a sourcing report.
type SourcingSummaryV1 struct {
	Kind         string  `json:"kind" yaml:"kind"` // "summary"
	ConfigSource string  `json:"config_source" yaml:"config_source"`
	VolumeL      float64 `json:"volume_l" yaml:"volume_l"`
	MixFraction  float64 `json:"mix_fraction" yaml:"mix_fraction"`
	FlashPointC  float64 `json:"flash_point_c" yaml:"flash_point_c"`
	TotalCostUSD string  `json:"total_cost_usd" yaml:"total_cost_usd"` // fixed 2 places
}

// ImpactV1 is the footprint of one sourcing scenario.
type ImpactV1 struct {
	Kind               string  `json:"kind" yaml:"kind"` // "impact"
	Scenario           string  `json:"scenario" yaml:"scenario"`
	FeedstockKey       string  `json:"feedstock_key" yaml:"feedstock_key"`
	Feedstock          string  `json:"feedstock" yaml:"feedstock"`
	Mode               string  `json:"mode" yaml:"mode"`
	DistanceKm         float64 `json:"distance_km" yaml:"distance_km"`
	ProductionCarbonKg float64 `json:"production_carbon_kg" yaml:"production_carbon_kg"`
	TransportCarbonKg  float64 `json:"transport_carbon_kg" yaml:"transport_carbon_kg"`
	TotalCarbonKg      float64 `json:"total_carbon_kg" yaml:"total_carbon_kg"`
	TotalWaterL        float64 `json:"total_water_l" yaml:"total_water_l"`
	WeightedWaterL     float64 `json:"weighted_water_l" yaml:"weighted_water_l"`
	TotalCostUSD       float64 `json:"total_cost_usd" yaml:"total_cost_usd"`
	CarbonPerL         float64 `json:"carbon_per_l" yaml:"carbon_per_l"`
}

// BestV1 names the winning scenario for one metric.
type BestV1 struct {
	Kind     string  `json:"kind" yaml:"kind"` // "best"
	Metric   string  `json:"metric" yaml:"metric"`
	Scenario string  `json:"scenario" yaml:"scenario"`
	Value    float64 `json:"value" yaml:"value"`
}

// BreakevenV1 compares feedstock B shipped by Mode against A at zero distance.
type BreakevenV1 struct {
	Kind            string  `json:"kind" yaml:"kind"` // "breakeven"
	FeedstockA      string  `json:"feedstock_a" yaml:"feedstock_a"`
	FeedstockB      string  `json:"feedstock_b" yaml:"feedstock_b"`
	Mode            string  `json:"mode" yaml:"mode"`
	CarbonKm        float64 `json:"carbon_breakeven_km" yaml:"carbon_breakeven_km"`
	WaterDeltaLPerL float64 `json:"water_delta_l_per_l" yaml:"water_delta_l_per_l"`
}

// EvalReportV1 is the data of moonshine-eval.
type EvalReportV1 struct {
	Analysis AnalysisV1      `json:"analysis" yaml:"analysis"`
	Impact   ImpactV1        `json:"impact" yaml:"impact"`
	Checks   []DesignCheckV1 `json:"checks" yaml:"checks"`
	Verdicts []VerdictV1     `json:"verdicts" yaml:"verdicts"`
}

// VerdictV1 says whether an architecture passed every check.
type VerdictV1 struct {
	Kind   string `json:"kind" yaml:"kind"` // "verdict"
	Option string `json:"option" yaml:"option"`
	Name   string `json:"name" yaml:"name"`
	Passed bool   `json:"passed" yaml:"passed"`
}

// DesignCheckV1 is one (architecture, check) outcome.
type DesignCheckV1 struct {
	Kind   string  `json:"kind" yaml:"kind"` // "check"
	Option string  `json:"option" yaml:"option"`
	Name   string  `json:"name" yaml:"name"`
	Check  string  `json:"check" yaml:"check"`
	Passed bool    `json:"passed" yaml:"passed"`
	Value  float64 `json:"value" yaml:"value"`
}
