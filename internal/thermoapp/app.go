// internal/thermoapp/app.go
package thermoapp

import (
	"context"
	"io"
	"strconv"

	"moonshine-core/thermo"

	"moonshine/internal/appcore"
	"moonshine/internal/logging"
	"moonshine/internal/thermocli"
	"moonshine/internal/writers"
	"moonshine/pkg/api"
)

const name = "moonshine-thermo"

var examples = []string{
	"",
	"--tdp 500 --mix 0.5",
	"--leak-pct 0.1 --days 30,365,730",
	"--output json",
}

// Tool is the moonshine-thermo command.
var Tool = appcore.Tool[thermocli.Options]{
	Name:     name,
	Summary:  "steady-state power/flow analysis and composition drift of the still charge",
	Examples: examples,
	Parse:    thermocli.ParseArgs,
	Build:    Build,
}

// RunContext runs moonshine-thermo and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(ctx, argv, stdout, stderr, Tool)
}

// Build runs the still model for opts and assembles the report.
func Build(ctx context.Context, env appcore.Env, opts thermocli.Options) (writers.Report, error) {
	still, err := thermo.New(opts.Mix)
	if err != nil {
		return writers.Report{}, err
	}
	a, err := still.Analyze(opts.TDPWatts, opts.Efficiency)
	if err != nil {
		return writers.Report{}, err
	}
	env.Log.V(logging.DEBUG).Info("Analyzed still",
		"mix", opts.Mix, "latentHeatKJ", still.LatentHeat(), "densityKgM3", still.Density())

	data := api.ThermoReportV1{Analysis: api.AnalysisV1{
		Kind:            "analysis",
		MixFraction:     still.MixFraction(),
		TDPWatts:        opts.TDPWatts,
		Efficiency:      opts.Efficiency,
		MassFlowKgS:     a.MassFlowKgS,
		VolFlowMLMin:    a.VolFlowMLMin,
		RecoveredPowerW: a.RecoveredPowerW,
		BoilingPointC:   a.BoilingPointC,
		FlashPointC:     still.FlashPoint(),
	}}

	analysis := &writers.Section{
		Title: "analysis",
		Columns: []string{"mix_fraction", "tdp_w", "turbine_efficiency", "mass_flow_kg_s",
			"vol_flow_ml_min", "recovered_power_w", "boiling_point_c", "flash_point_c"},
	}
	an := data.Analysis
	analysis.Add(an,
		writers.F(an.MixFraction, 3), writers.F(an.TDPWatts, 1), writers.F(an.Efficiency, 3),
		strconv.FormatFloat(an.MassFlowKgS, 'g', 6, 64), writers.F(an.VolFlowMLMin, 2),
		writers.F(an.RecoveredPowerW, 2), writers.F(an.BoilingPointC, 2), writers.F(an.FlashPointC, 1))

	drift := &writers.Section{
		Title:   "drift",
		Columns: []string{"days", "leak_pct_per_day", "mix_fraction", "boiling_point_c", "status"},
	}
	for _, days := range opts.Days {
		if err := ctx.Err(); err != nil {
			return writers.Report{}, err
		}
		d, err := still.SimulateDrift(opts.LeakFraction(), days)
		if err != nil {
			return writers.Report{}, err
		}
		rec := api.DriftV1{
			Kind:                "drift",
			Days:                d.Days,
			LeakPctPerDay:       opts.LeakPct,
			MixFraction:         d.MixFraction,
			BoilingPointC:       d.BoilingPointC,
			RequiresMaintenance: d.RequiresMaintenance,
		}
		data.Drift = append(data.Drift, rec)
		drift.Add(rec,
			strconv.Itoa(rec.Days), writers.F(rec.LeakPctPerDay, 3), writers.F(rec.MixFraction, 4),
			writers.F(rec.BoilingPointC, 2), maintenanceStatus(rec.RequiresMaintenance))
	}
	if day, ok := firstFlush(data.Drift); ok {
		env.Warn("boiling point exceeds %.0f °C after %d days; the charge requires a flush",
			thermo.MaintenanceBoilingC, day)
	}

	return writers.Report{
		Sections: []*writers.Section{analysis, drift},
		Data:     data,
	}, nil
}

func maintenanceStatus(flush bool) string {
	if flush {
		return "REQUIRES_FLUSH"
	}
	return "OK"
}

func firstFlush(rows []api.DriftV1) (int, bool) {
	day, found := 0, false
	for _, r := range rows {
		if r.RequiresMaintenance && (!found || r.Days < day) {
			day, found = r.Days, true
		}
	}
	return day, found
}
