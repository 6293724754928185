// internal/evalapp/app.go
package evalapp

import (
	"context"
	"fmt"
	"io"

	"moonshine-core/impact"
	"moonshine-core/thermo"

	"moonshine/internal/appcore"
	"moonshine/internal/evalcli"
	"moonshine/internal/evaluate"
	"moonshine/internal/sourcingapp"
	"moonshine/internal/writers"
	"moonshine/pkg/api"
)

const name = "moonshine-eval"

var examples = []string{
	"",
	"--tdp 60",
	"--feedstock SUGARCANE --distance 8200 --mode SHIP",
	"--output jsonl | jq 'select(.passed == false)'",
}

// Tool is the moonshine-eval command.
var Tool = appcore.Tool[evalcli.Options]{
	Name:        name,
	Summary:     "score still architectures on energy surplus, stability and sourcing footprint",
	Examples:    examples,
	NeedsConfig: true,
	Parse:       evalcli.ParseArgs,
	Build:       Build,
}

// RunContext runs moonshine-eval and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(ctx, argv, stdout, stderr, Tool)
}

// Build evaluates the built-in architectures at the operating point in opts.
func Build(ctx context.Context, env appcore.Env, opts evalcli.Options) (writers.Report, error) {
	if env.Config == nil {
		return writers.Report{}, fmt.Errorf("eval: no configuration loaded")
	}
	if !opts.ModeKnown() {
		env.Warn("unknown transport mode %q, using TRUCK", opts.ModeName)
	}
	still, err := thermo.New(opts.Mix)
	if err != nil {
		return writers.Report{}, err
	}
	an, err := impact.NewAnalyzer(opts.VolumeL, env.Config.Catalog, env.Config.Logistics)
	if err != nil {
		return writers.Report{}, err
	}
	ev, err := evaluate.Evaluate(still, an, evaluate.Inputs{
		TDPWatts:          opts.TDPWatts,
		TurbineEfficiency: opts.Efficiency,
		Feedstock:         opts.Feedstock,
		DistanceKm:        opts.DistanceKm,
		Mode:              opts.Mode,
	}, evaluate.Architectures)
	if err != nil {
		return writers.Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return writers.Report{}, err
	}

	data := api.EvalReportV1{
		Analysis: api.AnalysisV1{
			Kind:            "analysis",
			MixFraction:     still.MixFraction(),
			TDPWatts:        opts.TDPWatts,
			Efficiency:      opts.Efficiency,
			MassFlowKgS:     ev.Analysis.MassFlowKgS,
			VolFlowMLMin:    ev.Analysis.VolFlowMLMin,
			RecoveredPowerW: ev.Analysis.RecoveredPowerW,
			BoilingPointC:   ev.Analysis.BoilingPointC,
			FlashPointC:     still.FlashPoint(),
		},
		Impact: sourcingapp.ImpactRecord(opts.Feedstock, ev.Impact),
	}

	point := &writers.Section{
		Title:   "analysis",
		Columns: []string{"tdp_w", "mix_fraction", "recovered_power_w", "boiling_point_c", "flash_point_c"},
	}
	av := data.Analysis
	point.Add(av, writers.F(av.TDPWatts, 1), writers.F(av.MixFraction, 3),
		writers.F(av.RecoveredPowerW, 2), writers.F(av.BoilingPointC, 2), writers.F(av.FlashPointC, 1))

	fill := &writers.Section{Title: "impact", Columns: sourcingapp.ImpactColumns}
	fill.Add(data.Impact, sourcingapp.ImpactCells(data.Impact)...)

	checks := &writers.Section{
		Title:   "checks",
		Columns: []string{"option", "architecture", "check", "result", "value"},
	}
	for _, o := range ev.Outcomes {
		rec := api.DesignCheckV1{
			Kind:   "check",
			Option: o.Option.ID,
			Name:   o.Option.Name,
			Check:  string(o.Check),
			Passed: o.Passed,
			Value:  o.Value,
		}
		data.Checks = append(data.Checks, rec)
		checks.Add(rec, rec.Option, rec.Name, rec.Check, passFail(rec.Passed), writers.F(rec.Value, 2))
	}

	verdicts := &writers.Section{
		Title:   "verdict",
		Columns: []string{"option", "architecture", "result"},
	}
	for _, opt := range evaluate.Architectures {
		rec := api.VerdictV1{Kind: "verdict", Option: opt.ID, Name: opt.Name, Passed: ev.Passed(opt.ID)}
		data.Verdicts = append(data.Verdicts, rec)
		verdicts.Add(rec, rec.Option, rec.Name, passFail(rec.Passed))
	}

	return writers.Report{
		Sections: []*writers.Section{point, fill, checks, verdicts},
		Data:     data,
	}, nil
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
