// internal/sourcingapp/app.go
package sourcingapp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"moonshine-core/impact"
	"moonshine-core/thermo"

	"moonshine/internal/appcore"
	"moonshine/internal/logging"
	"moonshine/internal/sourcingcli"
	"moonshine/internal/writers"
	"moonshine/pkg/api"
)

const name = "moonshine-sourcing"

var examples = []string{
	"",
	"--volume 20 --scenario 'Nearby Beet:SUGAR_BEET:40:TRUCK'",
	"--breakeven CORN:POTATO:RAIL --breakeven CORN:CELLULOSIC",
	"--config feedstocks.yaml --output yaml",
	"--dump-config > feedstocks.yaml",
}

// Tool is the moonshine-sourcing command.
var Tool = appcore.Tool[sourcingcli.Options]{
	Name:        name,
	Summary:     "carbon, water and cost of feedstock sourcing scenarios",
	Examples:    examples,
	NeedsConfig: true,
	Parse:       sourcingcli.ParseArgs,
	Build:       Build,
}

// RunContext runs moonshine-sourcing and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.Run(ctx, argv, stdout, stderr, Tool)
}

// Build prices every scenario, picks the best per metric and solves the
// requested breakevens.
func Build(ctx context.Context, env appcore.Env, opts sourcingcli.Options) (writers.Report, error) {
	if env.Config == nil {
		return writers.Report{}, errors.New("sourcing: no configuration loaded")
	}
	still, err := thermo.New(opts.Mix)
	if err != nil {
		return writers.Report{}, err
	}
	an, err := impact.NewAnalyzer(opts.VolumeL, env.Config.Catalog, env.Config.Logistics)
	if err != nil {
		return writers.Report{}, err
	}

	var data api.SourcingReportV1

	scenarios := &writers.Section{Title: "scenarios", Columns: ImpactColumns}
	results := make([]impact.Result, 0, len(opts.Scenarios))
	total := decimal.Zero
	for _, s := range opts.Scenarios {
		if err := ctx.Err(); err != nil {
			return writers.Report{}, err
		}
		if !s.ModeKnown() {
			env.Warn("scenario %q: unknown transport mode %q, using TRUCK", s.Name, s.ModeName)
		}
		res, err := an.AnalyzeSource(s.Key, s.DistanceKm, s.Mode)
		if err != nil {
			return writers.Report{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		results = append(results, res)
		total = total.Add(decimal.NewFromFloat(res.TotalCostUSD))

		rec := ImpactRecord(s.Name, res)
		data.Scenarios = append(data.Scenarios, rec)
		scenarios.Add(rec, ImpactCells(rec)...)
	}
	env.Log.V(logging.DEBUG).Info("Priced scenarios", "count", len(results), "volumeL", an.VolumeL())

	data.Summary = api.SourcingSummaryV1{
		Kind:         "summary",
		ConfigSource: env.Config.Source,
		VolumeL:      an.VolumeL(),
		MixFraction:  still.MixFraction(),
		FlashPointC:  still.FlashPoint(),
		TotalCostUSD: total.StringFixed(2),
	}
	summary := &writers.Section{
		Title:   "summary",
		Columns: []string{"volume_l", "mix_fraction", "flash_point_c", "total_cost_usd", "config"},
	}
	sm := data.Summary
	summary.Add(sm, writers.F(sm.VolumeL, 2), writers.F(sm.MixFraction, 3),
		writers.F(sm.FlashPointC, 1), sm.TotalCostUSD, sm.ConfigSource)

	best := &writers.Section{Title: "best", Columns: []string{"metric", "scenario", "value"}}
	if b, ok := impact.Compare(results); ok {
		for _, pick := range []struct {
			metric string
			idx    int
			value  func(impact.Result) float64
			prec   int
		}{
			{"carbon_kg", b.Carbon, func(r impact.Result) float64 { return r.TotalCarbonKg }, 2},
			{"weighted_water_l", b.WeightedWater, func(r impact.Result) float64 { return r.WeightedWaterL }, 1},
			{"cost_usd", b.Cost, func(r impact.Result) float64 { return r.TotalCostUSD }, 2},
		} {
			rec := api.BestV1{
				Kind:     "best",
				Metric:   pick.metric,
				Scenario: opts.Scenarios[pick.idx].Name,
				Value:    pick.value(results[pick.idx]),
			}
			data.Best = append(data.Best, rec)
			best.Add(rec, rec.Metric, rec.Scenario, writers.F(rec.Value, pick.prec))
		}
	}

	breakevens := &writers.Section{
		Title:   "breakeven",
		Columns: []string{"feedstock_a", "feedstock_b", "mode", "carbon_breakeven_km", "water_delta_l_per_l"},
	}
	for _, be := range opts.Breakevens {
		if !be.ModeKnown() {
			env.Warn("breakeven %s:%s: unknown transport mode %q, using TRUCK", be.A, be.B, be.ModeName)
		}
		km, err := an.CarbonBreakevenKm(be.A, be.B, be.Mode)
		if errors.Is(err, impact.ErrDivisionHazard) {
			env.Warn("breakeven %s:%s: %v; skipped", be.A, be.B, err)
			continue
		}
		if err != nil {
			return writers.Report{}, fmt.Errorf("breakeven %s:%s: %w", be.A, be.B, err)
		}
		delta, err := an.WaterBreakevenDelta(be.A, be.B)
		if err != nil {
			return writers.Report{}, fmt.Errorf("breakeven %s:%s: %w", be.A, be.B, err)
		}
		rec := api.BreakevenV1{
			Kind:            "breakeven",
			FeedstockA:      be.A,
			FeedstockB:      be.B,
			Mode:            be.Mode.String(),
			CarbonKm:        km,
			WaterDeltaLPerL: delta,
		}
		data.Breakevens = append(data.Breakevens, rec)
		breakevens.Add(rec, rec.FeedstockA, rec.FeedstockB, rec.Mode,
			writers.F(rec.CarbonKm, 0), writers.F(rec.WaterDeltaLPerL, 2))
	}

	return writers.Report{
		Sections: []*writers.Section{summary, scenarios, best, breakevens},
		Data:     data,
	}, nil
}
