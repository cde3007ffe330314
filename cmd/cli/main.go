package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"solar-string-sim/internal/analysis"
	"solar-string-sim/internal/config"
	"solar-string-sim/internal/data"
	"solar-string-sim/internal/model"
	"solar-string-sim/internal/sim"
	"solar-string-sim/internal/solver"
	"solar-string-sim/internal/sun"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	case "curve":
		cmdCurve(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --array examples/arrays/roof.json --solver full --out results/strings.csv")
	fmt.Println("  cli sweep --array examples/arrays/roof.json --config examples/config.yaml")
	fmt.Println("  cli curve --preset \"Maxeon Gen 3\" --ratio 1.0 --out results/curve.png")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate solves each string for its MPP under the array file's irradiance ratios")
	fmt.Println("  - sweep scores vehicle headings across a day of sun positions (quick estimator)")
	fmt.Println("  - curve renders a single cell's I-V and P-V traces to PNG")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	arrayPath := fs.String("array", "", "Path to array layout JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	solverName := fs.String("solver", "full", "Solver: full or quick")
	outPath := fs.String("out", "", "Optional output CSV path (e.g. results/strings.csv)")
	_ = fs.Parse(args)

	if *arrayPath == "" {
		fmt.Println("--array is required")
		os.Exit(2)
	}

	af, err := data.LoadArrayJSON(*arrayPath)
	if err != nil {
		panic(err)
	}

	fallback := loadFallbackPreset(*cfgPath)
	topos, err := data.BuildTopologies(af, fallback)
	if err != nil {
		panic(err)
	}

	sol, ok := solver.ByName(*solverName)
	if !ok {
		panic(fmt.Errorf("unsupported solver %q (choose from %v)", *solverName, solver.Names()))
	}

	result, err := sim.New().Run(topos, sol)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-4s %-12s %-6s %-10s %-8s %-8s %-9s %-9s %-4s\n",
		"idx", "name", "cells", "power(W)", "V", "A", "ideal(W)", "ratio", "byp")
	for _, r := range result.Rows {
		fmt.Printf("%-4d %-12s %-6d %-10.2f %-8.3f %-8.3f %-9.2f %-9.3f %-4d\n",
			r.Index, r.Name, r.CellCount, r.PowerOut, r.Voltage, r.Current,
			r.PowerIdeal, r.PowerRatio, r.CellsBypassed)
	}
	fmt.Printf("\nTotal: %.2fW of %.2fW ideal (%d/%d cells bypassed, solver=%s)\n",
		result.TotalPower, result.TotalIdeal, result.CellsBypassed, result.CellCount, result.Solver)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteStringsCSV(*outPath, result.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.Rows), *outPath)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	arrayPath := fs.String("array", "", "Path to array layout JSON (cells need normals)")
	cfgPath := fs.String("config", "", "Path to YAML config with a sweep section")
	top := fs.Int("top", 5, "Number of headings to print")
	_ = fs.Parse(args)

	if *arrayPath == "" {
		fmt.Println("--array is required")
		os.Exit(2)
	}

	af, err := data.LoadArrayJSON(*arrayPath)
	if err != nil {
		panic(err)
	}

	fallback := loadFallbackPreset(*cfgPath)
	strings, err := data.BuildSweepStrings(af, fallback)
	if err != nil {
		panic(err)
	}

	params := analysis.SweepParams{
		Site: sun.Settings{Latitude: 37.4, Longitude: -122.1, Month: 6, Day: 21},
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		if cfg.Sweep.Month != 0 {
			params.Site.Latitude = cfg.Sweep.Latitude
			params.Site.Longitude = cfg.Sweep.Longitude
			params.Site.Month = cfg.Sweep.Month
			params.Site.Day = cfg.Sweep.Day
		}
		params.StartHour = cfg.Sweep.StartHour
		params.Duration = cfg.Sweep.Duration
		params.TimeSamples = cfg.Sweep.TimeSamples
		params.HeadingSamples = cfg.Sweep.HeadingSamples
		params.IrradianceSTC = cfg.Sweep.Irradiance
	}

	res, err := analysis.RunDaySweep(strings, params)
	if err != nil {
		panic(err)
	}

	ranked := analysis.RankHeadings(res)
	fmt.Printf("Day energy (heading-averaged): %.1f Wh, peak %.1f W\n\n", res.EnergyWh, res.PeakPowerW)
	fmt.Printf("%-4s %-12s %-12s %-10s\n", "rank", "heading", "energy(Wh)", "peak(W)")
	for i, hr := range ranked {
		if i >= *top {
			break
		}
		fmt.Printf("%-4d %-12.1f %-12.1f %-10.1f\n", i+1, hr.HeadingDeg, hr.EnergyWh, hr.PeakPowerW)
	}

	fmt.Println("\nEnergy by hour:")
	for h := 0; h < 24; h++ {
		if res.EnergyByHour[h] > 0 {
			fmt.Printf("  %02d:00  %8.1f Wh\n", h, res.EnergyByHour[h])
		}
	}
}

func cmdCurve(args []string) {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	presetName := fs.String("preset", "Maxeon Gen 3", "Built-in cell preset name")
	cfgPath := fs.String("config", "", "Path to YAML config overriding the preset")
	ratio := fs.Float64("ratio", 1.0, "Irradiance ratio [0,1]")
	samples := fs.Int("samples", model.FullCurveSamples, "Curve sample count")
	outPath := fs.String("out", "", "Output PNG path (e.g. results/curve.png)")
	csvPath := fs.String("csv", "", "Optional output CSV path")
	_ = fs.Parse(args)

	params, ok := model.FindPreset(*presetName)
	if !ok {
		panic(fmt.Errorf("unknown cell preset %q", *presetName))
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Cell.ToModelParams()
	}

	curve := params.FullCurve(*ratio, *samples)
	fmt.Printf("%s @ ratio %.3f\n", params.Name, *ratio)
	fmt.Printf("  Voc=%.3fV Isc=%.3fA Vmp=%.3fV Imp=%.3fA\n", curve.Voc, curve.Isc, curve.Vmp, curve.Imp)
	fmt.Printf("  Pmp=%.3fW fill factor=%.3f\n", curve.Pmp(), curve.FillFactor())

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		title := fmt.Sprintf("%s (ratio %.2f)", params.Name, *ratio)
		if err := analysis.RenderCurvePNG(&curve, title, *outPath); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote plot: %s\n", *outPath)
	}
	if *csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(*csvPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteCurveCSV(*csvPath, &curve); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote CSV: %s\n", *csvPath)
	}
}

// loadFallbackPreset resolves the default cell preset, optionally overridden
// by a config file's cell section.
func loadFallbackPreset(cfgPath string) model.CellParams {
	if cfgPath == "" {
		return model.Presets[0]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	return cfg.Cell.ToModelParams()
}
