// Command steerfit fits the fixed inner/outer steering ratios to true
// Ackermann geometry for the configured wheelbase and track.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/garage/config"
	"github.com/pthm-cable/garage/vehicle"
)

// FitRecord is one logged evaluation.
type FitRecord struct {
	Eval  int     `csv:"eval"`
	Error float64 `csv:"rms_error_deg"`
	Inner float64 `csv:"inner_ratio"`
	Outer float64 `csv:"outer_ratio"`
}

// Fit runs Nelder-Mead from the parameter defaults and returns the best
// clamped vector and its error. onEval, if set, sees every evaluation.
func Fit(e Evaluator, params *ParamVector, maxEvals int, onEval func(raw []float64, err float64)) ([]float64, float64, error) {
	best := params.DefaultVector()
	bestErr := e.Evaluate(params, best)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			f := e.Evaluate(params, x)
			if onEval != nil {
				onEval(x, f)
			}
			if f < bestErr {
				bestErr = f
				best = params.Clamp(x)
			}
			return f
		},
	}
	settings := &optimize.Settings{FuncEvaluations: maxEvals}

	_, err := optimize.Minimize(problem, params.DefaultVector(), settings, &optimize.NelderMead{})
	return best, bestErr, err
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	samples := flag.Int("samples", 30, "Steering angles sampled per side")
	maxEvals := flag.Int("max-evals", 400, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for the evaluation log and fitted config")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	params := NewParamVector()
	eval := Evaluator{
		Wheelbase: cfg.Steering.Wheelbase,
		Track:     cfg.Steering.Track,
		MaxSteer:  cfg.Vehicle.MaxSteer,
		Samples:   *samples,
	}

	current := params.ExtractFromConfig(cfg)
	fmt.Printf("Wheelbase %.2f, track %.2f, max steer %.0f deg\n", eval.Wheelbase, eval.Track, eval.MaxSteer)
	fmt.Printf("Configured ratios %.3f / %.3f: RMS error %.3f deg\n",
		current[0], current[1], eval.Error(vehicle.Ackermann{InnerRatio: current[0], OuterRatio: current[1]}))

	var records []FitRecord
	best, bestErr, err := Fit(eval, params, *maxEvals, func(raw []float64, f float64) {
		v := params.Clamp(raw)
		records = append(records, FitRecord{Eval: len(records) + 1, Error: f, Inner: v[0], Outer: v[1]})
	})
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	fmt.Printf("\nFit complete after %d evaluations\n", len(records))
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.4f\n", spec.Name, best[i])
	}
	fmt.Printf("RMS error: %.3f deg\n", bestErr)

	if *outputDir == "" {
		return
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	logPath := filepath.Join(*outputDir, "steerfit_log.csv")
	f, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer f.Close()
	if err := gocsv.Marshal(records, f); err != nil {
		log.Printf("failed to write log: %v", err)
	}

	params.ApplyToConfig(cfg, best)
	configOutPath := filepath.Join(*outputDir, "fitted_config.yaml")
	if err := cfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write fitted config: %v", err)
	} else {
		fmt.Printf("\nFitted config saved to: %s\n", configOutPath)
	}
}
