package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

type cliConfig struct {
	SpecPath     string
	SuitePath    string
	SnapshotPath string
	Mode         string
	Truth        string
	Pred         string
	IoUThreshold float64
	Warmup       int
	Runs         int
	Concurrency  int
	Output       string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to bench spec YAML (multi-job mode)")
	flag.StringVar(&cfg.SuitePath, "suite", "configs/bench/smoke.yaml", "Path to bench suite YAML (quick single-job mode)")
	flag.StringVar(&cfg.SnapshotPath, "snapshot", "", "Recorded predictions to merge into the suite (quick mode)")
	flag.StringVar(&cfg.Mode, "mode", "bench", "Run mode: bench, manifest, pairs, or snapshot")
	flag.StringVar(&cfg.Truth, "truth", "", "Ground truth: manifest JSON path (manifest mode) or spans like 0-1,2-5 (pairs mode)")
	flag.StringVar(&cfg.Pred, "pred", "", "Prediction: manifest JSON path (manifest mode) or spans like 0-3,4-5 (pairs mode)")
	flag.Float64Var(&cfg.IoUThreshold, "iou", 0, "IoU threshold for a true positive (default 0.5)")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs before measurement")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of measured matching iterations per case")
	flag.IntVar(&cfg.Concurrency, "concurrency", 0, "Cases evaluated in parallel (default 4)")
	flag.StringVar(&cfg.Output, "output", "", "Output path (JSON report, or snapshot YAML in snapshot mode)")

	flag.Parse()
	return cfg
}

// parseSpans reads a comma-separated list of start-end page ranges.
// A single page may be given as one number.
func parseSpans(s string) ([]span.Span, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []span.Span{}, nil
	}

	parts := strings.Split(s, ",")
	out := make([]span.Span, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		startStr, endStr, found := strings.Cut(p, "-")
		if !found {
			endStr = startStr
		}
		start, err := strconv.Atoi(strings.TrimSpace(startStr))
		if err != nil {
			return nil, fmt.Errorf("invalid span %q: %w", p, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(endStr))
		if err != nil {
			return nil, fmt.Errorf("invalid span %q: %w", p, err)
		}
		out = append(out, span.New(start, end))
	}
	return out, span.ValidateAll(out)
}
