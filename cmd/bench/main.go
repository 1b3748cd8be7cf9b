package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/docseg/internal/bench/engine"
	"github.com/DjordjeVuckovic/docseg/internal/bench/manifest"
	"github.com/DjordjeVuckovic/docseg/internal/bench/matching"
	"github.com/DjordjeVuckovic/docseg/internal/bench/report"
	"github.com/DjordjeVuckovic/docseg/internal/bench/runner"
	"github.com/DjordjeVuckovic/docseg/internal/bench/snapshot"
	"github.com/DjordjeVuckovic/docseg/internal/bench/spec"
	"github.com/DjordjeVuckovic/docseg/internal/bench/suite"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

func main() {
	cfg := parseFlags()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case "bench":
		runBench(ctx, cfg)
	case "manifest":
		runManifest(cfg)
	case "pairs":
		runPairs(cfg)
	case "snapshot":
		runSnapshot(ctx, cfg)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func runBench(ctx context.Context, cfg cliConfig) {
	runCfg := runner.Config{
		IoUThreshold: cfg.IoUThreshold,
		WarmupRuns:   cfg.Warmup,
		Runs:         max(cfg.Runs, 1),
		Concurrency:  cfg.Concurrency,
	}

	if cfg.SpecPath != "" {
		runWithSpec(ctx, cfg, runCfg)
	} else {
		runQuickMode(ctx, cfg, runCfg)
	}
}

func runWithSpec(ctx context.Context, cfg cliConfig, runCfg runner.Config) {
	bs, err := spec.LoadFromFile(cfg.SpecPath)
	if err != nil {
		slog.Error("Failed to load spec", "path", cfg.SpecPath, "error", err)
		os.Exit(1)
	}

	if bs.Runs.Warmup > 0 && cfg.Warmup == 0 {
		runCfg.WarmupRuns = bs.Runs.Warmup
	}
	if bs.Runs.Iterations > 0 && cfg.Runs <= 1 {
		runCfg.Runs = bs.Runs.Iterations
	}
	if cfg.Concurrency == 0 {
		runCfg.Concurrency = bs.Runs.Concurrency
	}
	if cfg.IoUThreshold == 0 {
		runCfg.IoUThreshold = bs.Metrics.IoUThreshold
	}

	segmenters, cleanup, err := engine.CreateFromSpec(bs.Systems)
	if err != nil {
		slog.Error("Failed to create segmenters", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	r := runner.New(runCfg)
	result, err := r.RunAll(ctx, bs, segmenters)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	outputReport(result, cfg.Output)
}

// runQuickMode scores every system that has predictions stored in the suite.
func runQuickMode(ctx context.Context, cfg cliConfig, runCfg runner.Config) {
	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	if cfg.SnapshotPath != "" {
		snap, err := snapshot.ReadFile(cfg.SnapshotPath)
		if err != nil {
			slog.Error("Failed to read snapshot", "path", cfg.SnapshotPath, "error", err)
			os.Exit(1)
		}
		loaded.Suite = snapshot.MergeIntoSuite(snap, loaded.Suite)
	}

	systemNames := loaded.Suite.Systems()
	if len(systemNames) == 0 {
		slog.Error("Suite has no predictions to score", "path", cfg.SuitePath)
		os.Exit(1)
	}

	systems := make(map[string]spec.System, len(systemNames))
	for _, name := range systemNames {
		systems[name] = spec.System{Type: spec.SystemTypeStatic}
	}
	segmenters, cleanup, err := engine.CreateFromSpec(systems)
	if err != nil {
		slog.Error("Failed to create segmenters", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	r := runner.New(runCfg)
	job := spec.Job{Name: "quick", Suite: cfg.SuitePath, Systems: systemNames}
	jr, err := r.RunJob(ctx, job, loaded, segmenters)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	outputReport(&runner.BenchmarkResult{Jobs: []*runner.JobResult{jr}, Config: r.Config()}, cfg.Output)
}

func outputReport(result *runner.BenchmarkResult, outputPath string) {
	rpt := report.Generate(result)
	report.WriteTable(rpt, os.Stdout)

	if outputPath != "" {
		if err := report.WriteJSON(rpt, outputPath); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", outputPath)
	}
}

func runManifest(cfg cliConfig) {
	if cfg.Truth == "" || cfg.Pred == "" {
		slog.Error("Manifest mode requires --truth and --pred")
		os.Exit(1)
	}

	truth := loadManifestSpans(cfg.Truth)
	pred := loadManifestSpans(cfg.Pred)
	scorePairs(truth, pred, cfg.IoUThreshold)
}

func loadManifestSpans(path string) []span.Span {
	m, err := manifest.LoadFromFile(path)
	if err != nil {
		slog.Error("Failed to load manifest", "path", path, "error", err)
		os.Exit(1)
	}
	spans, err := m.Spans()
	if err != nil {
		slog.Error("Failed to derive spans", "path", path, "error", err)
		os.Exit(1)
	}
	slog.Info("Manifest loaded", "path", path, "documents", len(spans), "pages", m.PageCount())
	return spans
}

func runPairs(cfg cliConfig) {
	truth, err := parseSpans(cfg.Truth)
	if err != nil {
		slog.Error("Invalid --truth", "error", err)
		os.Exit(1)
	}
	pred, err := parseSpans(cfg.Pred)
	if err != nil {
		slog.Error("Invalid --pred", "error", err)
		os.Exit(1)
	}
	scorePairs(truth, pred, cfg.IoUThreshold)
}

func scorePairs(truth, pred []span.Span, threshold float64) {
	if threshold == 0 {
		threshold = runner.DefaultConfig().IoUThreshold
	}

	scores, res, err := matching.Evaluate(truth, pred, threshold)
	if err != nil {
		slog.Error("Matching failed", "error", err)
		os.Exit(1)
	}

	if err := report.WritePairs(res, os.Stdout); err != nil {
		slog.Error("Failed to write pairs", "error", err)
		os.Exit(1)
	}
	slog.Info("Scores",
		"global_iou", scores.GlobalIoU,
		"mean_matched_iou", scores.MeanMatchedIoU,
		"precision", scores.Precision,
		"recall", scores.Recall,
		"f1", scores.F1,
		"iou_threshold", threshold,
	)
}

func runSnapshot(ctx context.Context, cfg cliConfig) {
	if cfg.SpecPath == "" || cfg.Output == "" {
		slog.Error("Snapshot mode requires --spec and --output")
		os.Exit(1)
	}

	bs, err := spec.LoadFromFile(cfg.SpecPath)
	if err != nil {
		slog.Error("Failed to load spec", "path", cfg.SpecPath, "error", err)
		os.Exit(1)
	}

	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	remote := make(map[string]spec.System)
	for name, sys := range bs.Systems {
		if sys.Type == spec.SystemTypeAPI {
			remote[name] = sys
		}
	}
	if len(remote) == 0 {
		slog.Error("Spec has no api systems to record")
		os.Exit(1)
	}

	segmenters, cleanup, err := engine.CreateFromSpec(remote)
	if err != nil {
		slog.Error("Failed to create segmenters", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	snap, err := snapshot.Collect(ctx, loaded.Suite, segmenters)
	if err != nil {
		slog.Error("Snapshot failed", "error", err)
		os.Exit(1)
	}
	if err := snapshot.WriteFile(snap, cfg.Output); err != nil {
		slog.Error("Failed to write snapshot", "error", err)
		os.Exit(1)
	}
	slog.Info("Snapshot written", "path", cfg.Output, "cases", len(snap.Cases), "systems", len(segmenters))
}
