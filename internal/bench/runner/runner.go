package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DjordjeVuckovic/docseg/internal/bench/engine"
	"github.com/DjordjeVuckovic/docseg/internal/bench/matching"
	"github.com/DjordjeVuckovic/docseg/internal/bench/spec"
	"github.com/DjordjeVuckovic/docseg/internal/bench/suite"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg.normalized()}
}

func (r *Runner) Config() Config { return r.config }

func (r *Runner) RunAll(
	ctx context.Context,
	bs *spec.BenchSpec,
	segmenters map[string]engine.Segmenter,
) (*BenchmarkResult, error) {
	br := &BenchmarkResult{Config: r.config}

	for _, job := range bs.Jobs {
		loaded, err := suite.LoadFromFile(job.Suite)
		if err != nil {
			return nil, fmt.Errorf("load suite for job %q: %w", job.Name, err)
		}

		jr, err := r.RunJob(ctx, job, loaded, segmenters)
		if err != nil {
			return nil, fmt.Errorf("run job %q: %w", job.Name, err)
		}
		br.Jobs = append(br.Jobs, jr)
	}

	return br, nil
}

func (r *Runner) RunJob(
	ctx context.Context,
	job spec.Job,
	loaded *suite.LoadedSuite,
	segmenters map[string]engine.Segmenter,
) (*JobResult, error) {
	jobSegmenters := make([]engine.Segmenter, 0, len(job.Systems))
	for _, name := range job.Systems {
		seg, ok := segmenters[name]
		if !ok {
			return nil, fmt.Errorf("segmenter %q not found", name)
		}
		jobSegmenters = append(jobSegmenters, seg)
	}

	cases := loaded.Suite.Cases
	perCase := make([]map[string]CaseResult, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Concurrency)

	for i := range cases {
		c := &cases[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perCase[i] = r.runCase(gctx, job.Name, c, jobSegmenters)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	jr := &JobResult{
		JobName:     job.Name,
		SuiteName:   loaded.Suite.Name,
		Results:     make(map[string]map[string]CaseResult, len(cases)),
		CaseOrder:   make([]string, 0, len(cases)),
		SystemNames: job.Systems,
	}
	for i, c := range cases {
		jr.CaseOrder = append(jr.CaseOrder, c.ID)
		jr.Results[c.ID] = perCase[i]
	}

	slog.Info("job finished", "job", job.Name, "cases", len(cases), "systems", len(jobSegmenters))
	return jr, nil
}

func (r *Runner) runCase(
	ctx context.Context,
	jobName string,
	c *suite.Case,
	segmenters []engine.Segmenter,
) map[string]CaseResult {
	results := make(map[string]CaseResult, len(segmenters))

	truth, truthErr := c.TruthSpans()
	if truthErr != nil {
		slog.Warn("resolve truth failed", "case", c.ID, "error", truthErr)
	}

	for _, seg := range segmenters {
		cr := CaseResult{
			CaseID:     c.ID,
			JobName:    jobName,
			SystemName: seg.Name(),
		}
		if truthErr != nil {
			cr.Error = truthErr
			results[seg.Name()] = cr
			continue
		}

		start := time.Now()
		pred, err := seg.Segment(ctx, c)
		cr.SegmentLatency = time.Since(start)
		if err != nil {
			cr.Error = fmt.Errorf("segment: %w", err)
			results[seg.Name()] = cr
			slog.Warn("segment failed", "case", c.ID, "system", seg.Name(), "error", err)
			continue
		}

		r.evaluate(&cr, truth, pred)
		if cr.Error != nil {
			slog.Warn("evaluate failed", "case", c.ID, "system", seg.Name(), "error", cr.Error)
		} else {
			slog.Debug("case scored", "case", c.ID, "system", seg.Name(), "global_iou", cr.Scores.GlobalIoU)
		}
		results[seg.Name()] = cr
	}

	return results
}

// evaluate matches the spans warmup+runs times and keeps the last outcome.
func (r *Runner) evaluate(cr *CaseResult, truth, pred []span.Span) {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _, _ = matching.Evaluate(truth, pred, r.config.IoUThreshold)
	}

	latencies := make([]time.Duration, 0, r.config.Runs)
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		scores, res, err := matching.Evaluate(truth, pred, r.config.IoUThreshold)
		latencies = append(latencies, time.Since(start))
		if err != nil {
			cr.Error = err
			return
		}
		cr.Scores = scores
		cr.Match = res
	}
	cr.Latency = ComputeLatencyStats(latencies)
}
