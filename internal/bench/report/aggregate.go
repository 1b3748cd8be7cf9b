package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/docseg/internal/bench/runner"
	"github.com/DjordjeVuckovic/docseg/pkg/utils"
)

const scoreDecimals = 6

func Generate(br *runner.BenchmarkResult) *Report {
	r := &Report{
		Meta: BenchMeta{
			RunID:       uuid.New(),
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			IoUThreshold: br.Config.IoUThreshold,
			WarmupRuns:   br.Config.WarmupRuns,
			Runs:         br.Config.Runs,
			Concurrency:  br.Config.Concurrency,
		},
	}

	for _, jr := range br.Jobs {
		r.Jobs = append(r.Jobs, generateJob(jr))
	}
	return r
}

func generateJob(jr *runner.JobResult) JobReport {
	rep := JobReport{
		JobName:   jr.JobName,
		SuiteName: jr.SuiteName,
	}

	for _, caseID := range jr.CaseOrder {
		for _, sys := range jr.SystemNames {
			cr, ok := jr.Results[caseID][sys]
			if !ok {
				continue
			}
			entry := Entry{
				CaseID:         caseID,
				SystemName:     sys,
				GlobalIoU:      round(cr.Scores.GlobalIoU),
				MeanMatchedIoU: round(cr.Scores.MeanMatchedIoU),
				Precision:      round(cr.Scores.Precision),
				Recall:         round(cr.Scores.Recall),
				F1:             round(cr.Scores.F1),
				ExactMatches:   cr.Scores.ExactMatches,
				TrueCount:      cr.Scores.TrueCount,
				PredCount:      cr.Scores.PredCount,
				Latency:        fromRunnerLatencyStats(cr.Latency),
			}
			if cr.Error != nil {
				entry.Error = cr.Error.Error()
			}
			rep.PerCase = append(rep.PerCase, entry)
		}
	}

	rep.Aggregated = aggregate(jr)
	return rep
}

// aggregate averages scores over the cases each system scored without error.
func aggregate(jr *runner.JobResult) []AggregatedEntry {
	entries := make([]AggregatedEntry, 0, len(jr.SystemNames))

	for _, sys := range jr.SystemNames {
		agg := AggregatedEntry{SystemName: sys}
		var latencies []runner.LatencyStats
		counted := 0

		for _, caseID := range jr.CaseOrder {
			cr, ok := jr.Results[caseID][sys]
			if !ok {
				continue
			}
			agg.CaseCount++

			if cr.Error != nil {
				agg.ErrorCount++
				continue
			}

			counted++
			agg.GlobalIoU += cr.Scores.GlobalIoU
			agg.MeanMatchedIoU += cr.Scores.MeanMatchedIoU
			agg.Precision += cr.Scores.Precision
			agg.Recall += cr.Scores.Recall
			agg.F1 += cr.Scores.F1
			agg.ExactMatches += cr.Scores.ExactMatches
			agg.TrueCount += cr.Scores.TrueCount
			latencies = append(latencies, cr.Latency)
		}

		if counted > 0 {
			n := float64(counted)
			agg.GlobalIoU = round(agg.GlobalIoU / n)
			agg.MeanMatchedIoU = round(agg.MeanMatchedIoU / n)
			agg.Precision = round(agg.Precision / n)
			agg.Recall = round(agg.Recall / n)
			agg.F1 = round(agg.F1 / n)
		}
		agg.Latency = fromRunnerLatencyStats(runner.AggregateLatencyStats(latencies))

		entries = append(entries, agg)
	}

	return entries
}

func round(v float64) float64 {
	return utils.RoundDecimal(v, scoreDecimals)
}
