package runner

import (
	"time"

	"github.com/DjordjeVuckovic/docseg/internal/bench/matching"
	"github.com/DjordjeVuckovic/docseg/internal/bench/metrics"
)

type CaseResult struct {
	CaseID         string
	JobName        string
	SystemName     string
	Scores         metrics.ScoreSet
	Match          matching.Result
	SegmentLatency time.Duration
	Latency        LatencyStats
	Error          error
}

type JobResult struct {
	JobName     string
	SuiteName   string
	Results     map[string]map[string]CaseResult // [caseID][systemName]
	CaseOrder   []string
	SystemNames []string
}

type BenchmarkResult struct {
	Jobs   []*JobResult
	Config Config
}

func (br *BenchmarkResult) AllSystemNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, jr := range br.Jobs {
		for _, name := range jr.SystemNames {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
