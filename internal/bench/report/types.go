package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/docseg/internal/bench/runner"
)

type Report struct {
	Meta   BenchMeta    `json:"meta"`
	Jobs   []JobReport  `json:"jobs"`
	Config ReportConfig `json:"config"`
}

type BenchMeta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	IoUThreshold float64 `json:"iou_threshold"`
	WarmupRuns   int     `json:"warmup_runs"`
	Runs         int     `json:"runs"`
	Concurrency  int     `json:"concurrency"`
}

type JobReport struct {
	JobName    string            `json:"job_name"`
	SuiteName  string            `json:"suite_name,omitempty"`
	Aggregated []AggregatedEntry `json:"aggregated"`
	PerCase    []Entry           `json:"per_case"`
}

type Entry struct {
	CaseID         string       `json:"case_id"`
	SystemName     string       `json:"system"`
	GlobalIoU      float64      `json:"global_iou"`
	MeanMatchedIoU float64      `json:"mean_matched_iou"`
	Precision      float64      `json:"precision"`
	Recall         float64      `json:"recall"`
	F1             float64      `json:"f1"`
	ExactMatches   int          `json:"exact_matches"`
	TrueCount      int          `json:"true_count"`
	PredCount      int          `json:"pred_count"`
	Latency        LatencyStats `json:"latency"`
	Error          string       `json:"error,omitempty"`
}

type AggregatedEntry struct {
	SystemName     string       `json:"system"`
	GlobalIoU      float64      `json:"global_iou"`
	MeanMatchedIoU float64      `json:"mean_matched_iou"`
	Precision      float64      `json:"precision"`
	Recall         float64      `json:"recall"`
	F1             float64      `json:"f1"`
	ExactMatches   int          `json:"exact_matches"`
	TrueCount      int          `json:"true_count"`
	Latency        LatencyStats `json:"latency"`
	CaseCount      int          `json:"case_count"`
	ErrorCount     int          `json:"error_count"`
}

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		Min:         s.Min,
		Max:         s.Max,
		Mean:        s.Mean,
		Median:      s.Median,
		Stddev:      s.Stddev,
		Percentiles: s.Percentiles,
		SampleCount: s.SampleCount,
	}
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P90() time.Duration { return s.Percentiles[90] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }
