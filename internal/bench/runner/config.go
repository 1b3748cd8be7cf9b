package runner

import "github.com/DjordjeVuckovic/docseg/internal/bench/metrics"

const (
	DefaultWarmupRuns  = 0
	DefaultRuns        = 1
	DefaultConcurrency = 4
)

type Config struct {
	IoUThreshold float64
	WarmupRuns   int
	Runs         int
	Concurrency  int
}

func DefaultConfig() Config {
	return Config{
		IoUThreshold: metrics.DefaultIoUThreshold,
		WarmupRuns:   DefaultWarmupRuns,
		Runs:         DefaultRuns,
		Concurrency:  DefaultConcurrency,
	}
}

func (c Config) normalized() Config {
	if c.IoUThreshold <= 0 || c.IoUThreshold > 1 {
		c.IoUThreshold = metrics.DefaultIoUThreshold
	}
	if c.WarmupRuns < 0 {
		c.WarmupRuns = 0
	}
	if c.Runs <= 0 {
		c.Runs = DefaultRuns
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	return c
}
