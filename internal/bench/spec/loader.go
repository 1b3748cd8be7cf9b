package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	SystemTypeStatic = "static"
	SystemTypeAPI    = "api"
)

const (
	defaultIoUThreshold = 0.5
	defaultConcurrency  = 4
)

func LoadFromFile(path string) (*BenchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*BenchSpec, error) {
	var s BenchSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

var validSystemTypes = map[string]bool{
	SystemTypeStatic: true,
	SystemTypeAPI:    true,
}

func validate(s *BenchSpec) error {
	if len(s.Jobs) == 0 {
		return fmt.Errorf("spec has no jobs")
	}
	if len(s.Systems) == 0 {
		return fmt.Errorf("spec has no systems")
	}
	for i, j := range s.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if j.Suite == "" {
			return fmt.Errorf("job %q has no suite", j.Name)
		}
		if len(j.Systems) == 0 {
			return fmt.Errorf("job %q has no systems", j.Name)
		}
		for _, ref := range j.Systems {
			if _, ok := s.Systems[ref]; !ok {
				return fmt.Errorf("job %q references unknown system %q", j.Name, ref)
			}
		}
	}
	for name, sys := range s.Systems {
		if sys.Type == "" {
			return fmt.Errorf("system %q has no type", name)
		}
		if !validSystemTypes[sys.Type] {
			return fmt.Errorf("system %q has invalid type %q", name, sys.Type)
		}
		if sys.Type == SystemTypeAPI && sys.Connection == "" {
			return fmt.Errorf("system %q has no connection", name)
		}
		if sys.RateLimitRPS < 0 {
			return fmt.Errorf("system %q has negative rate_limit_rps", name)
		}
	}
	if s.Metrics.IoUThreshold < 0 || s.Metrics.IoUThreshold > 1 {
		return fmt.Errorf("iou_threshold must be within [0, 1], got %v", s.Metrics.IoUThreshold)
	}
	if s.Metrics.IoUThreshold == 0 {
		s.Metrics.IoUThreshold = defaultIoUThreshold
	}
	if s.Runs.Warmup < 0 {
		s.Runs.Warmup = 0
	}
	if s.Runs.Iterations <= 0 {
		s.Runs.Iterations = 1
	}
	if s.Runs.Concurrency <= 0 {
		s.Runs.Concurrency = defaultConcurrency
	}
	return nil
}
