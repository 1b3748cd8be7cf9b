package spec

type BenchSpec struct {
	Jobs    []Job             `yaml:"jobs" schema:"required,minItems=1"`
	Systems map[string]System `yaml:"systems" schema:"required"`
	Metrics MetricsConfig     `yaml:"metrics"`
	Runs    RunsConfig        `yaml:"runs"`
}

type Job struct {
	Name    string   `yaml:"name" schema:"required,minLength=1"`
	Suite   string   `yaml:"suite" schema:"required"`
	Systems []string `yaml:"systems" schema:"required,minItems=1"`
}

// System describes where a segmenter's predictions come from: the suite file
// itself ("static") or a remote segmentation service ("api").
type System struct {
	Type       string `yaml:"type" schema:"required,enum=static|api"`
	Connection string `yaml:"connection,omitempty"`
	// RateLimitRPS caps requests per second to an api system; 0 means unlimited.
	RateLimitRPS float64 `yaml:"rate_limit_rps,omitempty" schema:"minimum=0"`
}

type MetricsConfig struct {
	IoUThreshold float64 `yaml:"iou_threshold" schema:"minimum=0,maximum=1"`
}

type RunsConfig struct {
	Warmup      int `yaml:"warmup"`
	Iterations  int `yaml:"iterations"`
	Concurrency int `yaml:"concurrency"`
}
