package engine

import (
	"fmt"

	"github.com/DjordjeVuckovic/docseg/internal/bench/spec"
)

func CreateFromSpec(systems map[string]spec.System) (map[string]Segmenter, func(), error) {
	segmenters := make(map[string]Segmenter, len(systems))

	cleanup := func() {
		for _, s := range segmenters {
			_ = s.Close()
		}
	}

	for name, sys := range systems {
		switch sys.Type {
		case spec.SystemTypeStatic:
			segmenters[name] = NewStaticSegmenter(name)

		case spec.SystemTypeAPI:
			segmenters[name] = NewAPISegmenter(name, sys.Connection, WithRateLimit(sys.RateLimitRPS))

		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported system type %q for %q", sys.Type, name)
		}
	}

	return segmenters, cleanup, nil
}
