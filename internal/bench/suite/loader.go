package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite *TestSuite
	Dir   string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if c.Pages < 0 {
			return nil, fmt.Errorf("case %q has negative pages", c.ID)
		}
		if err := c.Truth.validate(c.Pages); err != nil {
			return nil, fmt.Errorf("case %q truth: %w", c.ID, err)
		}
		for name, seg := range c.Predictions {
			if name == "" {
				return nil, fmt.Errorf("case %q has a prediction without a system name", c.ID)
			}
			if err := seg.validate(c.Pages); err != nil {
				return nil, fmt.Errorf("case %q system %q: %w", c.ID, name, err)
			}
		}
	}

	return &LoadedSuite{Suite: &s}, nil
}
