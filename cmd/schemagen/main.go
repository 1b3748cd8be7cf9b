package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/docseg/internal/bench/spec"
	"github.com/DjordjeVuckovic/docseg/internal/bench/suite"
	"github.com/DjordjeVuckovic/docseg/pkg/schema"
)

const schemaBaseID = "https://schemas.docseg.dev/v1"

func main() {
	outputDir := flag.String("output", "api", "Output directory for generated schemas")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		slog.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	generator := schema.NewGenerator("yaml", schemaBaseID)

	targets := []struct {
		value any
		title string
		file  string
	}{
		{suite.TestSuite{}, "TestSuite", "suite-v1.json"},
		{spec.BenchSpec{}, "BenchSpec", "bench-spec-v1.json"},
	}

	for _, tgt := range targets {
		out, err := generator.GenerateJSONSchema(tgt.value, tgt.title)
		if err != nil {
			slog.Error("Failed to generate schema", "title", tgt.title, "error", err)
			os.Exit(1)
		}

		path := filepath.Join(*outputDir, tgt.file)
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			slog.Error("Failed to write schema", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("Generated JSON schema", "path", path)
	}
}
