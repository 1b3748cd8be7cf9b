// Package main Document Segmentation Scoring API
// @title Document Segmentation Scoring API
// @version 1.0
// @description Scores predicted document boundaries against ground truth using optimal IoU matching
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/docseg/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/docseg/internal/api/server"
	"github.com/DjordjeVuckovic/docseg/internal/bench/matching"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
	pkgserver "github.com/DjordjeVuckovic/docseg/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewProbeHealthChecker(probeMatcher)

	s := apiserver.New(cfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Document segmentation scoring API is running")
	})

	router.NewScoreRouter(s.Echo,
		router.WithIoUThreshold(cfg.IoUThreshold),
		router.WithMaxSpans(cfg.MaxSpans),
	).Bind()

	slog.Info("Scoring configured", "iou_threshold", cfg.IoUThreshold, "max_spans", cfg.MaxSpans)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// probeMatcher solves a fixed matching whose score is known.
func probeMatcher(_ context.Context) error {
	score, err := matching.GlobalScore(
		[]span.Span{span.New(0, 1), span.New(2, 3)},
		[]span.Span{span.New(2, 3), span.New(0, 1)},
	)
	if err != nil {
		return err
	}
	if score != 1 {
		return fmt.Errorf("probe scored %v, want 1", score)
	}
	return nil
}
