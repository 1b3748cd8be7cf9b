package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/docseg/internal/api/metrics"
	"github.com/DjordjeVuckovic/docseg/internal/apperr"
	"github.com/DjordjeVuckovic/docseg/internal/bench/matching"
	bmetrics "github.com/DjordjeVuckovic/docseg/internal/bench/metrics"
	"github.com/DjordjeVuckovic/docseg/internal/dto"
	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

const defaultMaxSpans = 2000

type ScoreRouter struct {
	e            *echo.Echo
	iouThreshold float64
	maxSpans     int
}

type ScoreRouterOption func(*ScoreRouter)

func WithIoUThreshold(t float64) ScoreRouterOption {
	return func(r *ScoreRouter) { r.iouThreshold = t }
}

func WithMaxSpans(n int) ScoreRouterOption {
	return func(r *ScoreRouter) { r.maxSpans = n }
}

func NewScoreRouter(e *echo.Echo, opts ...ScoreRouterOption) *ScoreRouter {
	r := &ScoreRouter{
		e:            e,
		iouThreshold: bmetrics.DefaultIoUThreshold,
		maxSpans:     defaultMaxSpans,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ScoreRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.POST("/match", r.matchHandler)
	v1.POST("/score", r.scoreHandler)
	v1.POST("/evaluate", r.evaluateHandler)
}

// matchHandler godoc
// @Summary Optimal span matching
// @Tags score
// @Accept json
// @Produce json
// @Param request body dto.SpansRequest true "Span collections"
// @Success 200 {object} dto.MatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/match [post]
func (r *ScoreRouter) matchHandler(c echo.Context) error {
	var req dto.SpansRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := r.validateSpans(req); err != nil {
		return err
	}

	res, err := r.match(req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MatchResponse{
		RequestID: uuid.New(),
		N:         res.N,
		Pairs:     res.Pairs,
		Score:     res.Score(),
	})
}

// scoreHandler godoc
// @Summary Global IoU score
// @Tags score
// @Accept json
// @Produce json
// @Param request body dto.SpansRequest true "Span collections"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/score [post]
func (r *ScoreRouter) scoreHandler(c echo.Context) error {
	var req dto.SpansRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := r.validateSpans(req); err != nil {
		return err
	}

	res, err := r.match(req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ScoreResponse{
		RequestID: uuid.New(),
		N:         res.N,
		Score:     res.Score(),
	})
}

// evaluateHandler godoc
// @Summary Full score set
// @Tags score
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Span collections and optional IoU threshold"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/evaluate [post]
func (r *ScoreRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := r.validateSpans(req.SpansRequest); err != nil {
		return err
	}

	threshold := r.iouThreshold
	if req.IoUThreshold != nil {
		threshold = *req.IoUThreshold
		if threshold < 0 || threshold > 1 {
			return apperr.NewValidation(fmt.Sprintf("iou_threshold %v must be within [0, 1]", threshold))
		}
	}

	res, err := r.match(req.SpansRequest)
	if err != nil {
		return err
	}
	scores := bmetrics.Compute(res.Outcomes(), len(req.TrueSpans), len(req.PredSpans), threshold)

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		RequestID:    uuid.New(),
		N:            res.N,
		IoUThreshold: threshold,
		ScoreSet:     scores,
	})
}

// validateSpans rejects malformed spans and collections over the size limit.
func (r *ScoreRouter) validateSpans(sr dto.SpansRequest) error {
	if err := span.ValidateAll(sr.TrueSpans); err != nil {
		return apperr.NewValidationWrap("true_spans", err)
	}
	if err := span.ValidateAll(sr.PredSpans); err != nil {
		return apperr.NewValidationWrap("pred_spans", err)
	}
	if n := max(len(sr.TrueSpans), len(sr.PredSpans)); n > r.maxSpans {
		return apperr.NewValidation(fmt.Sprintf("too many spans: %d exceeds the limit of %d", n, r.maxSpans))
	}
	return nil
}

func (r *ScoreRouter) match(req dto.SpansRequest) (matching.Result, error) {
	start := time.Now()
	res, err := matching.Match(req.TrueSpans, req.PredSpans)
	if err != nil {
		return matching.Result{}, err
	}
	metrics.ObserveMatch(res.N, res.Score(), time.Since(start))
	return res, nil
}
