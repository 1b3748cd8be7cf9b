package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// ProbeHealthChecker reports healthy while probe returns nil.
type ProbeHealthChecker struct {
	probe func(ctx context.Context) error
}

func NewProbeHealthChecker(probe func(ctx context.Context) error) *ProbeHealthChecker {
	return &ProbeHealthChecker{probe: probe}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	return hc.probe(ctx) == nil
}
