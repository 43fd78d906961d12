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

// CompositeHealthChecker is healthy only when every member is.
type CompositeHealthChecker struct {
	checks []HealthChecker
}

func NewCompositeHealthChecker(checks ...HealthChecker) *CompositeHealthChecker {
	return &CompositeHealthChecker{checks: checks}
}

func (hc *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	for _, c := range hc.checks {
		if !c.Healthy(ctx) {
			return false
		}
	}
	return true
}
