package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker always reports healthy. Used for storage without a remote dependency.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (*OkHealthChecker) Healthy(context.Context) bool {
	return true
}

// AllHealthy is healthy only when every checker is. Every checker runs so each
// failing dependency gets logged.
type AllHealthy []HealthChecker

func (a AllHealthy) Healthy(ctx context.Context) bool {
	ok := true
	for _, hc := range a {
		if !hc.Healthy(ctx) {
			ok = false
		}
	}
	return ok
}
