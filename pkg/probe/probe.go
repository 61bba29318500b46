// Package probe runs startup checks and summarizes them.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout bounds a probe that sets no Timeout of its own.
const DefaultTimeout = 5 * time.Second

// CheckFunc returns nil if the check passes.
type CheckFunc func(ctx context.Context) error

// HealthChecker is anything with a health check, such as an LLM provider.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Probe represents a single startup check.
type Probe struct {
	Name     string
	Check    CheckFunc
	Critical bool // a failure prevents startup
	Timeout  time.Duration
}

// Result holds the outcome of a single probe.
type Result struct {
	Probe    Probe
	Error    error
	Duration time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool { return r.Error == nil }

// ForHealth wraps a HealthChecker as a probe. A nil checker is reported as
// skipped rather than failed.
func ForHealth(name string, hc HealthChecker, critical bool) Probe {
	return Probe{
		Name:     name,
		Critical: critical,
		Check: func(ctx context.Context) error {
			if hc == nil {
				return ErrSkipped
			}
			return hc.HealthCheck(ctx)
		},
	}
}

// ErrSkipped marks a probe with nothing to check.
var ErrSkipped = errors.New("skipped")

// Run executes probes in order, each under its own timeout.
func Run(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, len(probes))

	for i, p := range probes {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		start := time.Now()
		pctx, cancel := context.WithTimeout(ctx, timeout)
		err := p.Check(pctx)
		cancel()

		results[i] = Result{
			Probe:    p,
			Error:    err,
			Duration: time.Since(start),
		}
	}

	return results
}

// AnalyzeResults logs every result and joins the errors of failed critical
// probes. Skipped probes never fail startup.
func AnalyzeResults(results []Result) error {
	var criticalErrors []error

	slog.Info("Startup Checks Summary", "count", len(results))

	for _, r := range results {
		elapsed := r.Duration.Round(time.Millisecond)
		switch {
		case r.Error == nil:
			slog.Info("Startup check passed", "name", r.Probe.Name, "elapsed", elapsed)
		case errors.Is(r.Error, ErrSkipped):
			slog.Info("Startup check skipped", "name", r.Probe.Name)
		case r.Probe.Critical:
			slog.Error("Startup check failed", "name", r.Probe.Name, "elapsed", elapsed, "error", r.Error)
			criticalErrors = append(criticalErrors, fmt.Errorf("%s: %w", r.Probe.Name, r.Error))
		default:
			slog.Warn("Startup check failed", "name", r.Probe.Name, "elapsed", elapsed, "error", r.Error)
		}
	}

	return errors.Join(criticalErrors...)
}
