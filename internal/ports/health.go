package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned by Register when the name is taken.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 2 * time.Second

// HealthChecker is implemented by the quote store, the tag cache and the
// event publisher.
type HealthChecker interface {
	// Name keys the component in readiness responses.
	Name() string
	Check(ctx context.Context) error
}

// HealthRegistry aggregates the checks registered at startup.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is "healthy" or "unhealthy".
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the readiness report. Status is unhealthy if any check
// failed.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one component check. Message holds the
// check error.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry runs registered checks in parallel, each under its
// own timeout.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
	timeout  time.Duration
}

// NewHealthRegistry uses DefaultCheckTimeout.
func NewHealthRegistry() *DefaultHealthRegistry {
	return NewHealthRegistryWithTimeout(DefaultCheckTimeout)
}

// NewHealthRegistryWithTimeout bounds each check by timeout. Zero leaves
// only the caller's deadline.
func NewHealthRegistryWithTimeout(timeout time.Duration) *DefaultHealthRegistry {
	return &DefaultHealthRegistry{timeout: timeout}
}

// Names lists checkers in registration order.
func (r *DefaultHealthRegistry) Names() []string {
	checkers := r.snapshot()

	names := make([]string, len(checkers))
	for i, c := range checkers {
		names[i] = c.Name()
	}

	return names
}

func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.checkers {
		if c.Name() == checker.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, checker.Name())
		}
	}
	r.checkers = append(r.checkers, checker)

	return nil
}

func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	checkers := r.snapshot()
	outcomes := make([]*CheckResult, len(checkers))

	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Go(func() {
			outcomes[i] = r.check(ctx, checker)
		})
	}
	wg.Wait()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}
	for i, checker := range checkers {
		result.Checks[checker.Name()] = outcomes[i]
		if outcomes[i].Status == HealthStatusUnhealthy {
			result.Status = HealthStatusUnhealthy
		}
	}

	return result
}

func (r *DefaultHealthRegistry) snapshot() []HealthChecker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]HealthChecker(nil), r.checkers...)
}

func (r *DefaultHealthRegistry) check(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := checker.Check(ctx)
	out := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}

	if err != nil {
		out.Status = HealthStatusUnhealthy
		out.Message = err.Error()
	}

	return out
}
