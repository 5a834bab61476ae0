package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

// Multi-step writes run as validate, perform, verify, archive, respond.
// Nothing is written before validation passes, and side effects in archive
// (events, cache invalidation) only run once the stored state has been
// read back and checked.

// ExecutionStep names a stage of an Operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the stage a failure happened in.
// Unwrap exposes the cause, so domain errors still match errors.Is/As.
type ExecutionError struct {
	Step  ExecutionStep
	Cause error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs Operations with stage logging.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger falls back to slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation holds the stage functions. Nil stages are skipped.
type Operation[I, P, V, O any] struct {
	Name     string
	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Archive  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op against input, stopping at the first failing stage.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var zero O

	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = exec.logger
	}
	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(step ExecutionStep, err error) (O, error) {
		logger.Log(ctx, failureLevel(step, err), "operation failed",
			slog.String("step", string(step)),
			slog.Any("error", err),
		)

		return zero, &ExecutionError{Step: step, Cause: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			return fail(StepValidate, err)
		}
	}

	var performed P
	if op.Perform != nil {
		var err error
		if performed, err = op.Perform(ctx, input); err != nil {
			return fail(StepPerform, err)
		}
	}

	var verified V
	if op.Verify != nil {
		var err error
		if verified, err = op.Verify(ctx, input, performed); err != nil {
			return fail(StepVerify, err)
		}
	}

	if op.Archive != nil {
		if err := op.Archive(ctx, input, verified); err != nil {
			return fail(StepArchive, err)
		}
	}

	result := zero
	if op.Respond != nil {
		var err error
		if result, err = op.Respond(ctx, input, verified); err != nil {
			return fail(StepRespond, err)
		}
	}

	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// failureLevel logs rejected input and missing or conflicting records at
// WARN; they are answered with a 4xx, not a fault of the service.
func failureLevel(step ExecutionStep, err error) slog.Level {
	switch {
	case step == StepValidate,
		domain.IsValidation(err),
		domain.IsConflict(err),
		domain.IsNotFound(err):
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// GetExecutionStep returns the stage an Execute failure happened in.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
