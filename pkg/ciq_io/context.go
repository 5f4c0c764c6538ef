// pkg/ciq_io/context.go

package ciq_io

import (
	"context"
	"time"

	"github.com/claimsiq/ciq/pkg/ciq_err"
	"github.com/claimsiq/ciq/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-command context, logger and telemetry span.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	Attributes map[string]string
}

// NewContext sets up tracing and logging for one command invocation.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	log := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        log,
		Span:       span,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// End logs the outcome, records span attributes, and closes the span.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := *errPtr == nil

	if success {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else if ciq_err.IsExpectedUserError(*errPtr) {
		rc.Log.Info("Command completed with expected condition",
			zap.Duration("duration", duration), zap.Error(*errPtr))
	} else {
		rc.Log.Error("Command failed",
			zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	rc.Span.SetAttributes(
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("error_type", classifyError(*errPtr)),
	)
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if ciq_err.IsExpectedUserError(err) {
		return "user"
	}
	return "system"
}
