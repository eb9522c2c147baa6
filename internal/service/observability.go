package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/hance08/atm/internal/service"

// instruments records a span and an operation count per service call. With no
// SDK installed the global providers are no-ops.
type instruments struct {
	tracer     trace.Tracer
	operations metric.Int64Counter
}

func newInstruments() *instruments {
	meter := otel.Meter(instrumentationName)

	operations, err := meter.Int64Counter(
		"atm.operations",
		metric.WithDescription("Number of ATM operations by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &instruments{
		tracer:     otel.Tracer(instrumentationName),
		operations: operations,
	}
}

func (in *instruments) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, op, trace.WithAttributes(attrs...))
}

func (in *instruments) finish(ctx context.Context, span trace.Span, op string, err error) {
	defer span.End()

	outcome := "success"
	if err != nil {
		outcome = "failure"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if in.operations != nil {
		in.operations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op),
			attribute.String("outcome", outcome),
		))
	}
}
