package telemetry_test

import (
	"context"
	"errors"
	"runtime/pprof"
	"testing"

	"github.com/shopadmin/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"
)

// setupTestTracer installs an in-memory span recorder as the global provider.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[string(a.Key)] = a.Value
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "customer", "adjust_balance",
		telemetry.SpanAttrCustomerID, "c-1",
		telemetry.SpanAttrActorID, "u-1",
		42, "ignored",
	)
	telemetry.SetAttributes(span, "attempt", 2, "dry_run", false)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "customer.adjust_balance", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "c-1", attrs[telemetry.SpanAttrCustomerID].AsString())
	assert.Equal(t, "u-1", attrs[telemetry.SpanAttrActorID].AsString())
	assert.Equal(t, int64(2), attrs["attempt"].AsInt64())
	assert.False(t, attrs["dry_run"].AsBool())
	assert.Len(t, attrs, 4)
}

func TestRecordError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "files", "sign")
	telemetry.RecordError(span, errors.New("presign failed"))
	telemetry.RecordError(span, nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "presign failed", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestLinkProfiles(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	sdk := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer sdk.Shutdown(context.Background())

	tracer := telemetry.LinkProfiles(sdk).Tracer("test")
	ctx, root := tracer.Start(context.Background(), "GET /api/v1/orders")
	rootLabel, ok := pprof.Label(ctx, "span_id")
	require.True(t, ok, "root span id lands in the pprof labels")

	childCtx, child := tracer.Start(ctx, "OrderService.List")
	childLabel, _ := pprof.Label(childCtx, "span_id")
	assert.Equal(t, rootLabel, childLabel, "child samples roll up to the root span")
	name, _ := pprof.Label(childCtx, "span_name")
	assert.Equal(t, "GET /api/v1/orders", name)
	child.End()
	root.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	rootSpan := spans[1]
	assert.Equal(t, rootLabel, rootSpan.SpanContext().SpanID().String())
	assert.Equal(t, rootLabel, attrMap(rootSpan.Attributes())["pyroscope.profile.id"].AsString())
	_, childTagged := attrMap(spans[0].Attributes())["pyroscope.profile.id"]
	assert.False(t, childTagged)
}

func TestNewTracerProvider_LinkProfiles(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           true,
		CollectorEndpoint: "localhost:19999",
		ServiceName:       "shopadmin-api",
		Insecure:          true,
		LinkProfiles:      true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())

	// unsampled, so nothing is exported; the span name label is still set
	ctx, span := tp.Tracer("test").Start(context.Background(), "GET /api/v1/payroll/runs")
	defer span.End()
	name, ok := pprof.Label(ctx, "span_name")
	assert.True(t, ok)
	assert.Equal(t, "GET /api/v1/payroll/runs", name)
}
