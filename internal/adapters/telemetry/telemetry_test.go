package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/haul/internal/adapters/telemetry"
)

// installRecorder swaps in a tracer provider that records finished spans
// in memory and restores the previous provider when the test ends.
func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
		otel.SetTracerProvider(previous)
	})

	return exporter
}

func TestOTelTracer_StartProducesSpan(t *testing.T) {
	exporter := installRecorder(t)
	tracer := telemetry.NewOTelTracer("haul-test")

	_, span := tracer.Start(context.Background(), "Fetch engine.jar")
	span.SetAttribute("haul.operations", 3)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "Fetch engine.jar", spans[0].Name)
}

func TestOTelSpan_RecordErrorSetsStatus(t *testing.T) {
	exporter := installRecorder(t)
	tracer := telemetry.NewOTelTracer("haul-test")

	_, span := tracer.Start(context.Background(), "Fetch engine.jar")
	span.RecordError(errors.New("checksum mismatch"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "checksum mismatch", spans[0].Status.Description)
}

func TestOTelTracer_EmitPlanAddsEvent(t *testing.T) {
	exporter := installRecorder(t)
	tracer := telemetry.NewOTelTracer("haul-test")

	ctx, span := tracer.Start(context.Background(), "Draining queue")
	tracer.EmitPlan(ctx, []string{"Fetch a.jar", "Fetch b.jar"})
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "plan_emitted", spans[0].Events[0].Name)
}

func TestOTelSpan_WriteAddsLogEvent(t *testing.T) {
	exporter := installRecorder(t)
	tracer := telemetry.NewOTelTracer("haul-test")

	_, span := tracer.Start(context.Background(), "Fetch engine.jar")
	n, err := span.Write([]byte("GET /engine.jar"))
	span.End()

	require.NoError(t, err)
	assert.Equal(t, len("GET /engine.jar"), n)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "log", spans[0].Events[0].Name)
}

func TestSetup_InstallsGlobalProvider(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	shutdown := telemetry.Setup("haul", "test")
	require.NotNil(t, shutdown)

	assert.NotSame(t, previous, otel.GetTracerProvider())
	require.NoError(t, shutdown(context.Background()))
}
