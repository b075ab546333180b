package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/haul/internal/adapters/telemetry/progrock"
	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
)

func TestRecorder_RecordBindsVertexToContext(t *testing.T) {
	recorder := progrock.New()
	t.Cleanup(func() { _ = recorder.Close() })

	ctx, vertex := recorder.Record(context.Background(), "Fetch org.example:engine:2.1.0 engine.jar")
	require.NotNil(t, vertex)

	bound, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, bound)
}

func TestRecorder_VertexLifecycle(t *testing.T) {
	recorder := progrock.New()
	t.Cleanup(func() { _ = recorder.Close() })

	_, ok := recorder.Record(context.Background(), "Fetch a.jar")
	require.NotNil(t, ok)

	_, succeeded := recorder.Record(context.Background(), "Fetch b.jar")
	succeeded.Log(domain.LogLevelInfo, "GET /b.jar")
	succeeded.Complete(nil)

	_, failed := recorder.Record(context.Background(), "Fetch c.jar")
	failed.Complete(errors.New("checksum mismatch"))

	_, cached := recorder.Record(context.Background(), "Fetch d.jar")
	cached.Cached()
}

func TestRecorder_CloseIsIdempotentOnPlainWriters(t *testing.T) {
	recorder := progrock.New()

	require.NoError(t, recorder.Close())
}
