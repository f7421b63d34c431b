package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/adapters/telemetry/progrock"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
)

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "acme:core")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("compiling\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning: deprecated api\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelDebug, "artifact ready")
	vertex.Log(domain.LogLevelWarn, "slow test")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_FailedVertex(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "app")
	vertex.Complete(errors.New("compile failed"))

	require.NoError(t, recorder.Close())
}
