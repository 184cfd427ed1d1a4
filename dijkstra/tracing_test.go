// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/geograph/dijkstra"
)

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	return sr, tp
}

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestCompute_Span(t *testing.T) {
	sr, tp := newRecorder()

	_, err := dijkstra.Compute(javaGraph(t), Jakarta, dijkstra.WithTracerProvider(tp))
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "dijkstra.Compute", spans[0].Name())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)

	a := attrs(spans[0].Attributes())
	assert.Equal(t, Jakarta, a["dijkstra.source"].AsString())
	assert.Equal(t, int64(5), a["dijkstra.nodes"].AsInt64())
	assert.Equal(t, int64(12), a["dijkstra.arcs"].AsInt64())
	assert.Equal(t, int64(5), a["dijkstra.settled"].AsInt64())
	assert.Equal(t, int64(5), a["dijkstra.reached"].AsInt64())
}

func TestCompute_SpanRecordsError(t *testing.T) {
	sr, tp := newRecorder()

	_, err := dijkstra.Compute(javaGraph(t), "Atlantis", dijkstra.WithTracerProvider(tp))
	require.ErrorIs(t, err, dijkstra.ErrUnknownNode)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Status().Description, "Atlantis")
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
