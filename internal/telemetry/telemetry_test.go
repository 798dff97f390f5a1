package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInstallRecordsSpans(t *testing.T) {
	previous := otel.GetTracerProvider()
	defer otel.SetTracerProvider(previous)

	ctx := context.Background()
	recorder := tracetest.NewSpanRecorder()

	shutdown, err := install(ctx, sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	defer func() { _ = shutdown(ctx) }()

	_, span := Tracer("test").Start(ctx, "test.span")
	span.SetAttributes(attribute.Int("answer", 42))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "test.span", spans[0].Name())
	assert.Equal(t, "dungeonwalk/test", spans[0].InstrumentationScope().Name)

	var service string
	for _, kv := range spans[0].Resource().Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, serviceName, service)
}

func TestGetHostname(t *testing.T) {
	assert.NotEmpty(t, getHostname())
}
