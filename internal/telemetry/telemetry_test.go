package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

func TestInitOtel(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		shutdown, err := InitOtel(config.Telemetry{})

		require.NoError(t, err)
		require.NoError(t, shutdown(ctx))
	})

	t.Run("Writes traces and metrics", func(t *testing.T) {
		previousTracer, previousMeter := otel.GetTracerProvider(), otel.GetMeterProvider()
		t.Cleanup(func() {
			otel.SetTracerProvider(previousTracer)
			otel.SetMeterProvider(previousMeter)
		})

		// Given: telemetry exported to files
		dir := t.TempDir()
		conf := config.Telemetry{
			TraceFile:  filepath.Join(dir, "traces.json"),
			MetricFile: filepath.Join(dir, "metrics.json"),
		}

		shutdown, err := InitOtel(conf)
		require.NoError(t, err)

		// When: a span and a counter are recorded and the providers shut down
		_, span := otel.Tracer("test").Start(ctx, "test.span")
		span.End()

		counter, err := otel.Meter("test").Int64Counter("test.counter")
		require.NoError(t, err)
		counter.Add(ctx, 1)

		require.NoError(t, shutdown(ctx))

		// Then: both files contain the exported data
		traces, err := os.ReadFile(conf.TraceFile)
		require.NoError(t, err)
		assert.Contains(t, string(traces), "test.span")

		metrics, err := os.ReadFile(conf.MetricFile)
		require.NoError(t, err)
		assert.Contains(t, string(metrics), "test.counter")
	})

	t.Run("Fails on an unwritable path", func(t *testing.T) {
		_, err := InitOtel(config.Telemetry{TraceFile: filepath.Join(t.TempDir(), "missing", "traces.json")})

		require.Error(t, err)
	})
}
