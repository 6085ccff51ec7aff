package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

const (
	serviceName     = "tictactoe-engine"
	shutdownTimeout = 5 * time.Second
)

// InitOtel installs global trace and meter providers that export to the
// configured files. Signals without a file keep the no-op providers.
func InitOtel(conf config.Telemetry) (func(context.Context) error, error) {
	var closers []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i](ctx))
		}

		return errors.Join(errs...)
	}

	if conf.TraceFile == "" && conf.MetricFile == "" {
		return shutdown, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if conf.TraceFile != "" {
		file, err := openFile(conf.TraceFile)
		if err != nil {
			return nil, err
		}

		closers = append(closers, closeFile(file))

		exporter, err := stdouttrace.New(stdouttrace.WithWriter(file))
		if err != nil {
			_ = shutdown(context.Background())
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)

		closers = append(closers, func(ctx context.Context) error {
			if err := tp.Shutdown(ctx); err != nil {
				return fmt.Errorf("failed to shutdown TracerProvider: %w", err)
			}

			return nil
		})
	}

	if conf.MetricFile != "" {
		file, err := openFile(conf.MetricFile)
		if err != nil {
			_ = shutdown(context.Background())
			return nil, err
		}

		closers = append(closers, closeFile(file))

		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(file))
		if err != nil {
			_ = shutdown(context.Background())
			return nil, fmt.Errorf("failed to create metric exporter: %w", err)
		}

		mp := metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(exporter)),
			metric.WithResource(res),
		)
		otel.SetMeterProvider(mp)

		closers = append(closers, func(ctx context.Context) error {
			if err := mp.Shutdown(ctx); err != nil {
				return fmt.Errorf("failed to shutdown MeterProvider: %w", err)
			}

			return nil
		})
	}

	return shutdown, nil
}

func openFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry file: %w", err)
	}

	return file, nil
}

func closeFile(file io.Closer) func(context.Context) error {
	return func(context.Context) error {
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close telemetry file: %w", err)
		}

		return nil
	}
}
