// Package telemetry wires OpenTelemetry traces, metrics and logs for the registry service.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/registry/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// ServiceVersion is reported on every exported resource
const ServiceVersion = "1.0.0"

const shutdownTimeout = 10 * time.Second

// ErrMeterNil is returned when an instrument set is built without a meter
var ErrMeterNil = errors.New("telemetry: meter is nil")

// Exporter is the OTLP/gRPC collector every signal exports to
type Exporter struct {
	CollectorEndpoint string
	Insecure          bool
	ServiceName       string
}

// newResource describes this service to the collector
func (e Exporter) newResource() (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(e.ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// lifecycle is the enable flag and bounded shutdown shared by the three providers.
// stop is nil while the signal is disabled.
type lifecycle struct {
	signal  string
	enabled bool
	logger  *zap.Logger
	stop    func(context.Context) error
}

func (l *lifecycle) active() bool {
	return l != nil && l.enabled && l.stop != nil
}

// Shutdown flushes pending data and stops the provider. It is a no-op for a disabled signal.
func (l *lifecycle) Shutdown(ctx context.Context) error {
	if !l.active() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := l.stop(ctx); err != nil {
		l.logger.Error("Telemetry provider shutdown failed", zap.String("signal", l.signal), zap.Error(err))
		return fmt.Errorf("failed to shutdown %s provider: %w", l.signal, err)
	}
	l.logger.Info("Telemetry provider flushed", zap.String("signal", l.signal))
	return nil
}

// Providers holds the three signal providers of a running service
type Providers struct {
	Tracer *TracerProvider
	Meter  *MeterProvider
	Logs   *LoggerProvider
}

// Setup builds every provider from cfg. Signals stay on the global no-op
// providers unless telemetry is enabled and the signal's own flag is set.
func Setup(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*Providers, error) {
	exp := Exporter{
		CollectorEndpoint: cfg.CollectorEndpoint,
		Insecure:          cfg.Insecure,
		ServiceName:       cfg.ServiceName,
	}

	logs, err := NewLoggerProvider(ctx, LogsConfig{Exporter: exp, Enabled: cfg.Enabled && cfg.LogsEnabled}, logger)
	if err != nil {
		return nil, err
	}
	tracer, err := NewTracerProvider(ctx, Config{Exporter: exp, Enabled: cfg.Enabled, SamplingRatio: cfg.SamplingRatio}, logger)
	if err != nil {
		return nil, errors.Join(err, logs.Shutdown(ctx))
	}
	meter, err := NewMeterProvider(ctx, MetricsConfig{
		Exporter:       exp,
		Enabled:        cfg.Enabled && cfg.MetricsEnabled,
		ExportInterval: cfg.MetricsInterval,
	}, logger)
	if err != nil {
		return nil, errors.Join(err, tracer.Shutdown(ctx), logs.Shutdown(ctx))
	}

	return &Providers{Tracer: tracer, Meter: meter, Logs: logs}, nil
}

// Shutdown flushes traces, then metrics, then logs, so the log bridge stays
// up while the other providers report their own shutdown.
func (p *Providers) Shutdown(ctx context.Context) error {
	return errors.Join(
		p.Tracer.Shutdown(ctx),
		p.Meter.Shutdown(ctx),
		p.Logs.Shutdown(ctx),
	)
}
