package main

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/book-records-go/bookstore"
	"github.com/AntonStoeckl/book-records-go/bookstore/oteladapters"
)

const instrumentationName = "bookstore-demo"

// observability holds in-process OpenTelemetry providers. Nothing is exported over the network:
// metrics are read once at the end of the run and ended spans are logged at debug level.
type observability struct {
	logger         *slog.Logger
	handler        slog.Handler
	reader         *sdkmetric.ManualReader
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

func newObservability(handler slog.Handler, logger *slog.Logger) *observability {
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(&spanLogger{logger: logger}))

	otel.SetMeterProvider(meterProvider)
	otel.SetTracerProvider(tracerProvider)

	return &observability{
		logger:         logger,
		handler:        handler,
		reader:         reader,
		meterProvider:  meterProvider,
		tracerProvider: tracerProvider,
	}
}

// storeOptions wires the OpenTelemetry adapters into a Store.
// Logs go through the contextual logger only, so they carry trace and span IDs.
func (o *observability) storeOptions() []bookstore.Option {
	return []bookstore.Option{
		bookstore.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))),
		bookstore.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))),
		bookstore.WithContextualLogger(
			oteladapters.NewSlogBridgeLoggerWithHandler(oteladapters.NewTraceContextHandler(o.handler)),
		),
	}
}

// logSummary logs one line per collected metric data point.
func (o *observability) logSummary(ctx context.Context) {
	var resourceMetrics metricdata.ResourceMetrics
	if err := o.reader.Collect(ctx, &resourceMetrics); err != nil {
		o.logger.ErrorContext(ctx, "collecting metrics failed", "error", err.Error())
		return
	}

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Histogram[float64]:
				for _, dataPoint := range data.DataPoints {
					o.logger.InfoContext(ctx, "metric summary",
						"metric", m.Name,
						"attributes", dataPoint.Attributes.Encoded(attribute.DefaultEncoder()),
						"count", dataPoint.Count,
						"sum", dataPoint.Sum)
				}

			case metricdata.Sum[int64]:
				for _, dataPoint := range data.DataPoints {
					o.logger.InfoContext(ctx, "metric summary",
						"metric", m.Name,
						"attributes", dataPoint.Attributes.Encoded(attribute.DefaultEncoder()),
						"value", dataPoint.Value)
				}

			case metricdata.Gauge[float64]:
				for _, dataPoint := range data.DataPoints {
					o.logger.InfoContext(ctx, "metric summary",
						"metric", m.Name,
						"value", dataPoint.Value)
				}
			}
		}
	}
}

func (o *observability) shutdown(ctx context.Context) error {
	return errors.Join(o.tracerProvider.Shutdown(ctx), o.meterProvider.Shutdown(ctx))
}

// spanLogger is a span processor that logs every ended span.
type spanLogger struct {
	logger *slog.Logger
}

func (p *spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *spanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	p.logger.Debug("span ended",
		"span", span.Name(),
		"status", span.Status().Code.String(),
		"duration", span.EndTime().Sub(span.StartTime()),
		"trace_id", span.SpanContext().TraceID().String())
}

func (p *spanLogger) Shutdown(context.Context) error {
	return nil
}

func (p *spanLogger) ForceFlush(context.Context) error {
	return nil
}
