// Package oteladapters provides OpenTelemetry implementations of the bookstore observability interfaces:
//   - MetricsCollector for bookstore.MetricsCollector and bookstore.ContextualMetricsCollector
//   - TracingCollector for bookstore.TracingCollector
//   - SlogBridgeLogger and OTelLogger for bookstore.ContextualLogger
//   - TraceContextHandler, a slog.Handler decorator adding trace and span IDs to local logs
//
// Wiring them into a Store:
//
//	store, err := bookstore.NewStore(
//		bookstore.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter("bookstore"))),
//		bookstore.WithTracing(oteladapters.NewTracingCollector(otel.Tracer("bookstore"))),
//		bookstore.WithContextualLogger(oteladapters.NewSlogBridgeLogger("bookstore")),
//	)
package oteladapters
