package bookstore

import (
	"github.com/google/uuid"
)

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithCapacity limits the number of records the Store can hold at the same time.
// Creating or inserting beyond the limit fails with ErrAllocationFailed.
// Without this option the Store is unbounded.
func WithCapacity(capacity int) Option {
	return func(s *Store) error {
		if capacity < 1 {
			return ErrInvalidCapacity
		}

		s.capacity = capacity

		return nil
	}
}

// WithIDGenerator replaces uuid.New as the source of record IDs, e.g. for deterministic tests.
func WithIDGenerator(generator func() uuid.UUID) Option {
	return func(s *Store) error {
		if generator == nil {
			return ErrNilIDGenerator
		}

		s.newID = generator

		return nil
	}
}

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: enumerations and lookups that hit
// Info level: created, inserted, updated and removed records
// Warn level: duplicate titles, lookup misses, truncated text, invalid removals
// Error level: allocation failures and rejected input.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store.
// It receives the same messages as the Logger, together with the operation's context.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// It receives operation durations, operation and error counts, truncation counts and the current number of books.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
// Every Store operation that takes a context.Context runs in its own span.
func WithTracing(collector TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}
