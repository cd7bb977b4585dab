package bookstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	logMsgOperation        = "bookstore operation: "
	logMsgCreatingBook     = "creating book"
	logMsgBookInserted     = "book inserted"
	logMsgBookFound        = "book found"
	logMsgBookNotFound     = "book not found"
	logMsgInvalidLookup    = "invalid lookup"
	logMsgDuplicateTitle   = "book with title already exists"
	logMsgTitleUpdated     = "title updated"
	logMsgBookRemoved      = "book removed"
	logMsgInvalidRemoval   = "invalid removal"
	logMsgBooksListed      = "books listed"
	logMsgStoreCleared     = "store cleared"
	logMsgTextTruncated    = "text truncated to fit capacity"
	logMsgAllocationFailed = "allocation failed"
	logMsgInvalidInput     = "invalid book input"
	logMsgWriteFailed      = "writing book listing failed"
	logAttrError           = "error"
	logAttrTitle           = "title"
	logAttrOldTitle        = "old_title"
	logAttrNewTitle        = "new_title"
	logAttrReason          = "reason"
	logAttrBookCount       = "book_count"
	logAttrCapacity        = "capacity"
	logAttrField           = "field"
	logAttrLimit           = "limit"
	logAttrOriginalLength  = "original_length"
	logAttrOperation       = "operation"

	operationCreate = "create"
	operationInsert = "insert"
	operationFind   = "find"
	operationUpdate = "update_title"
	operationRemove = "remove"
	operationList   = "list"
	operationInfo   = "info"
	operationClear  = "clear"

	spanNamePrefix     = "bookstore."
	spanAttrOperation  = "operation"
	spanAttrTitle      = "title"
	spanAttrBookCount  = "book_count"
	spanAttrErrorType  = "error_type"
	spanAttrDurationMS = "duration_ms"

	metricOperationDuration = "bookstore_operation_duration_seconds"
	metricOperations        = "bookstore_operations_total"
	metricErrors            = "bookstore_errors_total"
	metricTruncations       = "bookstore_truncations_total"
	metricBooks             = "bookstore_books"

	labelStatus = "status"
	labelField  = "field"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeDuplicateTitle   = "duplicate_title"
	errorTypeNotFound         = "not_found"
	errorTypeAllocationFailed = "allocation_failed"
	errorTypeInvalidRemoval   = "invalid_removal"
	errorTypeInvalidInput     = "invalid_input"
	errorTypeWriteFailed      = "write_failed"
)

/***** logging *****/

func (s *Store) logDebug(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, msg, args...)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (s *Store) logOperation(ctx context.Context, action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (s *Store) logWarn(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, msg, args...)
	}
}

// logError logs error information at the error level if a logger is configured.
func (s *Store) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.logger != nil {
		s.logger.Error(msg, allArgs...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, msg, allArgs...)
	}
}

// reportTruncations logs a warning and counts a metric for every truncated field.
func (s *Store) reportTruncations(ctx context.Context, operation string, truncations []Truncation) {
	for _, truncation := range truncations {
		s.logWarn(
			ctx,
			logMsgTextTruncated,
			logAttrOperation, operation,
			logAttrField, truncation.Field,
			logAttrLimit, truncation.Limit,
			logAttrOriginalLength, truncation.OriginalLength,
		)

		s.incrementCounter(ctx, metricTruncations, map[string]string{
			spanAttrOperation: operation,
			labelField:        truncation.Field,
		})
	}
}

/***** metrics *****/

func (s *Store) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	// Use context-aware method if available
	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metric, duration, labels)
}

func (s *Store) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metric, labels)
}

func (s *Store) recordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	s.metricsCollector.RecordValue(metric, value, labels)
}

// recordBookCount records the current chain length as a gauge.
func (s *Store) recordBookCount(ctx context.Context) {
	s.recordValue(ctx, metricBooks, float64(s.count), nil)
}

/***** operation observer *****/

// operationObserver bundles span lifecycle and metrics recording for one Store operation.
type operationObserver struct {
	s         *Store
	ctx       context.Context
	operation string
	span      SpanContext
	start     time.Time
}

// startOperation starts the tracing span (if a tracing collector is configured) and the duration clock.
func (s *Store) startOperation(
	ctx context.Context,
	operation string,
	attrs map[string]string,
) (*operationObserver, context.Context) {

	if ctx == nil {
		ctx = context.Background()
	}

	var span SpanContext

	if s.tracingCollector != nil {
		spanAttrs := map[string]string{spanAttrOperation: operation}
		for key, value := range attrs {
			spanAttrs[key] = value
		}

		ctx, span = s.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, spanAttrs)
	}

	return &operationObserver{
		s:         s,
		ctx:       ctx,
		operation: operation,
		span:      span,
		start:     time.Now(),
	}, ctx
}

func (o *operationObserver) finishSuccess(attrs map[string]string) {
	duration := time.Since(o.start)

	o.s.recordDuration(o.ctx, metricOperationDuration, duration, o.labels(statusSuccess))
	o.s.incrementCounter(o.ctx, metricOperations, o.labels(statusSuccess))

	if o.span == nil {
		return
	}

	o.span.SetStatus(statusSuccess)
	o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.3f", toMilliseconds(duration)))
	o.s.tracingCollector.FinishSpan(o.span, statusSuccess, attrs)
}

func (o *operationObserver) finishError(err error) {
	duration := time.Since(o.start)
	errorType := classifyError(err)

	o.s.recordDuration(o.ctx, metricOperationDuration, duration, o.labels(statusError))
	o.s.incrementCounter(o.ctx, metricOperations, o.labels(statusError))

	errorLabels := o.labels(statusError)
	errorLabels[spanAttrErrorType] = errorType
	o.s.incrementCounter(o.ctx, metricErrors, errorLabels)

	if o.span == nil {
		return
	}

	o.span.SetStatus(statusError)
	o.span.AddAttribute(spanAttrErrorType, errorType)
	o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.3f", toMilliseconds(duration)))
	o.s.tracingCollector.FinishSpan(o.span, statusError, map[string]string{spanAttrErrorType: errorType})
}

func (o *operationObserver) labels(status string) map[string]string {
	return map[string]string{
		spanAttrOperation: o.operation,
		labelStatus:       status,
	}
}

// classifyError maps the package's sentinel errors to a stable error_type label.
func classifyError(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateTitle):
		return errorTypeDuplicateTitle
	case errors.Is(err, ErrNotFound):
		return errorTypeNotFound
	case errors.Is(err, ErrAllocationFailed):
		return errorTypeAllocationFailed
	case errors.Is(err, ErrInvalidRemoval):
		return errorTypeInvalidRemoval
	case errors.Is(err, ErrEmptyTitle), errors.Is(err, ErrEmptyAuthor), errors.Is(err, ErrInvalidPublishDate):
		return errorTypeInvalidInput
	default:
		return errorTypeWriteFailed
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
