// Package helper provides test fixtures and observability spies for the bookstore test suites.
//
// The spies capture what a Store reports through its Logger, ContextualLogger, MetricsCollector
// and TracingCollector hooks, with fluent matchers for asserting on the captured records.
package helper
