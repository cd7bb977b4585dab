// Package main implements a small demonstration driver for the bookstore package.
//
// It runs a fixed sequence against an in-memory Store:
//   - add "Harry potter", "Game of thrones" and "Lord of the rings"
//   - optionally try to add "Harry potter" a second time, which is rejected as a duplicate
//   - look up "Harry potter" and remove it
//   - render the remaining books to stdout as text listing, JSON or SQL INSERT statement
//
// Store logs go to stderr. With -observability-enabled the Store also reports metrics and spans
// to in-process OpenTelemetry providers, and a summary is logged when the run ends.
//
// Usage:
//
//	bookstore-demo [-format text|json|sql] [-log-level debug|info|warn|error] [-table books]
//	               [-capacity n] [-show-duplicate] [-observability-enabled]
package main
