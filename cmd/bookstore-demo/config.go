package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatSQL  = "sql"

	defaultFormat   = formatText
	defaultLogLevel = "info"
	defaultTable    = "books"
	defaultCapacity = 0 // unbounded
)

var (
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidCapacity = errors.New("capacity must not be negative")
	ErrEmptyTable      = errors.New("table name must not be empty")
)

// Config holds all demo configuration parameters.
type Config struct {
	Format               string
	LogLevel             slog.Level
	Table                string
	Capacity             int
	ShowDuplicate        bool
	ObservabilityEnabled bool
}

// parseFlags parses the command line arguments (without the program name) into a Config.
func parseFlags(args []string, output io.Writer) (Config, error) {
	flags := flag.NewFlagSet("bookstore-demo", flag.ContinueOnError)
	flags.SetOutput(output)

	var (
		format        = flags.String("format", defaultFormat, "Output format: text, json or sql")
		logLevel      = flags.String("log-level", defaultLogLevel, "Minimum log level: debug, info, warn or error")
		table         = flags.String("table", defaultTable, "Table name used by the sql format")
		capacity      = flags.Int("capacity", defaultCapacity, "Maximum number of books in the store, 0 means unbounded")
		showDuplicate = flags.Bool("show-duplicate", false, "Try to add a book with an existing title")
		observability = flags.Bool("observability-enabled", false, "Enable OpenTelemetry metrics and tracing")
	)

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	switch *format {
	case formatText, formatJSON, formatSQL:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, *format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return Config{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidLogLevel, *logLevel), err)
	}

	if *capacity < 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidCapacity, *capacity)
	}

	if *table == "" {
		return Config{}, ErrEmptyTable
	}

	return Config{
		Format:               *format,
		LogLevel:             level,
		Table:                *table,
		Capacity:             *capacity,
		ShowDuplicate:        *showDuplicate,
		ObservabilityEnabled: *observability,
	}, nil
}
