package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonStoeckl/book-records-go/bookstore"
	"github.com/AntonStoeckl/book-records-go/bookstore/export"
)

const removedTitle = "Harry potter"

type demoBook struct {
	title  string
	pages  int
	author string
	price  int
	day    int
	month  int
	year   int
}

var demoBooks = []demoBook{
	{title: "Harry potter", pages: 2000, author: "J.K Rowling", price: 560, day: 1, month: 8, year: 1990},
	{title: "Game of thrones", pages: 3400, author: "James Gosling", price: 1800, day: 21, month: 11, year: 2008},
	{title: "Lord of the rings", pages: 5000, author: "Aneesha Rama", price: 3470, day: 15, month: 4, year: 2015},
}

// run executes the demo sequence. Rendered books go to stdout, logs to stderr.
func run(ctx context.Context, cfg Config, stdout, stderr io.Writer) (err error) {
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	logger := slog.New(handler)

	var options []bookstore.Option
	if cfg.Capacity > 0 {
		options = append(options, bookstore.WithCapacity(cfg.Capacity))
	}

	if cfg.ObservabilityEnabled {
		obs := newObservability(handler, logger)
		options = append(options, obs.storeOptions()...)

		defer func() {
			obs.logSummary(ctx)
			err = errors.Join(err, obs.shutdown(ctx))
		}()
	} else {
		options = append(options, bookstore.WithLogger(logger))
	}

	store, err := bookstore.NewStore(options...)
	if err != nil {
		return err
	}

	for _, book := range demoBooks {
		if err = addDemoBook(ctx, store, book); err != nil {
			return err
		}
	}

	if cfg.ShowDuplicate {
		if err = addDemoBook(ctx, store, demoBooks[0]); err == nil {
			return fmt.Errorf("adding %q twice was not rejected", demoBooks[0].title)
		}

		logger.InfoContext(ctx, "second add was rejected as expected", "error", err.Error())
	}

	handle, _, err := store.FindBookByTitle(ctx, removedTitle)
	if err != nil {
		return err
	}

	if err = store.RemoveBook(ctx, handle); err != nil {
		return err
	}

	return render(ctx, cfg, store, stdout)
}

func addDemoBook(ctx context.Context, store *bookstore.Store, book demoBook) error {
	publishDate, err := bookstore.BuildPublishDate(book.day, book.month, book.year)
	if err != nil {
		return err
	}

	if _, _, err = store.AddBook(ctx, book.title, book.pages, book.author, book.price, publishDate); err != nil {
		return fmt.Errorf("adding %q: %w", book.title, err)
	}

	return nil
}

func render(ctx context.Context, cfg Config, store *bookstore.Store, stdout io.Writer) error {
	switch cfg.Format {
	case formatJSON:
		data, err := export.JSON(store.Books())
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(stdout, "%s\n", data)

		return err

	case formatSQL:
		sqlQuery, err := export.SQLInserts(cfg.Table, store.Books())
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(stdout, "%s;\n", sqlQuery)

		return err

	default:
		return store.ListAllBooks(ctx, stdout)
	}
}
