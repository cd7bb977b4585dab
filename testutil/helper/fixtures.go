package helper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/book-records-go/bookstore"
)

// BookFixture holds the raw input of a book record as a caller would pass it to AddBook.
type BookFixture struct {
	Title  string
	Pages  int
	Author string
	Price  int
	Day    int
	Month  int
	Year   int
}

// DemoBooks are the three records of the demo program, in insertion order.
var DemoBooks = []BookFixture{
	{Title: "Harry potter", Pages: 2000, Author: "J.K Rowling", Price: 560, Day: 1, Month: 8, Year: 1990},
	{Title: "Game of thrones", Pages: 3400, Author: "James Gosling", Price: 1800, Day: 21, Month: 11, Year: 2008},
	{Title: "Lord of the rings", Pages: 5000, Author: "Aneesha Rama", Price: 3470, Day: 15, Month: 4, Year: 2015},
}

func GivenPublishDate(t testing.TB, day, month, year int) bookstore.PublishDate {
	publishDate, err := bookstore.BuildPublishDate(day, month, year)
	require.NoError(t, err, "error in arranging test data")

	return publishDate
}

// GivenBookWasAdded adds the fixture to the store and returns its Handle.
func GivenBookWasAdded(t testing.TB, ctx context.Context, store *bookstore.Store, fixture BookFixture) bookstore.Handle {
	handle, _, err := store.AddBook(
		ctx,
		fixture.Title,
		fixture.Pages,
		fixture.Author,
		fixture.Price,
		GivenPublishDate(t, fixture.Day, fixture.Month, fixture.Year),
	)
	require.NoError(t, err, "error in arranging test data")

	return handle
}

// GivenStoreWithDemoBooks creates a Store with the given options and fills it with DemoBooks.
// The returned Handles are in insertion order.
func GivenStoreWithDemoBooks(t testing.TB, ctx context.Context, options ...bookstore.Option) (*bookstore.Store, []bookstore.Handle) {
	store, err := bookstore.NewStore(options...)
	require.NoError(t, err, "error in arranging test data")

	handles := make([]bookstore.Handle, 0, len(DemoBooks))
	for _, fixture := range DemoBooks {
		handles = append(handles, GivenBookWasAdded(t, ctx, store, fixture))
	}

	return store, handles
}

// GivenNumberedBooks returns count fixtures with distinct titles "Book 1" ... "Book n".
func GivenNumberedBooks(count int) []BookFixture {
	fixtures := make([]BookFixture, 0, count)
	for i := 1; i <= count; i++ {
		fixtures = append(fixtures, BookFixture{
			Title:  fmt.Sprintf("Book %d", i),
			Pages:  100 + i,
			Author: fmt.Sprintf("Author %d", i),
			Price:  1000 + i,
			Day:    1,
			Month:  1,
			Year:   2000 + i,
		})
	}

	return fixtures
}

// TitlesInOrder collects the titles of all records in traversal order.
func TitlesInOrder(store *bookstore.Store) []string {
	titles := make([]string, 0, store.Len())
	for _, book := range store.Books() {
		titles = append(titles, book.Title)
	}

	return titles
}

// SequentialIDGenerator returns a generator that yields predictable IDs 00000000-0000-0000-0000-000000000001, ...
func SequentialIDGenerator() func() uuid.UUID {
	var next byte

	return func() uuid.UUID {
		next++

		var id uuid.UUID
		id[15] = next

		return id
	}
}
