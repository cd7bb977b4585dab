// Package bookstore provides an in-memory record store for book metadata.
//
// Records live in a singly linked chain, kept in insertion order, and are
// addressed by Handle values. A Handle is an index into the store's arena plus
// a generation counter, so a Handle to a removed record is detected as stale
// instead of silently pointing at whatever record reuses the slot.
//
// The store enforces unique titles: CreateBook and UpdateTitle reject a title
// that another record already holds (exact, case-sensitive match after
// trimming surrounding ASCII whitespace). InsertBook does not re-check, it
// expects records that went through CreateBook.
//
// Lookups are linear scans from the head of the chain. There are no secondary
// indexes and no persistence.
//
// A Store is not safe for concurrent use. All operations are synchronous; the
// context.Context they accept is only used for log and trace correlation.
//
// Common usage pattern:
//
//	store, err := bookstore.NewStore(bookstore.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	publishDate, _ := bookstore.BuildPublishDate(1, 8, 1990)
//	handle, _, err := store.AddBook(ctx, "Harry potter", 2000, "J.K Rowling", 560, publishDate)
//	if errors.Is(err, bookstore.ErrDuplicateTitle) {
//		// the title is already taken
//	}
//
//	found, book, err := store.FindBookByTitle(ctx, "  Harry potter ")
//	err = store.RemoveBook(ctx, found)
//
//	for handle, book := range store.Books() {
//		// insertion order
//	}
package bookstore
