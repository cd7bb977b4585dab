package bookstore

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/google/uuid"
)

const noSlot = -1

const (
	reasonEmptyList   = "empty list"
	reasonEmptyKey    = "empty key"
	reasonNoBookFound = "no book found"
	reasonNotInStore  = "book is not in the store"
)

/***** Handle *****/

// Handle is a stable, non-owning reference to a record in a Store.
//
// The zero Handle never refers to a record. A Handle becomes stale when its record is removed;
// every operation detects that and fails with ErrNotFound.
type Handle struct {
	index      int
	generation uint64 // starts at 1 for a slot's first record and never wraps in practice
}

func (h Handle) IsZero() bool {
	return h == Handle{}
}

/***** Store *****/

type slot struct {
	book       Book
	next       int
	generation uint64
	inUse      bool
}

// Store is an in-memory, insertion-ordered collection of books with unique titles.
//
// Records are kept in an arena of slots; each slot links to its successor by index,
// forming a singly linked chain from head to tail.
// Released slots are reused, with a bumped generation so that old Handles do not alias new records.
type Store struct {
	slots    []slot
	free     []int
	head     int
	tail     int
	count    int
	capacity int // 0 means unbounded
	newID    func() uuid.UUID

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewStore creates an empty Store with optional configuration.
func NewStore(options ...Option) (*Store, error) {
	s := &Store{
		head:  noSlot,
		tail:  noSlot,
		newID: uuid.New,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// CreateBook builds a new record that is not yet part of the Store.
//
// When the Store is at capacity it fails with ErrAllocationFailed. The title is then checked
// against all records in the Store; if it is taken, CreateBook fails with ErrDuplicateTitle
// and the Store stays unchanged. Title and author that exceed their capacity are truncated,
// which is logged as a warning but does not fail the operation.
//
// Pass the returned record to InsertBook to link it into the Store.
func (s *Store) CreateBook(
	ctx context.Context,
	title string,
	pages int,
	author string,
	price int,
	publishDate PublishDate,
) (Book, error) {

	observer, ctx := s.startOperation(ctx, operationCreate, map[string]string{spanAttrTitle: Trim(title)})

	if s.isFull() {
		err := fmt.Errorf("%w: capacity of %d books reached", ErrAllocationFailed, s.capacity)
		s.logError(ctx, logMsgAllocationFailed, err, logAttrCapacity, s.capacity)
		observer.finishError(err)

		return Book{}, err
	}

	book, truncations, err := buildBook(s.newID(), title, pages, author, price, publishDate)
	if err != nil {
		s.logError(ctx, logMsgInvalidInput, err, logAttrTitle, title)
		observer.finishError(err)

		return Book{}, err
	}

	if _, found := s.findByTitle(book.Title); found {
		err = fmt.Errorf("%w: %q", ErrDuplicateTitle, book.Title)
		s.logWarn(ctx, logMsgDuplicateTitle, logAttrTitle, book.Title)
		observer.finishError(err)

		return Book{}, err
	}

	s.logOperation(ctx, logMsgCreatingBook, logAttrTitle, book.Title)
	s.reportTruncations(ctx, operationCreate, truncations)
	observer.finishSuccess(nil)

	return book, nil
}

// InsertBook appends book at the tail of the chain; into an empty Store it becomes the head.
//
// InsertBook does not check for duplicate titles. Callers are expected to pass records
// returned by CreateBook, inserting anything else can break the unique title invariant.
func (s *Store) InsertBook(ctx context.Context, book Book) (Handle, error) {
	observer, ctx := s.startOperation(ctx, operationInsert, map[string]string{spanAttrTitle: book.Title})

	if s.isFull() {
		err := fmt.Errorf("%w: capacity of %d books reached", ErrAllocationFailed, s.capacity)
		s.logError(ctx, logMsgAllocationFailed, err, logAttrCapacity, s.capacity)
		observer.finishError(err)

		return Handle{}, err
	}

	index := s.allocate(book)

	if s.head == noSlot {
		s.head = index
	} else {
		s.slots[s.tail].next = index
	}

	s.tail = index
	s.count++

	s.logOperation(ctx, logMsgBookInserted, logAttrTitle, book.Title, logAttrBookCount, s.count)
	s.recordBookCount(ctx)
	observer.finishSuccess(map[string]string{spanAttrBookCount: fmt.Sprintf("%d", s.count)})

	return s.handleOf(index), nil
}

// AddBook creates a record with CreateBook and links it with InsertBook.
// Nothing is inserted if the creation fails.
func (s *Store) AddBook(
	ctx context.Context,
	title string,
	pages int,
	author string,
	price int,
	publishDate PublishDate,
) (Handle, Book, error) {

	book, err := s.CreateBook(ctx, title, pages, author, price, publishDate)
	if err != nil {
		return Handle{}, Book{}, err
	}

	handle, err := s.InsertBook(ctx, book)
	if err != nil {
		return Handle{}, Book{}, err
	}

	return handle, book, nil
}

// FindBookByTitle returns the first record, in traversal order, whose title equals key.
//
// The key is trimmed of surrounding ASCII whitespace; the comparison is exact and case-sensitive.
// It fails with ErrNotFound if the Store is empty, the key is empty, or no title matches.
func (s *Store) FindBookByTitle(ctx context.Context, key string) (Handle, Book, error) {
	trimmedKey := Trim(key)
	observer, ctx := s.startOperation(ctx, operationFind, map[string]string{spanAttrTitle: trimmedKey})

	if s.head == noSlot || trimmedKey == "" {
		reason := reasonEmptyList
		if trimmedKey == "" {
			reason = reasonEmptyKey
		}

		err := fmt.Errorf("%w: %s", ErrNotFound, reason)
		s.logWarn(ctx, logMsgInvalidLookup, logAttrReason, reason)
		observer.finishError(err)

		return Handle{}, Book{}, err
	}

	index, found := s.findByTitle(trimmedKey)
	if !found {
		err := fmt.Errorf("%w: title %q", ErrNotFound, trimmedKey)
		s.logWarn(ctx, logMsgBookNotFound, logAttrTitle, trimmedKey)
		observer.finishError(err)

		return Handle{}, Book{}, err
	}

	s.logDebug(ctx, logMsgBookFound, logAttrTitle, trimmedKey)
	observer.finishSuccess(nil)

	return s.handleOf(index), s.slots[index].book, nil
}

// Book returns a copy of the record handle refers to, or ErrNotFound for a stale or zero Handle.
func (s *Store) Book(handle Handle) (Book, error) {
	index, ok := s.resolve(handle)
	if !ok {
		return Book{}, fmt.Errorf("%w: %s", ErrNotFound, reasonNoBookFound)
	}

	return s.slots[index].book, nil
}

// UpdateTitle replaces the title of the record handle refers to.
//
// The new title is trimmed and, if needed, truncated to MaxTitleLength with a logged warning.
// If another record already holds the new title the update fails with ErrDuplicateTitle
// and nothing changes. A stale or zero Handle fails with ErrNotFound.
func (s *Store) UpdateTitle(ctx context.Context, handle Handle, newTitle string) error {
	observer, ctx := s.startOperation(ctx, operationUpdate, map[string]string{spanAttrTitle: Trim(newTitle)})

	index, ok := s.resolve(handle)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNotFound, reasonNoBookFound)
		s.logWarn(ctx, logMsgBookNotFound, logAttrReason, reasonNoBookFound)
		observer.finishError(err)

		return err
	}

	title, truncations, err := normalizeTitle(newTitle)
	if err != nil {
		s.logError(ctx, logMsgInvalidInput, err, logAttrTitle, newTitle)
		observer.finishError(err)

		return err
	}

	if other, found := s.findByTitle(title); found && other != index {
		err = fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
		s.logWarn(ctx, logMsgDuplicateTitle, logAttrTitle, title)
		observer.finishError(err)

		return err
	}

	oldTitle := s.slots[index].book.Title
	s.slots[index].book.Title = title

	s.reportTruncations(ctx, operationUpdate, truncations)
	s.logOperation(ctx, logMsgTitleUpdated, logAttrOldTitle, oldTitle, logAttrNewTitle, title)
	observer.finishSuccess(nil)

	return nil
}

// RemoveBook unlinks the record handle refers to and releases its slot.
//
// On an empty Store it fails with ErrInvalidRemoval. If handle does not refer to a record
// in the chain (stale or zero Handle) it fails with ErrNotFound and the Store stays unchanged.
// The relative order of the remaining records is preserved.
func (s *Store) RemoveBook(ctx context.Context, handle Handle) error {
	observer, ctx := s.startOperation(ctx, operationRemove, nil)

	if s.head == noSlot {
		reason := reasonEmptyList
		if handle.IsZero() {
			reason = reasonNoBookFound
		}

		err := fmt.Errorf("%w: %s", ErrInvalidRemoval, reason)
		s.logWarn(ctx, logMsgInvalidRemoval, logAttrReason, reason)
		observer.finishError(err)

		return err
	}

	index, ok := s.resolve(handle)
	if !ok || !s.unlink(index) {
		err := fmt.Errorf("%w: %s", ErrNotFound, reasonNotInStore)
		s.logWarn(ctx, logMsgInvalidRemoval, logAttrReason, reasonNotInStore)
		observer.finishError(err)

		return err
	}

	title := s.slots[index].book.Title
	s.release(index)
	s.count--

	s.logOperation(ctx, logMsgBookRemoved, logAttrTitle, title, logAttrBookCount, s.count)
	s.recordBookCount(ctx)
	observer.finishSuccess(map[string]string{spanAttrBookCount: fmt.Sprintf("%d", s.count)})

	return nil
}

// Books returns a lazy enumeration of all records in traversal order.
//
// The enumeration starts at the head each time it is ranged over and never modifies the Store.
// Removing the record that was just yielded is safe; other modifications during the
// enumeration lead to unspecified results.
func (s *Store) Books() iter.Seq2[Handle, Book] {
	return func(yield func(Handle, Book) bool) {
		for index := s.head; index != noSlot; {
			next := s.slots[index].next

			if !yield(s.handleOf(index), s.slots[index].book) {
				return
			}

			index = next
		}
	}
}

// ListAllBooks prints every record in traversal order to w, or a single notice when the Store is empty.
func (s *Store) ListAllBooks(ctx context.Context, w io.Writer) error {
	observer, ctx := s.startOperation(ctx, operationList, nil)

	if err := PrintBooks(w, s.Books()); err != nil {
		s.logError(ctx, logMsgWriteFailed, err)
		observer.finishError(err)

		return err
	}

	s.logDebug(ctx, logMsgBooksListed, logAttrBookCount, s.count)
	observer.finishSuccess(map[string]string{spanAttrBookCount: fmt.Sprintf("%d", s.count)})

	return nil
}

// GetBookInfo prints the record handle refers to. A stale or zero Handle prints nothing and fails with ErrNotFound.
func (s *Store) GetBookInfo(ctx context.Context, w io.Writer, handle Handle) error {
	observer, ctx := s.startOperation(ctx, operationInfo, nil)

	book, err := s.Book(handle)
	if err != nil {
		observer.finishError(err)
		return err
	}

	if err = PrintBook(w, book); err != nil {
		s.logError(ctx, logMsgWriteFailed, err)
		observer.finishError(err)

		return err
	}

	observer.finishSuccess(nil)

	return nil
}

// Len returns the number of records in the chain.
func (s *Store) Len() int {
	return s.count
}

// Clear releases all records. Handles obtained before become stale.
func (s *Store) Clear(ctx context.Context) {
	observer, ctx := s.startOperation(ctx, operationClear, nil)

	removed := s.count
	for index := s.head; index != noSlot; {
		next := s.slots[index].next
		s.release(index)
		index = next
	}

	s.head = noSlot
	s.tail = noSlot
	s.count = 0

	s.logOperation(ctx, logMsgStoreCleared, logAttrBookCount, removed)
	s.recordBookCount(ctx)
	observer.finishSuccess(nil)
}

/***** arena and chain helpers *****/

func (s *Store) isFull() bool {
	return s.capacity > 0 && s.count >= s.capacity
}

// allocate takes a slot from the free list, or grows the arena, and fills it with an unlinked record.
func (s *Store) allocate(book Book) int {
	var index int

	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		index = len(s.slots) - 1
	}

	s.slots[index] = slot{
		book:       book,
		next:       noSlot,
		generation: s.slots[index].generation + 1,
		inUse:      true,
	}

	return index
}

// release wipes the slot and returns it to the free list. The generation survives for stale Handle detection.
func (s *Store) release(index int) {
	s.slots[index] = slot{
		next:       noSlot,
		generation: s.slots[index].generation,
	}

	s.free = append(s.free, index)
}

// unlink redirects the chain around index. It reports false if index is not part of the chain.
func (s *Store) unlink(index int) bool {
	if index == s.head {
		s.head = s.slots[index].next
		if s.head == noSlot {
			s.tail = noSlot
		}

		return true
	}

	for current := s.head; current != noSlot; current = s.slots[current].next {
		if s.slots[current].next != index {
			continue
		}

		s.slots[current].next = s.slots[index].next
		if s.tail == index {
			s.tail = current
		}

		return true
	}

	return false
}

func (s *Store) resolve(handle Handle) (int, bool) {
	if handle.IsZero() || handle.index < 0 || handle.index >= len(s.slots) {
		return noSlot, false
	}

	sl := s.slots[handle.index]
	if !sl.inUse || sl.generation != handle.generation {
		return noSlot, false
	}

	return handle.index, true
}

func (s *Store) handleOf(index int) Handle {
	return Handle{index: index, generation: s.slots[index].generation}
}

// findByTitle walks the chain from the head and returns the first slot holding title.
func (s *Store) findByTitle(title string) (int, bool) {
	for index := s.head; index != noSlot; index = s.slots[index].next {
		if s.slots[index].book.Title == title {
			return index, true
		}
	}

	return noSlot, false
}
