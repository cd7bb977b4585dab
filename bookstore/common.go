package bookstore

import (
	"errors"
)

const (
	// MaxTitleLength is the title capacity in characters. Longer titles are truncated.
	MaxTitleLength = 55

	// MaxAuthorLength is the author capacity in characters. Longer names are truncated.
	MaxAuthorLength = 31
)

var (
	// ErrAllocationFailed is returned when the store has no free slot left for another record.
	ErrAllocationFailed = errors.New("allocation failed, store is at capacity")

	// ErrDuplicateTitle is returned when a title is already held by another record.
	ErrDuplicateTitle = errors.New("book with this title already exists")

	// ErrNotFound is returned when a lookup misses, the store is empty, or a Handle is stale.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidRemoval is returned when removing from an empty store.
	ErrInvalidRemoval = errors.New("invalid removal")

	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrEmptyAuthor        = errors.New("author must not be empty")
	ErrInvalidPublishDate = errors.New("publish date is not a valid calendar date")
	ErrInvalidCapacity    = errors.New("capacity must be at least 1")
	ErrNilIDGenerator     = errors.New("id generator must not be nil")
)
