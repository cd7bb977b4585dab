package bookstore

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	fieldTitle  = "title"
	fieldAuthor = "author"
)

// Book is the metadata record for one book.
//
// Values handed out by the Store are copies; changing them does not change the stored record.
// Use the Store operations (e.g. UpdateTitle) for that.
type Book struct {
	ID          uuid.UUID
	Title       string
	Pages       int
	Author      string
	Price       int // minor currency unit
	PublishDate PublishDate
}

// Truncation describes a text field that was cut down to its capacity.
// It is advisory, the record is still built with the truncated text.
type Truncation struct {
	Field          string
	Limit          int
	OriginalLength int
}

// BuildBook is a factory method for Book.
//
// It trims title and author, truncates them to MaxTitleLength and MaxAuthorLength
// and reports each truncation. A fresh random ID is assigned.
// Returns an error if title or author are empty or the publish date is the zero value.
//
// BuildBook does not know about any Store, so it cannot check for duplicate titles.
// Use Store.CreateBook for that.
func BuildBook(
	title string,
	pages int,
	author string,
	price int,
	publishDate PublishDate,
) (Book, []Truncation, error) {

	return buildBook(uuid.New(), title, pages, author, price, publishDate)
}

func buildBook(
	id uuid.UUID,
	title string,
	pages int,
	author string,
	price int,
	publishDate PublishDate,
) (Book, []Truncation, error) {

	normalizedTitle, truncations, err := normalizeTitle(title)
	if err != nil {
		return Book{}, nil, err
	}

	normalizedAuthor, authorTruncations, err := normalizeText(author, fieldAuthor, MaxAuthorLength, ErrEmptyAuthor)
	if err != nil {
		return Book{}, nil, err
	}

	if publishDate.IsZero() {
		return Book{}, nil, fmt.Errorf("%w: zero value", ErrInvalidPublishDate)
	}

	book := Book{
		ID:          id,
		Title:       normalizedTitle,
		Pages:       pages,
		Author:      normalizedAuthor,
		Price:       price,
		PublishDate: publishDate,
	}

	return book, append(truncations, authorTruncations...), nil
}

func normalizeTitle(title string) (string, []Truncation, error) {
	return normalizeText(title, fieldTitle, MaxTitleLength, ErrEmptyTitle)
}

func normalizeText(text string, field string, limit int, errEmpty error) (string, []Truncation, error) {
	trimmed := Trim(text)
	if trimmed == "" {
		return "", nil, errEmpty
	}

	kept, truncated := truncate(trimmed, limit)
	if !truncated {
		return kept, nil, nil
	}

	// the cut may land on whitespace
	kept = Trim(kept)
	if kept == "" {
		return "", nil, errEmpty
	}

	truncation := Truncation{
		Field:          field,
		Limit:          limit,
		OriginalLength: utf8.RuneCountInString(trimmed),
	}

	return kept, []Truncation{truncation}, nil
}
