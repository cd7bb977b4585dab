package bookstore

import (
	"fmt"
	"io"
	"iter"
)

const (
	listingSeparator = "----------------------------------"
	msgNoBooksFound  = "No books found"
)

// PrintBook writes the human-readable block for one record, terminated by a separator line:
//
//	Title: 'Harry potter'
//	Author: 'J.K Rowling'
//	Price: 560
//	Pages: 2000
//	Published on: '1-8-1990'
//	----------------------------------
func PrintBook(w io.Writer, book Book) error {
	_, err := fmt.Fprintf(
		w,
		"Title: '%s'\nAuthor: '%s'\nPrice: %d\nPages: %d\nPublished on: '%s'\n%s\n",
		book.Title,
		book.Author,
		book.Price,
		book.Pages,
		book.PublishDate,
		listingSeparator,
	)

	return err
}

// PrintBooks writes one block per record, or a "No books found" line if books yields nothing.
func PrintBooks(w io.Writer, books iter.Seq2[Handle, Book]) error {
	empty := true

	for _, book := range books {
		empty = false

		if err := PrintBook(w, book); err != nil {
			return err
		}
	}

	if empty {
		_, err := fmt.Fprintln(w, msgNoBooksFound)
		return err
	}

	return nil
}
