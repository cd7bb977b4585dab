package export

import (
	"errors"
	"iter"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/book-records-go/bookstore"
)

// ErrEncodingFailed is returned when the JSON encoder fails.
var ErrEncodingFailed = errors.New("encoding books to json failed")

// BookDocument is the JSON shape of one book.
type BookDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Pages       int    `json:"pages"`
	Price       int    `json:"price"`
	PublishDate string `json:"publish_date"`
}

// BookDocumentFrom maps a bookstore.Book to its JSON shape. The publish date uses bookstore.PublishDateISOLayout.
func BookDocumentFrom(book bookstore.Book) BookDocument {
	return BookDocument{
		ID:          book.ID.String(),
		Title:       book.Title,
		Author:      book.Author,
		Pages:       book.Pages,
		Price:       book.Price,
		PublishDate: book.PublishDate.ISO(),
	}
}

// JSON encodes all books, in enumeration order, as a JSON array. No books give an empty array.
func JSON(books iter.Seq2[bookstore.Handle, bookstore.Book]) ([]byte, error) {
	documents := make([]BookDocument, 0)
	for _, book := range books {
		documents = append(documents, BookDocumentFrom(book))
	}

	data, err := jsoniter.ConfigFastest.Marshal(documents)
	if err != nil {
		return nil, errors.Join(ErrEncodingFailed, err)
	}

	return data, nil
}
