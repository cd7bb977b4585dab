package export

import (
	"errors"
	"iter"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration

	"github.com/AntonStoeckl/book-records-go/bookstore"
)

const dialectPostgres = "postgres"

var (
	ErrEmptyTableName      = errors.New("empty table name supplied")
	ErrNothingToExport     = errors.New("no books to export")
	ErrBuildingQueryFailed = errors.New("building insert query failed")
)

type bookRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Author      string `db:"author"`
	Pages       int    `db:"pages"`
	Price       int    `db:"price"`
	PublishDate string `db:"publish_date"`
}

// SQLInserts builds one PostgreSQL INSERT statement with a row per book, in enumeration order.
//
// Values are inlined as literals (not prepared), so the statement can be piped into psql as it is.
// Returns ErrEmptyTableName for an empty tableName and ErrNothingToExport if books yields nothing.
func SQLInserts(tableName string, books iter.Seq2[bookstore.Handle, bookstore.Book]) (string, error) {
	if tableName == "" {
		return "", ErrEmptyTableName
	}

	rows := make([]any, 0)
	for _, book := range books {
		rows = append(rows, bookRow{
			ID:          book.ID.String(),
			Title:       book.Title,
			Author:      book.Author,
			Pages:       book.Pages,
			Price:       book.Price,
			PublishDate: book.PublishDate.ISO(),
		})
	}

	if len(rows) == 0 {
		return "", ErrNothingToExport
	}

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(tableName).
		Rows(rows...).
		ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}
