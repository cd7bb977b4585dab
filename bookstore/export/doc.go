// Package export renders the records of a bookstore.Store in machine-readable formats.
//
// Supported formats:
//   - JSON: an array of book documents, encoded with json-iterator
//   - SQL: a single multi-row PostgreSQL INSERT statement, built with goqu
//
// Both renderers only produce bytes or text for the caller; nothing is written to a database or disk.
//
// Usage:
//
//	data, err := export.JSON(store.Books())
//	sqlQuery, err := export.SQLInserts("books", store.Books())
package export
