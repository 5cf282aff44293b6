package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is returned by the service when the ISBN uniqueness
// pre-check fails before anything is written.
var ErrDuplicateISBN = errors.New("isbn already exists")

// ErrDuplicateKey is returned by the store when the unique index itself
// rejects a write, e.g. after losing a race with a concurrent create.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrIntegrity is returned by the store for any other integrity
// constraint rejection.
var ErrIntegrity = errors.New("data integrity violation")

// Book represents a book entity.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	PublishedYear *int      `json:"publishedYear"`
	Description   *string   `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListQuery defines pagination and sorting for listing books.
// Page is zero-based.
type ListQuery struct {
	Page     int
	Size     int
	SortBy   string
	SortDesc bool
}

// Limit returns the page size as a row limit.
func (q ListQuery) Limit() int { return q.Size }

// Offset returns the row offset for the requested page.
func (q ListQuery) Offset() int { return q.Page * q.Size }

// sortColumns maps exposed sort fields to table columns. Only fields in
// this map may reach ORDER BY.
var sortColumns = map[string]string{
	"id":            "id",
	"title":         "title",
	"author":        "author",
	"isbn":          "isbn",
	"publishedYear": "published_year",
	"description":   "description",
	"price":         "price",
	"stockQuantity": "stock_quantity",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// SortColumn resolves an exposed sort field to its table column.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}
