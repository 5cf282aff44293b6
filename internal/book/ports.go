package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	// Save inserts when the book has no id yet, otherwise updates by id.
	// Id and timestamps are populated on the passed book.
	Save(ctx context.Context, b *Book) error
	FindByID(ctx context.Context, id int64) (Book, error)
	FindByISBN(ctx context.Context, isbn string) (Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAll(ctx context.Context, q ListQuery) ([]Book, int, error)
	FindByAuthorContaining(ctx context.Context, author string) ([]Book, error)
	FindByTitleContaining(ctx context.Context, title string) ([]Book, error)
	// FindByKeyword matches the keyword case-insensitively against
	// title, author, or description.
	FindByKeyword(ctx context.Context, keyword string, limit, offset int) ([]Book, int, error)
	FindByPublishedYear(ctx context.Context, year int) ([]Book, error)
	FindByPriceBetween(ctx context.Context, min, max float64) ([]Book, error)
	FindByStockQuantityLessThan(ctx context.Context, threshold int) ([]Book, error)
	DeleteByID(ctx context.Context, id int64) error
}
