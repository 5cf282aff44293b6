package book_test

import (
	"testing"

	"bookcatalog/internal/book"
	"bookcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest_Valid(t *testing.T) {
	assert.Nil(t, book.ValidateRequest(testutil.ValidRequest()))
}

func TestValidateRequest_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *book.Request)
		wantErr string
	}{
		{
			name:    "missing title",
			mutate:  func(r *book.Request) { r.Title = "" },
			wantErr: "title: Title is required",
		},
		{
			name:    "title too long",
			mutate:  func(r *book.Request) { r.Title = string(make([]byte, 256)) },
			wantErr: "title: Title must be between 1 and 255 characters",
		},
		{
			name:    "missing author",
			mutate:  func(r *book.Request) { r.Author = "" },
			wantErr: "author: Author is required",
		},
		{
			name:    "missing isbn",
			mutate:  func(r *book.Request) { r.ISBN = "" },
			wantErr: "isbn: ISBN is required",
		},
		{
			name:    "bad isbn",
			mutate:  func(r *book.Request) { r.ISBN = "12345" },
			wantErr: "isbn: Invalid ISBN format",
		},
		{
			name:    "year too early",
			mutate:  func(r *book.Request) { r.PublishedYear = intPtr(999) },
			wantErr: "publishedYear: Published year must be at least 1000",
		},
		{
			name:    "year in the future",
			mutate:  func(r *book.Request) { r.PublishedYear = intPtr(2025) },
			wantErr: "publishedYear: Published year cannot be in the future",
		},
		{
			name:    "missing price",
			mutate:  func(r *book.Request) { r.Price = nil },
			wantErr: "price: Price is required",
		},
		{
			name:    "zero price",
			mutate:  func(r *book.Request) { r.Price = floatPtr(0) },
			wantErr: "price: Price must be greater than 0",
		},
		{
			name:    "negative price",
			mutate:  func(r *book.Request) { r.Price = floatPtr(-1) },
			wantErr: "price: Price must be greater than 0",
		},
		{
			name:    "missing stock",
			mutate:  func(r *book.Request) { r.StockQuantity = nil },
			wantErr: "stockQuantity: Stock quantity is required",
		},
		{
			name:    "negative stock",
			mutate:  func(r *book.Request) { r.StockQuantity = intPtr(-5) },
			wantErr: "stockQuantity: Stock quantity cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.ValidRequest()
			tt.mutate(&req)
			assert.Contains(t, book.ValidateRequest(req), tt.wantErr)
		})
	}
}

func TestValidateRequest_OptionalFields(t *testing.T) {
	req := testutil.ValidRequest()
	req.PublishedYear = nil
	req.Description = nil
	assert.Nil(t, book.ValidateRequest(req))
}

func TestValidateRequest_ISBNFormats(t *testing.T) {
	tests := []struct {
		isbn  string
		valid bool
	}{
		{"978-0-123456-78-9", true},
		{"9780306406157", true},
		{"978 0 306 40615 7", true},
		{"0-306-40615-2", true},
		{"043942089X", true},
		{"ISBN 978-0-306-40615-7", true},
		{"ISBN-13: 9780306406157", true},
		{"ISBN-10: 0306406152", true},
		{"9791234567890", true},
		{"12345", false},
		{"1234567890123", false}, // 13 digits without a 978/979 prefix
		{"978030640615", false}, // 12 digits
		{"97803064061570", false},
		{"ABCDEFGHIJ", false},
		{"04394208-9X-extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.isbn, func(t *testing.T) {
			req := testutil.ValidRequest()
			req.ISBN = tt.isbn
			errs := book.ValidateRequest(req)
			if tt.valid {
				assert.Nil(t, errs)
			} else {
				assert.Contains(t, errs, "isbn: Invalid ISBN format")
			}
		})
	}
}
