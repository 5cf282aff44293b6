package book

import (
	"time"
)

// Request is the inbound shape for create and update.
type Request struct {
	Title         string   `json:"title" validate:"required,min=1,max=255"`
	Author        string   `json:"author" validate:"required,min=1,max=255"`
	ISBN          string   `json:"isbn" validate:"required,isbn"`
	PublishedYear *int     `json:"publishedYear" validate:"omitempty,gte=1000,lte=2024"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"required,gt=0"`
	StockQuantity *int     `json:"stockQuantity" validate:"required,gte=0"`
}

// Response is the outbound shape.
type Response struct {
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

// PageResponse is a page of books plus total-count metadata.
// Number is the zero-based page index.
type PageResponse struct {
	Content       []Response `json:"content"`
	TotalElements int        `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
}

func (r Request) toBook() Book {
	return Book{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		PublishedYear: r.PublishedYear,
		Description:   r.Description,
		Price:         *r.Price,
		StockQuantity: *r.StockQuantity,
	}
}

// applyTo overwrites every mutable field, leaving id and created_at
// untouched.
func (r Request) applyTo(b *Book) {
	b.Title = r.Title
	b.Author = r.Author
	b.ISBN = r.ISBN
	b.PublishedYear = r.PublishedYear
	b.Description = r.Description
	b.Price = *r.Price
	b.StockQuantity = *r.StockQuantity
}

func newResponse(b Book) Response {
	return Response{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
		Description:   b.Description,
		Price:         b.Price,
		StockQuantity: b.StockQuantity,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func newResponses(books []Book) []Response {
	out := make([]Response, 0, len(books))
	for _, b := range books {
		out = append(out, newResponse(b))
	}
	return out
}

func newPageResponse(books []Book, total, page, size int) PageResponse {
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return PageResponse{
		Content:       newResponses(books),
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
	}
}
