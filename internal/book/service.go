package book

import (
	"context"
)

// Service provides book-related business logic. It is the only
// component that mutates store state.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new book after checking that its ISBN is not
// already in use. Returns ErrDuplicateISBN without writing anything
// when it is.
func (s *Service) Create(ctx context.Context, req Request) (Response, error) {
	exists, err := s.repo.ExistsByISBN(ctx, req.ISBN)
	if err != nil {
		return Response{}, err
	}
	if exists {
		return Response{}, ErrDuplicateISBN
	}

	b := req.toBook()
	if err := s.repo.Save(ctx, &b); err != nil {
		return Response{}, err
	}
	return newResponse(b), nil
}

// GetByID returns a book by id, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (Response, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return newResponse(b), nil
}

// List returns one page of books with total-count metadata.
func (s *Service) List(ctx context.Context, q ListQuery) (PageResponse, error) {
	books, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return newPageResponse(books, total, q.Page, q.Size), nil
}

// Update overwrites every mutable field of an existing book. The ISBN
// uniqueness check is skipped when the ISBN is unchanged, so a book can
// always be updated to its own ISBN.
func (s *Service) Update(ctx context.Context, id int64, req Request) (Response, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Response{}, err
	}

	if b.ISBN != req.ISBN {
		exists, err := s.repo.ExistsByISBN(ctx, req.ISBN)
		if err != nil {
			return Response{}, err
		}
		if exists {
			return Response{}, ErrDuplicateISBN
		}
	}

	req.applyTo(&b)
	if err := s.repo.Save(ctx, &b); err != nil {
		return Response{}, err
	}
	return newResponse(b), nil
}

// Delete removes a book by id, or returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

// SearchByAuthor returns all books whose author contains the given
// text, case-insensitively. No match yields an empty list.
func (s *Service) SearchByAuthor(ctx context.Context, author string) ([]Response, error) {
	books, err := s.repo.FindByAuthorContaining(ctx, author)
	if err != nil {
		return nil, err
	}
	return newResponses(books), nil
}

// SearchByTitle returns all books whose title contains the given text,
// case-insensitively.
func (s *Service) SearchByTitle(ctx context.Context, title string) ([]Response, error) {
	books, err := s.repo.FindByTitleContaining(ctx, title)
	if err != nil {
		return nil, err
	}
	return newResponses(books), nil
}

// SearchByKeyword returns one page of books whose title, author, or
// description contains the keyword.
func (s *Service) SearchByKeyword(ctx context.Context, keyword string, page, size int) (PageResponse, error) {
	books, total, err := s.repo.FindByKeyword(ctx, keyword, size, page*size)
	if err != nil {
		return PageResponse{}, err
	}
	return newPageResponse(books, total, page, size), nil
}

// GetByYear returns all books published in the given year.
func (s *Service) GetByYear(ctx context.Context, year int) ([]Response, error) {
	books, err := s.repo.FindByPublishedYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return newResponses(books), nil
}

// GetByPriceRange returns all books priced within [min, max].
func (s *Service) GetByPriceRange(ctx context.Context, min, max float64) ([]Response, error) {
	books, err := s.repo.FindByPriceBetween(ctx, min, max)
	if err != nil {
		return nil, err
	}
	return newResponses(books), nil
}

// GetLowStock returns all books with stock strictly below threshold.
func (s *Service) GetLowStock(ctx context.Context, threshold int) ([]Response, error) {
	books, err := s.repo.FindByStockQuantityLessThan(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return newResponses(books), nil
}
