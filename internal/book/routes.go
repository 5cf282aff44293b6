package book

import (
	"net/http"

	"bookcatalog/internal/httpx"
)

// Register mounts the book resource under /api/v1/books.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.Handle("/api/v1/books", httpx.MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(h.Create),
		http.MethodGet:  http.HandlerFunc(h.List),
	}))
	mux.Handle("/api/v1/books/{id}", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(h.GetByID),
		http.MethodPut:    http.HandlerFunc(h.Update),
		http.MethodDelete: http.HandlerFunc(h.Delete),
	}))
	mux.Handle("/api/v1/books/search", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(h.SearchByKeyword),
	}))
	mux.Handle("/api/v1/books/search/author", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(h.SearchByAuthor),
	}))
	mux.Handle("/api/v1/books/search/title", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(h.SearchByTitle),
	}))
	mux.Handle("/api/v1/books/year/{year}", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(h.GetByYear),
	}))
	mux.Handle("/api/v1/books/price-range", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(h.GetByPriceRange),
	}))
	mux.Handle("/api/v1/books/low-stock", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(h.GetLowStock),
	}))
}
