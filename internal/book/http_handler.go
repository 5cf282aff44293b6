package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bookcatalog/internal/httpx"
)

const maxPageSize = 100

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// @Summary Create a new book
// @Description Creates a new book in the catalog
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} Response
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/v1/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// unreadable bodies fall through to the catch-all envelope
		httpx.InternalError(w, r)
		return
	}

	if verrs := ValidateRequest(req); verrs != nil {
		httpx.ValidationFailed(w, r, verrs)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "", req.ISBN)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

// @Summary Get all books
// @Description Retrieves all books with pagination and sorting
// @Tags books
// @Produce json
// @Param page query int false "Page number (0-based)" default(0)
// @Param size query int false "Items per page" default(10)
// @Param sortBy query string false "Sort field" default(id)
// @Param sortDir query string false "Sort direction (asc|desc)" default(asc)
// @Success 200 {object} PageResponse
// @Router /api/v1/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, size, verrs := parsePageParams(query)

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = "id"
	}
	if _, ok := SortColumn(sortBy); !ok {
		verrs = append(verrs, "sortBy: unsupported sort field")
	}

	if verrs != nil {
		httpx.ValidationFailed(w, r, verrs)
		return
	}

	books, err := h.service.List(r.Context(), ListQuery{
		Page:     page,
		Size:     size,
		SortBy:   sortBy,
		SortDesc: strings.EqualFold(query.Get("sortDir"), "desc"),
	})
	if err != nil {
		h.writeError(w, r, err, "", "")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Get book by ID
// @Description Retrieves a specific book by its ID
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Response
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, notFoundDetails(id), "")
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// @Summary Update book
// @Description Updates an existing book, overwriting every mutable field
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.InternalError(w, r)
		return
	}

	if verrs := ValidateRequest(req); verrs != nil {
		httpx.ValidationFailed(w, r, verrs)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err, notFoundDetails(id), req.ISBN)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// @Summary Delete book
// @Description Deletes a book from the catalog
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/v1/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err, notFoundDetails(id), "")
		return
	}
	httpx.NoContent(w)
}

// @Summary Search books by author
// @Description Case-insensitive substring search on the author field
// @Tags books
// @Produce json
// @Param author query string true "Author name"
// @Success 200 {array} Response
// @Router /api/v1/books/search/author [get]
func (h *HTTPHandler) SearchByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.SearchByAuthor(r.Context(), r.URL.Query().Get("author"))
	if err != nil {
		h.writeError(w, r, err, "", "")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Search books by title
// @Description Case-insensitive substring search on the title field
// @Tags books
// @Produce json
// @Param title query string true "Book title"
// @Success 200 {array} Response
// @Router /api/v1/books/search/title [get]
func (h *HTTPHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.SearchByTitle(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		h.writeError(w, r, err, "", "")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Search books by keyword
// @Description Case-insensitive substring match in title, author, or description
// @Tags books
// @Produce json
// @Param keyword query string true "Search keyword"
// @Param page query int false "Page number (0-based)" default(0)
// @Param size query int false "Items per page" default(10)
// @Success 200 {object} PageResponse
// @Router /api/v1/books/search [get]
func (h *HTTPHandler) SearchByKeyword(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, size, verrs := parsePageParams(query)
	if verrs != nil {
		httpx.ValidationFailed(w, r, verrs)
		return
	}

	books, err := h.service.SearchByKeyword(r.Context(), query.Get("keyword"), page, size)
	if err != nil {
		h.writeError(w, r, err, "", "")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Get books by publication year
// @Description Retrieves books published in a specific year
// @Tags books
// @Produce json
// @Param year path int true "Publication year"
// @Success 200 {array} Response
// @Router /api/v1/books/year/{year} [get]
func (h *HTTPHandler) GetByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1000 {
		httpx.ValidationFailed(w, r, []string{"year: must be a year of 1000 or later"})
		return
	}

	books, err := h.service.GetByYear(r.Context(), year)
	if err != nil {
		h.writeError(w, r, err, "", "")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Get books by price range
// @Description Retrieves books priced within [minPrice, maxPrice], inclusive
// @Tags books
// @Produce json
// @Param minPrice query number true "Minimum price"
// @Param maxPrice query number true "Maximum price"
// @Success 200 {array} Response
// @Router /api/v1/books/price-range [get]
func (h *HTTPHandler) GetByPriceRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var verrs []string
	minPrice, err := strconv.ParseFloat(query.Get("minPrice"), 64)
	if err != nil {
		verrs = append(verrs, "minPrice: must be a number")
	}
	maxPrice, err := strconv.ParseFloat(query.Get("maxPrice"), 64)
	if err != nil {
		verrs = append(verrs, "maxPrice: must be a number")
	}
	if verrs != nil {
		httpx.ValidationFailed(w, r, verrs)
		return
	}

	books, err := h.service.GetByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		h.writeError(w, r, err, "", "")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// @Summary Get low stock books
// @Description Retrieves books with stock quantity strictly below threshold
// @Tags books
// @Produce json
// @Param threshold query int true "Stock threshold"
// @Success 200 {array} Response
// @Router /api/v1/books/low-stock [get]
func (h *HTTPHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := strconv.Atoi(r.URL.Query().Get("threshold"))
	if err != nil || threshold < 0 {
		httpx.ValidationFailed(w, r, []string{"threshold: must be a non-negative integer"})
		return
	}

	books, err := h.service.GetLowStock(r.Context(), threshold)
	if err != nil {
		h.writeError(w, r, err, "", "")
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// writeError maps service and store failures onto the error envelope.
// A duplicate ISBN caught by the service pre-check reports 400; one
// caught by the unique index itself reports 409.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundDetails, isbn string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, r, http.StatusNotFound, "Book Not Found", notFoundDetails)
	case errors.Is(err, ErrDuplicateISBN):
		httpx.Error(w, r, http.StatusBadRequest, "Validation Error",
			"Book with ISBN "+isbn+" already exists")
	case errors.Is(err, ErrDuplicateKey):
		httpx.Error(w, r, http.StatusConflict, "Data Integrity Violation",
			"Duplicate entry - resource already exists")
	case errors.Is(err, ErrIntegrity):
		httpx.Error(w, r, http.StatusConflict, "Data Integrity Violation",
			"Data integrity violation")
	default:
		httpx.InternalError(w, r)
	}
}

func notFoundDetails(id int64) string {
	return "Book not found with ID: " + strconv.FormatInt(id, 10)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		httpx.ValidationFailed(w, r, []string{"id: must be a positive integer"})
		return 0, false
	}
	return id, true
}

func parsePageParams(query url.Values) (page, size int, verrs []string) {
	page, size = 0, 10

	if v := query.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			verrs = append(verrs, "page: must be a non-negative integer")
		} else {
			page = n
		}
	}
	if v := query.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil || n < 1:
			verrs = append(verrs, "size: must be a positive integer")
		case n > maxPageSize:
			size = maxPageSize
		default:
			size = n
		}
	}
	return page, size, verrs
}
