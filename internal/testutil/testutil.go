package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookcatalog/internal/book"
)

func intPtr(n int) *int           { return &n }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// TestBook is a persisted book fixture.
var TestBook = book.Book{
	ID:            789,
	Title:         "The Great Gatsby",
	Author:        "F. Scott Fitzgerald",
	ISBN:          "978-0-123456-78-9",
	PublishedYear: intPtr(1925),
	Description:   strPtr("A classic American novel"),
	Price:         29.99,
	StockQuantity: 100,
	CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	UpdatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
}

// ValidRequest returns a well-formed inbound book shape.
func ValidRequest() book.Request {
	return book.Request{
		Title:         "The Great Gatsby",
		Author:        "F. Scott Fitzgerald",
		ISBN:          "978-0-123456-78-9",
		PublishedYear: intPtr(1925),
		Description:   strPtr("A classic American novel"),
		Price:         floatPtr(29.99),
		StockQuantity: intPtr(100),
	}
}

// NewRequest creates a new HTTP request for testing. A non-nil body is
// JSON-encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse is a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorded response body as a JSON
// object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
