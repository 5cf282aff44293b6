package book

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn", validateISBN)
}

var (
	isbnPrefixRe = regexp.MustCompile(`^(?i)ISBN(-1[03])?:?\s*`)
	isbn10Re     = regexp.MustCompile(`^\d{9}[\dX]$`)
	isbn13Re     = regexp.MustCompile(`^97[89]\d{10}$`)
)

// validateISBN accepts ISBN-10 or ISBN-13, with optional hyphens,
// spaces, and an optional "ISBN"/"ISBN-10"/"ISBN-13" prefix.
func validateISBN(fl validator.FieldLevel) bool {
	isbn := isbnPrefixRe.ReplaceAllString(fl.Field().String(), "")
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")
	isbn = strings.ToUpper(isbn)

	switch len(isbn) {
	case 10:
		return isbn10Re.MatchString(isbn)
	case 13:
		return isbn13Re.MatchString(isbn)
	}
	return false
}

// fieldMessages carries the per-field, per-rule validation messages,
// keyed by "<field>.<tag>".
var fieldMessages = map[string]string{
	"Title.required":         "Title is required",
	"Title.min":              "Title must be between 1 and 255 characters",
	"Title.max":              "Title must be between 1 and 255 characters",
	"Author.required":        "Author is required",
	"Author.min":             "Author must be between 1 and 255 characters",
	"Author.max":             "Author must be between 1 and 255 characters",
	"ISBN.required":          "ISBN is required",
	"ISBN.isbn":              "Invalid ISBN format",
	"PublishedYear.gte":      "Published year must be at least 1000",
	"PublishedYear.lte":      "Published year cannot be in the future",
	"Price.required":         "Price is required",
	"Price.gt":               "Price must be greater than 0",
	"StockQuantity.required": "Stock quantity is required",
	"StockQuantity.gte":      "Stock quantity cannot be negative",
}

// jsonFields maps struct field names to their wire names.
var jsonFields = map[string]string{
	"Title":         "title",
	"Author":        "author",
	"ISBN":          "isbn",
	"PublishedYear": "publishedYear",
	"Description":   "description",
	"Price":         "price",
	"StockQuantity": "stockQuantity",
}

// ValidateRequest checks the inbound shape and returns one
// "<field>: <message>" entry per offending field. A nil result means
// the request is valid.
func ValidateRequest(r Request) []string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var out []string
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		name, ok := jsonFields[field]
		if !ok {
			name = strings.ToLower(field[:1]) + field[1:]
		}

		msg, ok := fieldMessages[field+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", name)
		}
		out = append(out, name+": "+msg)
	}
	return out
}
