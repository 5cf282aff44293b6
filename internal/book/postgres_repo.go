package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = "id, title, author, isbn, published_year, description, price, stock_quantity, created_at, updated_at"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Save(ctx context.Context, b *Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if b.ID == 0 {
		const sql = `
			INSERT INTO books (title, author, isbn, published_year, description, price, stock_quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`
		err := r.db.QueryRow(timeoutCtx, sql,
			b.Title, b.Author, b.ISBN, b.PublishedYear, b.Description, b.Price, b.StockQuantity,
		).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
		return translateError(err)
	}

	const sql = `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, published_year = $4,
		    description = $5, price = $6, stock_quantity = $7, updated_at = now()
		WHERE id = $8
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(timeoutCtx, sql,
		b.Title, b.Author, b.ISBN, b.PublishedYear, b.Description, b.Price, b.StockQuantity, b.ID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return translateError(err)
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	return r.findOne(ctx, "WHERE id = $1", id)
}

func (r *PostgresRepo) FindByISBN(ctx context.Context, isbn string) (Book, error) {
	return r.findOne(ctx, "WHERE isbn = $1", isbn)
}

func (r *PostgresRepo) findOne(ctx context.Context, where string, arg any) (Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books %s LIMIT 1", bookColumns, where)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var b Book
	err := r.db.QueryRow(timeoutCtx, query, arg).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishedYear, &b.Description,
		&b.Price, &b.StockQuantity, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)", isbn)
}

func (r *PostgresRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)", id)
}

func (r *PostgresRepo) exists(ctx context.Context, query string, arg any) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var found bool
	err := r.db.QueryRow(timeoutCtx, query, arg).Scan(&found)
	return found, err
}

func (r *PostgresRepo) FindAll(ctx context.Context, q ListQuery) ([]Book, int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var total int
	if err := r.db.QueryRow(timeoutCtx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := SortColumn(q.SortBy)
	if !ok {
		col = "id"
	}
	order := "ASC"
	if q.SortDesc {
		order = "DESC"
	}
	orderBy := col + " " + order
	if col != "id" {
		// stable ordering across pages for non-unique sort columns
		orderBy += ", id ASC"
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM books
		ORDER BY %s
		LIMIT $1 OFFSET $2`, bookColumns, orderBy)

	books, err := r.queryBooks(ctx, dataSQL, q.Limit(), q.Offset())
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *PostgresRepo) FindByAuthorContaining(ctx context.Context, author string) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE author ILIKE $1", bookColumns)
	return r.queryBooks(ctx, query, "%"+author+"%")
}

func (r *PostgresRepo) FindByTitleContaining(ctx context.Context, title string) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE title ILIKE $1", bookColumns)
	return r.queryBooks(ctx, query, "%"+title+"%")
}

func (r *PostgresRepo) FindByKeyword(ctx context.Context, keyword string, limit, offset int) ([]Book, int, error) {
	const where = "WHERE title ILIKE $1 OR author ILIKE $1 OR description ILIKE $1"
	pattern := "%" + keyword + "%"

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var total int
	countSQL := "SELECT COUNT(*) FROM books " + where
	if err := r.db.QueryRow(timeoutCtx, countSQL, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM books
		%s
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`, bookColumns, where)

	books, err := r.queryBooks(ctx, dataSQL, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *PostgresRepo) FindByPublishedYear(ctx context.Context, year int) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE published_year = $1", bookColumns)
	return r.queryBooks(ctx, query, year)
}

func (r *PostgresRepo) FindByPriceBetween(ctx context.Context, min, max float64) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE price BETWEEN $1 AND $2", bookColumns)
	return r.queryBooks(ctx, query, min, max)
}

func (r *PostgresRepo) FindByStockQuantityLessThan(ctx context.Context, threshold int) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE stock_quantity < $1", bookColumns)
	return r.queryBooks(ctx, query, threshold)
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishedYear, &b.Description,
			&b.Price, &b.StockQuantity, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// translateError maps Postgres integrity-constraint rejections onto the
// domain error sentinels. A unique violation, e.g. a concurrent create
// racing past the service pre-check, becomes ErrDuplicateKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		if pgErr.Code == pgerrUniqueViolation || strings.Contains(strings.ToLower(pgErr.Message), "unique") {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s", ErrIntegrity, pgErr.Message)
	}
	return err
}

const pgerrUniqueViolation = "23505"
