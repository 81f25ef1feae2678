package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/pkg/database"
)

const (
	dialectPostgres = "postgres"
	tableBooks      = "books"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.pool)
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	const query = `
		INSERT INTO books (name, category)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.q(ctx).QueryRow(ctx, query, b.Name, b.Category).Scan(&b.ID); err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]book.Book, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Select("id", "name", "category").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Category); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) CountByCategory(ctx context.Context) ([]book.CategoryCount, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(tableBooks).
		Select(goqu.C("category"), goqu.COUNT(goqu.Star()).As("count")).
		GroupBy(goqu.C("category")).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build statistics query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to count books by category: %w", err)
	}
	defer rows.Close()

	var counts []book.CategoryCount
	for rows.Next() {
		var cc book.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts = append(counts, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category counts: %w", err)
	}
	return counts, nil
}
