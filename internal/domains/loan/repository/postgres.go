package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/loan"
	"library-backend/pkg/database"
)

const (
	dialectPostgres    = "postgres"
	tableLoanHistories = "loan_histories"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) loan.Repository {
	return &postgresRepository{pool: pool}
}

// q resolves the active querier: the operation's transaction when one is
// open on ctx, the pool otherwise.
func (r *postgresRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.pool)
}

func (r *postgresRepository) Create(ctx context.Context, history *loan.History) error {
	const query = `
		INSERT INTO loan_histories (user_id, book_name, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.q(ctx).QueryRow(ctx, query,
		history.UserID,
		history.BookName,
		history.Status,
	).Scan(&history.ID)
	if err != nil {
		return fmt.Errorf("failed to create loan history: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindOutstandingByBookName(ctx context.Context, bookName string) (*loan.History, error) {
	const query = `
		SELECT id, user_id, book_name, status
		FROM loan_histories
		WHERE book_name = $1 AND status = $2
		LIMIT 1
	`
	history := &loan.History{}
	err := r.q(ctx).QueryRow(ctx, query, bookName, loan.StatusLoaned).Scan(
		&history.ID,
		&history.UserID,
		&history.BookName,
		&history.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, loan.ErrLoanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find outstanding loan: %w", err)
	}
	return history, nil
}

func (r *postgresRepository) ExistsOutstandingByBookName(ctx context.Context, bookName string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM loan_histories
			WHERE book_name = $1 AND status = $2
		)
	`
	var exists bool
	if err := r.q(ctx).QueryRow(ctx, query, bookName, loan.StatusLoaned).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check outstanding loan: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]loan.History, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(tableLoanHistories).
		Select("id", "user_id", "book_name", "status").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build loan history query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan histories: %w", err)
	}
	defer rows.Close()

	var histories []loan.History
	for rows.Next() {
		var h loan.History
		if err := rows.Scan(&h.ID, &h.UserID, &h.BookName, &h.Status); err != nil {
			return nil, fmt.Errorf("failed to scan loan history: %w", err)
		}
		histories = append(histories, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read loan histories: %w", err)
	}
	return histories, nil
}

func (r *postgresRepository) Update(ctx context.Context, history *loan.History) error {
	const query = `UPDATE loan_histories SET status = $1 WHERE id = $2`
	tag, err := r.q(ctx).Exec(ctx, query, history.Status, history.ID)
	if err != nil {
		return fmt.Errorf("failed to update loan history: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}
	return nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status loan.Status) (int64, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(tableLoanHistories).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("status").Eq(string(status))).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build loan count query: %w", err)
	}

	var count int64
	if err := r.q(ctx).QueryRow(ctx, sqlQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count loans: %w", err)
	}
	return count, nil
}
