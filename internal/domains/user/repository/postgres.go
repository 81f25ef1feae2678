package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user"
	"library-backend/pkg/database"
)

const (
	dialectPostgres = "postgres"
	tableUsers      = "users"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFrom(ctx, r.pool)
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (name, age)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.q(ctx).QueryRow(ctx, query, u.Name, u.Age).Scan(&u.ID); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	const query = `SELECT id, name, age FROM users WHERE id = $1`

	u := &user.User{}
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Age)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) FindFirstByName(ctx context.Context, name string) (*user.User, error) {
	const query = `
		SELECT id, name, age
		FROM users
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`
	u := &user.User{}
	err := r.q(ctx).QueryRow(ctx, query, name).Scan(&u.ID, &u.Name, &u.Age)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by name: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]user.User, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(tableUsers).
		Select("id", "name", "age").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Age); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	const query = `UPDATE users SET name = $1, age = $2 WHERE id = $3`

	tag, err := r.q(ctx).Exec(ctx, query, u.Name, u.Age, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := r.q(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
