package user

import "context"

// Repository is the member store contract.
type Repository interface {
	// Create persists a new user and fills in the generated id.
	Create(ctx context.Context, user *User) error

	// FindByID returns the user with the given id.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindFirstByName returns the first user matching the name. Multiple
	// users may share a name; the lowest id wins.
	// Returns ErrUserNotFound when none match.
	FindFirstByName(ctx context.Context, name string) (*User, error)

	// FindAll returns every user, order not significant.
	FindAll(ctx context.Context) ([]User, error)

	// Update persists the user's current field values.
	Update(ctx context.Context, user *User) error

	// Delete removes the single user with the given id. Loan-history rows
	// referencing the user are left untouched.
	Delete(ctx context.Context, id int64) error
}
