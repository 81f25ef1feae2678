package user

import "context"

// Service is the user-facing business logic contract.
type Service interface {
	// SaveUser registers a new member.
	SaveUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)

	// GetUsers returns all members.
	GetUsers(ctx context.Context) ([]UserResponse, error)

	// UpdateUserName renames the member with the given id.
	// Returns ErrUserNotFound when the id is unknown.
	UpdateUserName(ctx context.Context, req UpdateUserRequest) error

	// DeleteUser removes the first member matching the name.
	// Returns ErrUserNotFound when none match.
	DeleteUser(ctx context.Context, name string) error

	// GetUserLoanHistories returns every member exactly once together with
	// their complete loan record, returned or not.
	GetUserLoanHistories(ctx context.Context) ([]UserLoanHistoryResponse, error)
}
