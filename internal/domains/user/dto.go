package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Age  *int   `json:"age,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Age,
			validation.Min(0).Error("age must not be negative"),
		),
	)
}

type UpdateUserRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("id is required")),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}

type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:   u.ID,
		Name: u.Name,
		Age:  u.Age,
	}
}

// LoanedBookResponse is one ledger entry seen from the member's side.
type LoanedBookResponse struct {
	Name     string `json:"name"`
	IsReturn bool   `json:"isReturn"`
}

// UserLoanHistoryResponse pairs a member with every loan they ever made.
// Books is always non-nil; a member with no loans gets an empty list.
type UserLoanHistoryResponse struct {
	Name  string               `json:"name"`
	Books []LoanedBookResponse `json:"books"`
}
