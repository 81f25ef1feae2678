package service

import (
	"context"

	"library-backend/internal/domains/loan"
	"library-backend/internal/domains/user"
	"library-backend/pkg/database"
	"library-backend/pkg/logger"
)

type userService struct {
	users user.Repository
	loans loan.Repository
	tx    database.TxManager
}

// NewUserService wires the user service with its stores and the
// unit-of-work. Dependencies are explicit so tests can inject fakes.
func NewUserService(users user.Repository, loans loan.Repository, tx database.TxManager) user.Service {
	return &userService{
		users: users,
		loans: loans,
		tx:    tx,
	}
}

func (s *userService) SaveUser(ctx context.Context, req user.CreateUserRequest) (*user.UserResponse, error) {
	u := &user.User{
		Name: req.Name,
		Age:  req.Age,
	}

	if err := s.users.Create(ctx, u); err != nil {
		logger.Error("SaveUser: create failed", err)
		return nil, err
	}

	resp := u.ToResponse()
	return &resp, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

func (s *userService) UpdateUserName(ctx context.Context, req user.UpdateUserRequest) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.FindByID(ctx, req.ID)
		if err != nil {
			return err
		}

		u.Name = req.Name
		return s.users.Update(ctx, u)
	})
}

// DeleteUser removes the first member matching name. The member's ledger
// rows are deliberately left in place, stale user id and all.
func (s *userService) DeleteUser(ctx context.Context, name string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.FindFirstByName(ctx, name)
		if err != nil {
			return err
		}

		return s.users.Delete(ctx, u.ID)
	})
}

func (s *userService) GetUserLoanHistories(ctx context.Context) ([]user.UserLoanHistoryResponse, error) {
	var result []user.UserLoanHistoryResponse

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		users, err := s.users.FindAll(ctx)
		if err != nil {
			return err
		}

		histories, err := s.loans.FindAll(ctx)
		if err != nil {
			return err
		}

		byUser := make(map[int64][]loan.History, len(users))
		for _, h := range histories {
			byUser[h.UserID] = append(byUser[h.UserID], h)
		}

		// Every member appears exactly once; members without loans keep an
		// empty (non-nil) book list.
		result = make([]user.UserLoanHistoryResponse, 0, len(users))
		for _, u := range users {
			books := make([]user.LoanedBookResponse, 0, len(byUser[u.ID]))
			for _, h := range byUser[u.ID] {
				books = append(books, user.LoanedBookResponse{
					Name:     h.BookName,
					IsReturn: h.IsReturn(),
				})
			}
			result = append(result, user.UserLoanHistoryResponse{
				Name:  u.Name,
				Books: books,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
