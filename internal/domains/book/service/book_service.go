package service

import (
	"context"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/loan"
	"library-backend/internal/domains/user"
	"library-backend/pkg/database"
	"library-backend/pkg/logger"
)

type bookService struct {
	books book.Repository
	users user.Repository
	loans loan.Repository
	tx    database.TxManager
}

// NewBookService wires the book service with the catalog, the member store
// and the loan ledger, plus the unit-of-work for multi-step operations.
func NewBookService(books book.Repository, users user.Repository, loans loan.Repository, tx database.TxManager) book.Service {
	return &bookService{
		books: books,
		users: users,
		loans: loans,
		tx:    tx,
	}
}

func (s *bookService) SaveBook(ctx context.Context, req book.CreateBookRequest) (*book.BookResponse, error) {
	b, err := book.NewBook(req.Name, book.Category(req.Category))
	if err != nil {
		return nil, err
	}

	if err := s.books.Create(ctx, b); err != nil {
		logger.Error("SaveBook: create failed", err)
		return nil, err
	}

	resp := b.ToResponse()
	return &resp, nil
}

func (s *bookService) GetBooks(ctx context.Context) ([]book.BookResponse, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]book.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, books[i].ToResponse())
	}
	return responses, nil
}

// LoanBook checks for an outstanding loan and inserts the ledger row inside
// one transaction. The book catalog is not consulted: the ledger matches
// purely by book name, so loaning a name absent from the catalog succeeds.
func (s *bookService) LoanBook(ctx context.Context, req book.LoanBookRequest) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.users.FindFirstByName(ctx, req.UserName)
		if err != nil {
			return err
		}

		loaned, err := s.loans.ExistsOutstandingByBookName(ctx, req.BookName)
		if err != nil {
			return err
		}
		if loaned {
			return book.ErrBookAlreadyLoaned
		}

		return s.loans.Create(ctx, loan.NewHistory(u.ID, req.BookName))
	})
}

// ReturnBook flips the outstanding ledger row to RETURNED. The same row is
// mutated; no new row is created.
func (s *bookService) ReturnBook(ctx context.Context, req book.ReturnBookRequest) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindFirstByName(ctx, req.UserName); err != nil {
			return err
		}

		history, err := s.loans.FindOutstandingByBookName(ctx, req.BookName)
		if err != nil {
			return err
		}

		history.Return()
		return s.loans.Update(ctx, history)
	})
}

func (s *bookService) CountLoanedBooks(ctx context.Context) (int64, error) {
	return s.loans.CountByStatus(ctx, loan.StatusLoaned)
}

func (s *bookService) GetBookStatistics(ctx context.Context) ([]book.BookStatResponse, error) {
	counts, err := s.books.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]book.BookStatResponse, 0, len(counts))
	for _, cc := range counts {
		stats = append(stats, book.BookStatResponse{
			Category: cc.Category,
			Count:    cc.Count,
		})
	}
	return stats, nil
}
