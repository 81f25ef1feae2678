// Package container is the dependency-injection root. Initialization order
// matters: config, then infrastructure, then repositories, services and
// handlers. Nothing reaches for global state; every dependency is passed
// down explicitly so each layer stays testable on its own.
package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/database"
	pkgdb "library-backend/pkg/database"

	bookdomain "library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"

	userdomain "library-backend/internal/domains/user"
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"

	loandomain "library-backend/internal/domains/loan"
	loanRepo "library-backend/internal/domains/loan/repository"
)

type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Tx     pkgdb.TxManager

	UserRepo userdomain.Repository
	BookRepo bookdomain.Repository
	LoanRepo loandomain.Repository

	UserService userdomain.Service
	BookService bookdomain.Service

	UserHandler *userHandler.UserHandler
	BookHandler *bookHandler.BookHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	c.Tx = pkgdb.NewTxManager(db.Pool)

	// Repositories
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.LoanRepo = loanRepo.NewPostgresRepository(db.Pool)

	// Services
	c.UserService = userService.NewUserService(c.UserRepo, c.LoanRepo, c.Tx)
	c.BookService = bookService.NewBookService(c.BookRepo, c.UserRepo, c.LoanRepo, c.Tx)

	// Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases long-lived resources. Call it on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
