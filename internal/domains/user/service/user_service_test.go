package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/loan"
	"library-backend/internal/domains/user"
	"library-backend/pkg/database"
)

type noopTxManager struct{}

func (noopTxManager) WithinTx(ctx context.Context, fn database.TxFunc) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	seq   int64
	users []user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.seq++
	u.ID = r.seq
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindFirstByName(_ context.Context, name string) (*user.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]user.User, error) {
	return append([]user.User(nil), r.users...), nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}

type fakeLoanRepo struct {
	seq       int64
	histories []loan.History
}

func (r *fakeLoanRepo) Create(_ context.Context, h *loan.History) error {
	r.seq++
	h.ID = r.seq
	r.histories = append(r.histories, *h)
	return nil
}

func (r *fakeLoanRepo) FindOutstandingByBookName(_ context.Context, bookName string) (*loan.History, error) {
	for _, h := range r.histories {
		if h.BookName == bookName && h.Status == loan.StatusLoaned {
			found := h
			return &found, nil
		}
	}
	return nil, loan.ErrLoanNotFound
}

func (r *fakeLoanRepo) ExistsOutstandingByBookName(ctx context.Context, bookName string) (bool, error) {
	_, err := r.FindOutstandingByBookName(ctx, bookName)
	return err == nil, nil
}

func (r *fakeLoanRepo) FindAll(_ context.Context) ([]loan.History, error) {
	return append([]loan.History(nil), r.histories...), nil
}

func (r *fakeLoanRepo) Update(_ context.Context, h *loan.History) error {
	for i := range r.histories {
		if r.histories[i].ID == h.ID {
			r.histories[i] = *h
			return nil
		}
	}
	return loan.ErrLoanNotFound
}

func (r *fakeLoanRepo) CountByStatus(_ context.Context, status loan.Status) (int64, error) {
	var count int64
	for _, h := range r.histories {
		if h.Status == status {
			count++
		}
	}
	return count, nil
}

type userServiceFixture struct {
	service user.Service
	users   *fakeUserRepo
	loans   *fakeLoanRepo
}

func newUserServiceFixture() *userServiceFixture {
	users := &fakeUserRepo{}
	loans := &fakeLoanRepo{}
	return &userServiceFixture{
		service: NewUserService(users, loans, noopTxManager{}),
		users:   users,
		loans:   loans,
	}
}

func intPtr(v int) *int { return &v }

func TestSaveUser(t *testing.T) {
	f := newUserServiceFixture()

	created, err := f.service.SaveUser(context.Background(), user.CreateUserRequest{Name: "A"})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	users, _ := f.users.FindAll(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "A", users[0].Name)
	assert.Nil(t, users[0].Age)
}

func TestSaveUserWithAge(t *testing.T) {
	f := newUserServiceFixture()

	created, err := f.service.SaveUser(context.Background(), user.CreateUserRequest{
		Name: "A",
		Age:  intPtr(20),
	})

	require.NoError(t, err)
	require.NotNil(t, created.Age)
	assert.Equal(t, 20, *created.Age)
}

func TestGetUsers(t *testing.T) {
	f := newUserServiceFixture()
	require.NoError(t, f.users.Create(context.Background(), &user.User{Name: "A", Age: intPtr(20)}))
	require.NoError(t, f.users.Create(context.Background(), &user.User{Name: "B"}))

	results, err := f.service.GetUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 2)

	names := []string{results[0].Name, results[1].Name}
	assert.ElementsMatch(t, []string{"A", "B"}, names)
}

func TestUpdateUserName(t *testing.T) {
	f := newUserServiceFixture()
	u := &user.User{Name: "A", Age: intPtr(20)}
	require.NoError(t, f.users.Create(context.Background(), u))

	err := f.service.UpdateUserName(context.Background(), user.UpdateUserRequest{
		ID:   u.ID,
		Name: "A1",
	})

	require.NoError(t, err)

	updated, err := f.users.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1", updated.Name)
}

func TestUpdateUserNameUnknownIDFails(t *testing.T) {
	f := newUserServiceFixture()

	err := f.service.UpdateUserName(context.Background(), user.UpdateUserRequest{
		ID:   42,
		Name: "A1",
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	f := newUserServiceFixture()
	require.NoError(t, f.users.Create(context.Background(), &user.User{Name: "A"}))

	err := f.service.DeleteUser(context.Background(), "A")

	require.NoError(t, err)

	users, _ := f.users.FindAll(context.Background())
	assert.Empty(t, users)
}

func TestDeleteUserUnknownNameFails(t *testing.T) {
	f := newUserServiceFixture()

	err := f.service.DeleteUser(context.Background(), "A")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteUserRemovesOnlyFirstMatch(t *testing.T) {
	f := newUserServiceFixture()
	first := &user.User{Name: "A"}
	require.NoError(t, f.users.Create(context.Background(), first))
	require.NoError(t, f.users.Create(context.Background(), &user.User{Name: "A"}))

	err := f.service.DeleteUser(context.Background(), "A")

	require.NoError(t, err)

	users, _ := f.users.FindAll(context.Background())
	require.Len(t, users, 1)
	assert.NotEqual(t, first.ID, users[0].ID)
}

func TestDeleteUserKeepsLoanHistories(t *testing.T) {
	f := newUserServiceFixture()
	u := &user.User{Name: "A"}
	require.NoError(t, f.users.Create(context.Background(), u))
	require.NoError(t, f.loans.Create(context.Background(), loan.NewHistory(u.ID, "The Alchemist")))

	err := f.service.DeleteUser(context.Background(), "A")

	require.NoError(t, err)

	// Ledger rows survive the delete, stale user id included.
	histories, _ := f.loans.FindAll(context.Background())
	require.Len(t, histories, 1)
	assert.Equal(t, u.ID, histories[0].UserID)
}

func TestGetUserLoanHistoriesWithoutLoans(t *testing.T) {
	f := newUserServiceFixture()
	require.NoError(t, f.users.Create(context.Background(), &user.User{Name: "A"}))

	results, err := f.service.GetUserLoanHistories(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Name)
	assert.NotNil(t, results[0].Books)
	assert.Empty(t, results[0].Books)
}

func TestGetUserLoanHistoriesWithLoans(t *testing.T) {
	f := newUserServiceFixture()
	u := &user.User{Name: "A"}
	require.NoError(t, f.users.Create(context.Background(), u))

	require.NoError(t, f.loans.Create(context.Background(), loan.NewHistory(u.ID, "book1")))
	require.NoError(t, f.loans.Create(context.Background(), loan.NewHistory(u.ID, "book2")))
	returned := loan.NewHistory(u.ID, "book3")
	returned.Return()
	require.NoError(t, f.loans.Create(context.Background(), returned))

	results, err := f.service.GetUserLoanHistories(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Name)
	require.Len(t, results[0].Books, 3)

	var names []string
	var returns []bool
	for _, b := range results[0].Books {
		names = append(names, b.Name)
		returns = append(returns, b.IsReturn)
	}
	assert.ElementsMatch(t, []string{"book1", "book2", "book3"}, names)
	assert.ElementsMatch(t, []bool{false, false, true}, returns)
}

func TestGetUserLoanHistoriesIgnoresOtherUsersLoans(t *testing.T) {
	f := newUserServiceFixture()
	a := &user.User{Name: "A"}
	b := &user.User{Name: "B"}
	require.NoError(t, f.users.Create(context.Background(), a))
	require.NoError(t, f.users.Create(context.Background(), b))
	require.NoError(t, f.loans.Create(context.Background(), loan.NewHistory(a.ID, "book1")))

	results, err := f.service.GetUserLoanHistories(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := make(map[string][]user.LoanedBookResponse, 2)
	for _, r := range results {
		byName[r.Name] = r.Books
	}
	assert.Len(t, byName["A"], 1)
	assert.Empty(t, byName["B"])
}
