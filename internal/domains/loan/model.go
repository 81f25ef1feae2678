// Package loan holds the loan-history ledger: one row per loan event,
// referencing the borrowing user and carrying the loaned book's name.
// Matching is by book name on purpose; the ledger never references the
// book catalog by id.
package loan

type Status string

const (
	StatusLoaned   Status = "LOANED"
	StatusReturned Status = "RETURNED"
)

func (s Status) Valid() bool {
	return s == StatusLoaned || s == StatusReturned
}

// History is a single ledger row. Rows are created LOANED and flip to
// RETURNED in place; they are never deleted by service logic.
type History struct {
	ID       int64
	UserID   int64
	BookName string
	Status   Status
}

// NewHistory records a fresh loan for the given user and book name.
func NewHistory(userID int64, bookName string) *History {
	return &History{
		UserID:   userID,
		BookName: bookName,
		Status:   StatusLoaned,
	}
}

func (h *History) IsReturn() bool {
	return h.Status == StatusReturned
}

// Return marks the loan as handed back. Idempotent on an already returned
// row, though the service never calls it twice for the same row.
func (h *History) Return() {
	h.Status = StatusReturned
}
