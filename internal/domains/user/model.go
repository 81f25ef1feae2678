// Package user owns library member records and the aggregate
// user-to-loan-history view.
package user

// User is a library member. Age is optional; nil means unknown.
type User struct {
	ID   int64
	Name string
	Age  *int
}
