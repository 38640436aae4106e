package domain

// User is a registered user. Both fields are immutable once created.
type User struct {
	ID   string
	Name string
}
