package user

// Repository defines the contract for account storage operations.
// Uniqueness of usernames is enforced by the storage layer itself, so
// Create never pre-checks for an existing row.
type Repository interface {
	Create(user *User) error
	GetByID(id string) (*User, error)
	GetByUsername(username string) (*User, error)
}
