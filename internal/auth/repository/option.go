package repository

// CreateUserOptions holds parameters for inserting a new user.
type CreateUserOptions struct {
	UserID   string
	Username string
	Password string
}

// GetOneUserOptions holds filter parameters for fetching a single user.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	UserID   string
	Username string
}
