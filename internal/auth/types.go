package auth

// User is a row in the users table.
type User struct {
	UserID   string
	Username string
	Password string
}

// CredentialsInput carries a signup or login request.
type CredentialsInput struct {
	Username string
	Password string
}

// AuthOutput is the result of a successful signup or login.
type AuthOutput struct {
	UserID string
}
