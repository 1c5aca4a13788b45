package auth

import "context"

// UseCase defines the auth business logic.
type UseCase interface {
	Signup(ctx context.Context, input CredentialsInput) (AuthOutput, error)
	Login(ctx context.Context, input CredentialsInput) (AuthOutput, error)
}
