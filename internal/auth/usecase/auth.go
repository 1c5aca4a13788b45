package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"novacart-support/internal/auth"
	"novacart-support/internal/auth/repository"
)

// Signup registers a new user and returns the generated user ID.
func (uc *implUseCase) Signup(ctx context.Context, input auth.CredentialsInput) (auth.AuthOutput, error) {
	userID := newUserID()

	_, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		UserID:   userID,
		Username: input.Username,
		Password: input.Password,
	})
	if err == repository.ErrDuplicateUser {
		return auth.AuthOutput{}, auth.ErrUsernameExists
	}
	if err != nil {
		return auth.AuthOutput{}, fmt.Errorf("failed to create user: %w", err)
	}

	uc.l.Infof(ctx, "Signup: user=%s username=%s", userID, input.Username)
	return auth.AuthOutput{UserID: userID}, nil
}

// Login checks the credentials and returns the user ID.
func (uc *implUseCase) Login(ctx context.Context, input auth.CredentialsInput) (auth.AuthOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Username: input.Username})
	if err != nil {
		return auth.AuthOutput{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user.UserID == "" || user.Password != input.Password {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	uc.l.Infof(ctx, "Login: user=%s", user.UserID)
	return auth.AuthOutput{UserID: user.UserID}, nil
}

// newUserID generates a user ID like "user_3fa2b1".
func newUserID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "user_" + hex[:6]
}
