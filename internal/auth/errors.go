package auth

import "errors"

var (
	ErrUsernameExists     = errors.New("username exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
