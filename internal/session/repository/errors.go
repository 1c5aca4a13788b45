package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert memory record")
	ErrFailedToList   = errors.New("failed to list memory records")
)
