package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToSearch = errors.New("failed to search documents")
)
