package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToList   = errors.New("failed to list")
)
