package repository

import "errors"

var (
	ErrFailedToLoad   = errors.New("failed to load task store")
	ErrFailedToSave   = errors.New("failed to save task store")
	ErrFailedToDelete = errors.New("failed to delete task")
)
