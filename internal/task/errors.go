package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("task title is empty")
	ErrInvalidPriority   = errors.New("priority must be low, medium or high")
	ErrInvalidFilter     = errors.New("filter must be all, active or completed")
	ErrInvalidImport     = errors.New("invalid import data")
	ErrUnsupportedFormat = errors.New("unsupported backup format")
)
