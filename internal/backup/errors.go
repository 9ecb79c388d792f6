package backup

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported backup format")
	ErrInvalidData       = errors.New("invalid backup data")
)
