package repository

// ListOptions holds filter parameters for listing tasks.
// Nil fields are not applied.
type ListOptions struct {
	Done *bool
}
