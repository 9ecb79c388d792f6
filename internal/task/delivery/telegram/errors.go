package telegram

import (
	"errors"

	"task-reminder/internal/task"
)

// userMessage returns the reply for errors the sender can fix. ok is false
// for failures that should be logged and reported generically.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return "Please send some text describing the task.", true
	default:
		return "", false
	}
}
