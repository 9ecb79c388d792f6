package cli

import (
	"errors"
	"time"

	"task-reminder/internal/task"
	"task-reminder/pkg/datemath"
)

// Service instances, set by cmd/taskctl before Execute.
var (
	TaskUC   task.UseCase
	DateMath *datemath.Parser

	// CalendarCredentialsPath and CalendarTokenPath feed calendar-auth.
	CalendarCredentialsPath string
	CalendarTokenPath       string

	now = time.Now
)

var errNotInitialized = errors.New("task service not initialized")

func requireTaskUC() error {
	if TaskUC == nil {
		return errNotInitialized
	}
	return nil
}
