package cli

import (
	"context"
	"fmt"
	"strings"

	"task-reminder/internal/task"
)

// resolveID expands an id prefix, as printed by list, to a full task id.
func resolveID(ctx context.Context, prefix string) (string, error) {
	output, err := TaskUC.List(ctx, task.ListInput{})
	if err != nil {
		return "", fmt.Errorf("listing tasks: %w", err)
	}

	var matches []string
	for _, t := range output.Tasks {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", task.ErrTaskNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q matches %d tasks", prefix, len(matches))
	}
}
