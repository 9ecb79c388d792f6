package telegram

import (
	"fmt"
	"strings"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
)

const dueLayout = "Mon, 02 Jan 2006 15:04"

// maxListed caps the tasks shown per section so replies stay under
// Telegram's message size limit.
const maxListed = 10

func (h *handler) formatCreated(out task.QuickAddOutput) string {
	var sb strings.Builder
	sb.WriteString("✅ Task added\n")
	sb.WriteString(out.Task.Title)
	sb.WriteString("\n")
	if out.Task.DueDate != nil {
		fmt.Fprintf(&sb, "\n📅 Due: %s", out.Task.DueDate.In(h.dateMath.Location()).Format(dueLayout))
	} else {
		sb.WriteString("\n📅 No due date")
	}
	fmt.Fprintf(&sb, "\n%s Priority: %s", priorityIcon(out.Task.Priority), out.Task.Priority)
	if out.CalendarLink != "" {
		fmt.Fprintf(&sb, "\n🔗 %s", out.CalendarLink)
	}
	return sb.String()
}

func (h *handler) formatSections(sections []task.Section) string {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s (%d)\n", s.Name, len(s.Tasks))
		for j, t := range s.Tasks {
			if j == maxListed {
				fmt.Fprintf(&sb, "  … and %d more\n", len(s.Tasks)-maxListed)
				break
			}
			sb.WriteString("  ")
			sb.WriteString(priorityIcon(t.Priority))
			sb.WriteString(" ")
			sb.WriteString(t.Title)
			if t.DueDate != nil {
				sb.WriteString(" · ")
				sb.WriteString(t.DueDate.In(h.dateMath.Location()).Format(dueLayout))
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func priorityIcon(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityLow:
		return "🟢"
	default:
		return "🟡"
	}
}
