package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
)

const (
	dueLayout  = "Mon 02 Jan 15:04"
	shortIDLen = 8
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	overdueHeaderStyle = headerStyle.Foreground(lipgloss.Color("196"))

	idStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)

	priorityHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Width(6)
	priorityMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Width(6)
	priorityLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Width(6)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
)

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func renderPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return priorityHigh.Render("high")
	case model.PriorityLow:
		return priorityLow.Render("low")
	default:
		return priorityMedium.Render("medium")
	}
}

func renderDue(due *time.Time, loc *time.Location) string {
	if due == nil {
		return "none"
	}
	return dueStyle.Render(due.In(loc).Format(dueLayout))
}

// renderTask prints one task as a labelled block.
func renderTask(t model.Task, loc *time.Location) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("id"), t.ID)
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("title"), t.Title)
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("due"), renderDue(t.DueDate, loc))
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("priority"), renderPriority(t.Priority))
	if t.Notes != "" {
		fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("notes"), t.Notes)
	}
	if t.Done {
		fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("status"), "done")
	}
	return sb.String()
}

// renderSections prints grouped tasks, one line per task.
func renderSections(sections []task.Section, loc *time.Location) string {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		style := headerStyle
		if s.Name == task.SectionOverdue {
			style = overdueHeaderStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s (%d)", s.Name, len(s.Tasks))))
		sb.WriteString("\n")
		for _, t := range s.Tasks {
			title := t.Title
			if t.Done {
				title = doneStyle.Render(title)
			}
			fmt.Fprintf(&sb, "  %s  %s  %s", idStyle.Render(shortID(t.ID)), renderPriority(t.Priority), title)
			if t.DueDate != nil {
				fmt.Fprintf(&sb, "  %s", renderDue(t.DueDate, loc))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
