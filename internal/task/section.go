package task

import (
	"time"

	"task-reminder/internal/model"
)

// Section is a named group of tasks for display.
type Section struct {
	Name  string
	Tasks []model.Task
}

const (
	SectionOverdue   = "Overdue"
	SectionToday     = "Due Today"
	SectionUpcoming  = "Upcoming"
	SectionNoDueDate = "No Due Date"
	SectionCompleted = "Completed"
)

// Sections splits already sorted tasks into display groups relative to the
// day [startOfDay, endOfDay]. Empty groups are omitted; order is preserved.
func Sections(tasks []model.Task, startOfDay, endOfDay time.Time) []Section {
	groups := map[string][]model.Task{}
	for _, t := range tasks {
		var name string
		switch {
		case t.Done:
			name = SectionCompleted
		case t.DueDate == nil:
			name = SectionNoDueDate
		case t.DueDate.Before(startOfDay):
			name = SectionOverdue
		case t.DueDate.After(endOfDay):
			name = SectionUpcoming
		default:
			name = SectionToday
		}
		groups[name] = append(groups[name], t)
	}

	order := []string{SectionOverdue, SectionToday, SectionUpcoming, SectionNoDueDate, SectionCompleted}
	sections := make([]Section, 0, len(order))
	for _, name := range order {
		if len(groups[name]) > 0 {
			sections = append(sections, Section{Name: name, Tasks: groups[name]})
		}
	}
	return sections
}
