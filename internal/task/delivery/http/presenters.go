package http

import (
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/task"
	"task-reminder/pkg/datemath"
	"task-reminder/pkg/response"
)

// --- Request DTOs ---

type textReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

type createReq struct {
	Title    string     `json:"title"    binding:"required,max=255"`
	Notes    string     `json:"notes"    binding:"max=5000"`
	DueDate  *time.Time `json:"due_date"`
	Priority string     `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:    r.Title,
		Notes:    r.Notes,
		DueDate:  r.DueDate,
		Priority: model.Priority(r.Priority),
	}
}

type listReq struct {
	Filter string `form:"filter" binding:"omitempty,oneof=all active completed"`
	Search string `form:"search"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Filter: task.Filter(r.Filter),
		Search: r.Search,
	}
}

type updateReq struct {
	ID           string     `json:"-"` // populated from URI param
	Title        *string    `json:"title"          binding:"omitempty,max=255"`
	Notes        *string    `json:"notes"          binding:"omitempty,max=5000"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	Priority     *string    `json:"priority"       binding:"omitempty,oneof=low medium high"`
	Done         *bool      `json:"done"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Notes:        r.Notes,
		DueDate:      r.DueDate,
		ClearDueDate: r.ClearDueDate,
		Done:         r.Done,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Notes     string             `json:"notes"`
	DueDate   *response.DateTime `json:"due_date"`
	Done      bool               `json:"done"`
	Priority  string             `json:"priority"`
	CreatedAt response.DateTime  `json:"created_at"`
	UpdatedAt response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		DueDate:   response.NewDateTime(t.DueDate),
		Done:      t.Done,
		Priority:  string(t.Priority),
		CreatedAt: response.DateTime(t.CreatedAt),
		UpdatedAt: response.DateTime(t.UpdatedAt),
	}
}

type quickAddResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newQuickAddResp(out task.QuickAddOutput) quickAddResp {
	return quickAddResp{Task: newTaskResp(out.Task), CalendarLink: out.CalendarLink}
}

type parseResp struct {
	Title    string             `json:"title"`
	DueDate  *response.DateTime `json:"due_date"`
	Priority string             `json:"priority"`
}

func (h *handler) newParseResp(res datemath.ParseResult) parseResp {
	return parseResp{
		Title:    res.Title,
		DueDate:  response.NewDateTime(res.DueDate),
		Priority: string(res.Priority),
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type importResp struct {
	Imported int `json:"imported"`
}
