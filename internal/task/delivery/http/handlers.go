package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-reminder/internal/task"
	"task-reminder/pkg/response"
)

// QuickAdd godoc
// @Summary     Quick add a task
// @Description Parses a free-form sentence into title, due date and priority and stores the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Sentence, e.g. 'high priority call mom tomorrow at 5pm'"
// @Success     201  {object} quickAddResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/quick [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, task.QuickAddInput{Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newQuickAddResp(output))
}

// Parse godoc
// @Summary     Preview quick add
// @Description Runs the quick-add parser without storing anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Sentence to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, task.PreviewInput{Text: req.Text})
	if err != nil {
		h.l.Warnf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output.Result))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from explicit fields.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDetailResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks sorted open first, then by due date and priority.
// @Tags        Tasks
// @Produce     json
// @Param       filter query string false "all, active or completed"
// @Param       search query string false "Case-insensitive match on title and notes"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update; omitted fields are left untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	t, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.ToggleDone(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleDone: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Export godoc
// @Summary     Export tasks
// @Description Downloads every task as a backup file.
// @Tags        Tasks
// @Produce     json
// @Produce     application/yaml
// @Produce     application/toml
// @Param       format query string false "json (default), yaml or toml"
// @Success     200
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Export(ctx, task.ExportInput{Format: c.Query("format")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, output.ContentType, output.Data)
}

// Import godoc
// @Summary     Import tasks
// @Description Replaces every stored task with the uploaded backup.
// @Tags        Tasks
// @Accept      json
// @Accept      application/yaml
// @Accept      application/toml
// @Produce     json
// @Param       format query string false "json (default), yaml or toml"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Invalid backup"
// @Security    ApiKeyAuth
// @Router      /api/v1/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.processImportReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Import(ctx, task.ImportInput{Data: data, Format: c.Query("format")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, importResp{Imported: output.Count})
}
