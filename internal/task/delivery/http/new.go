package http

import (
	"github.com/gin-gonic/gin"

	"task-reminder/internal/task"
	"task-reminder/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	QuickAdd(c *gin.Context)
	Parse(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Toggle(c *gin.Context)
	Export(c *gin.Context)
	Import(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
