package http

import (
	"task-reminder/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route goes through the rate limiter and API key check.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit(), mw.Auth())
	{
		tasks.POST("/quick", h.QuickAdd)
		tasks.POST("/parse", h.Parse)
		tasks.GET("/export", h.Export)
		tasks.POST("/import", h.Import)

		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
	}
}
