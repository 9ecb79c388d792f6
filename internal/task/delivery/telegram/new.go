package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-reminder/internal/task"
	"task-reminder/pkg/datemath"
	pkgLog "task-reminder/pkg/log"
	pkgTelegram "task-reminder/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       task.UseCase
	bot      *pkgTelegram.Bot
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new Telegram delivery handler. dateMath supplies the zone
// replies are rendered in and the day boundaries used by /list.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, dateMath *datemath.Parser) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		dateMath: dateMath,
		now:      time.Now,
	}
}
