package telegram

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"task-reminder/internal/task"
	pkgLog "task-reminder/pkg/log"
	pkgResponse "task-reminder/pkg/response"
	pkgTelegram "task-reminder/pkg/telegram"
)

const (
	msgStart = "👋 Welcome to Task Reminder!\n\n" +
		"Send me any sentence and I will turn it into a task, e.g.\n" +
		"\"high priority call mom tomorrow at 5pm\"\n\n" +
		"Type /help for the full syntax."
	msgHelp = "How to write a task:\n\n" +
		"• Priority: \"low priority\", \"high priority\"\n" +
		"• Day: \"today\", \"tomorrow\", \"friday\"\n" +
		"• Offset: \"in 2 hours\", \"in 3 days\", \"in 1 week\"\n" +
		"• Time: \"at 9\", \"5:30 pm\", \"14:00\"\n" +
		"• \"remind me to\" at the start is ignored\n\n" +
		"Commands:\n/list - open tasks grouped by due date\n/help - this message"
	msgFailed = "Something went wrong while saving your task. Please try again."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so Telegram never waits on the store or calendar.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.ValidationError(c, err)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	// The request context is cancelled once the response is written.
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestIDFromContext(ctx))

	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, msgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch command(text) {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, msgStart)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, msgHelp)
	case "/list":
		return h.handleList(ctx, msg.Chat.ID)
	}

	return h.handleQuickAdd(ctx, msg.Chat.ID, text)
}

func (h *handler) handleQuickAdd(ctx context.Context, chatID int64, text string) error {
	output, err := h.uc.QuickAdd(ctx, task.QuickAddInput{Text: text})
	if err != nil {
		if msg, ok := userMessage(err); ok {
			return h.bot.SendMessage(chatID, msg)
		}
		return err
	}

	h.l.Infof(ctx, "telegram handler: created task %s", output.Task.ID)
	return h.bot.SendMessage(chatID, h.formatCreated(output))
}

func (h *handler) handleList(ctx context.Context, chatID int64) error {
	output, err := h.uc.List(ctx, task.ListInput{Filter: task.FilterActive})
	if err != nil {
		return err
	}
	if output.Total == 0 {
		return h.bot.SendMessage(chatID, "🎉 No open tasks.")
	}

	start := h.dateMath.StartOfDay(h.now())
	sections := task.Sections(output.Tasks, start, h.dateMath.EndOfDay(start))
	return h.bot.SendMessage(chatID, h.formatSections(sections))
}

// command returns the leading "/word" of text, without any "@botname" suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	word := strings.Fields(text)[0]
	if i := strings.IndexByte(word, '@'); i > 0 {
		word = word[:i]
	}
	return strings.ToLower(word)
}
