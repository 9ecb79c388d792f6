package reminder

import (
	"context"

	"task-reminder/internal/model"
)

// Notifier delivers a single reminder. An error leaves the task unmarked so
// the next scan retries it.
type Notifier interface {
	Notify(ctx context.Context, t model.Task) error
}

// MessageSender is the part of the Telegram bot the notifier uses.
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}
