package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-reminder/internal/model"
	pkgLog "task-reminder/pkg/log"
)

// Message renders the reminder text shown to the user.
func Message(t model.Task, loc *time.Location) string {
	var sb strings.Builder
	sb.WriteString("⏰ Task Reminder\n")
	sb.WriteString(t.Title)
	if t.DueDate != nil {
		sb.WriteString("\nDue: ")
		sb.WriteString(t.DueDate.In(loc).Format("Mon, 02 Jan 2006 15:04"))
	}
	if t.Priority == model.PriorityHigh {
		sb.WriteString("\nPriority: high")
	}
	if t.Notes != "" {
		sb.WriteString("\n\n")
		sb.WriteString(t.Notes)
	}
	return sb.String()
}

// TelegramNotifier sends reminders to a single Telegram chat.
type TelegramNotifier struct {
	sender MessageSender
	chatID int64
	loc    *time.Location
}

// NewTelegramNotifier creates a notifier for chatID. Due dates are shown in loc.
func NewTelegramNotifier(sender MessageSender, chatID int64, loc *time.Location) (*TelegramNotifier, error) {
	if sender == nil {
		return nil, errors.New("reminder: telegram sender is required")
	}
	if chatID == 0 {
		return nil, errors.New("reminder: telegram chat id is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &TelegramNotifier{sender: sender, chatID: chatID, loc: loc}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, t model.Task) error {
	if err := n.sender.SendMessage(n.chatID, Message(t, n.loc)); err != nil {
		return fmt.Errorf("telegram notify: %w", err)
	}
	return nil
}

// LogNotifier writes reminders to the service log. It is the fallback when
// no chat is configured.
type LogNotifier struct {
	l   pkgLog.Logger
	loc *time.Location
}

func NewLogNotifier(l pkgLog.Logger, loc *time.Location) *LogNotifier {
	if loc == nil {
		loc = time.UTC
	}
	return &LogNotifier{l: l, loc: loc}
}

func (n *LogNotifier) Notify(ctx context.Context, t model.Task) error {
	n.l.Infof(ctx, "reminder: %s", strings.ReplaceAll(Message(t, n.loc), "\n", " | "))
	return nil
}
