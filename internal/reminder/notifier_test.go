package reminder_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"task-reminder/internal/model"
	"task-reminder/internal/reminder"
)

type mockSender struct {
	chatID int64
	text   string
	err    error
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	m.chatID, m.text = chatID, text
	return m.err
}

func TestTelegramNotifier(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	due := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	task := model.Task{ID: "a", Title: "buy milk", DueDate: &due, Priority: model.PriorityHigh, Notes: "oat"}

	sender := &mockSender{}
	n, err := reminder.NewTelegramNotifier(sender, 42, loc)
	if err != nil {
		t.Fatalf("NewTelegramNotifier() error: %v", err)
	}

	if err := n.Notify(context.Background(), task); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if sender.chatID != 42 {
		t.Errorf("chat id = %d", sender.chatID)
	}
	for _, want := range []string{"buy milk", "Thu, 02 May 2024 09:00", "Priority: high", "oat"} {
		if !strings.Contains(sender.text, want) {
			t.Errorf("message %q missing %q", sender.text, want)
		}
	}

	sender.err = errors.New("429")
	if err := n.Notify(context.Background(), task); err == nil {
		t.Error("expected send error to propagate")
	}

	if _, err := reminder.NewTelegramNotifier(sender, 0, loc); err == nil {
		t.Error("expected error for missing chat id")
	}
}
