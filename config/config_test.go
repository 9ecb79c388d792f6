package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		HTTPServer: HTTPServerConfig{Port: 8080},
		Parser:     ParserConfig{Timezone: "UTC", DefaultHour: 9},
		Storage:    StorageConfig{Path: "tasks.yaml"},
		Reminder:   ReminderConfig{Enabled: true, ScanInterval: 30 * time.Second},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.HTTPServer.Port = 0 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Parser.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "default hour too large", mutate: func(c *Config) { c.Parser.DefaultHour = 24 }, wantErr: true},
		{name: "empty storage path", mutate: func(c *Config) { c.Storage.Path = "" }, wantErr: true},
		{name: "zero scan interval", mutate: func(c *Config) { c.Reminder.ScanInterval = 0 }, wantErr: true},
		{name: "zero scan interval when disabled", mutate: func(c *Config) {
			c.Reminder.Enabled = false
			c.Reminder.ScanInterval = 0
		}},
		{name: "negative lookahead", mutate: func(c *Config) { c.Reminder.Lookahead = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TASK_REMINDER_TEST_KEY", "secret")

	if got := expandEnvVar("${TASK_REMINDER_TEST_KEY}"); got != "secret" {
		t.Errorf("expandEnvVar() = %q, want secret", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expandEnvVar() = %q, want plain", got)
	}
	if got := expandEnvVar("${TASK_REMINDER_UNSET_KEY}"); got != "" {
		t.Errorf("expandEnvVar() = %q, want empty", got)
	}
}
