package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task reminder specifics
	Parser   ParserConfig
	Storage  StorageConfig
	Reminder ReminderConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig

	// Public API
	API APIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig controls how quick-add sentences are resolved to absolute dates.
type ParserConfig struct {
	Timezone    string
	DefaultHour int
}

type StorageConfig struct {
	Path string
}

type ReminderConfig struct {
	Enabled      bool
	ScanInterval time.Duration
	Lookahead    time.Duration
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	ChatID        int64  // reminder destination
	NgrokAPIURL   string // local ngrok API used to discover the webhook URL when WebhookURL is empty
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	TokenPath       string
}

type APIConfig struct {
	Key             string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/task-reminder/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/task-reminder/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser & storage
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.DefaultHour = viper.GetInt("parser.default_hour")
	if tz := viper.GetString("tz"); tz != "" && cfg.Parser.Timezone == "Local" {
		cfg.Parser.Timezone = tz
	}
	cfg.Storage.Path = expandEnvVar(viper.GetString("storage.path"))

	// Reminders
	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.ScanInterval = viper.GetDuration("reminder.scan_interval")
	cfg.Reminder.Lookahead = viper.GetDuration("reminder.lookahead")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = expandEnvVar(viper.GetString("telegram.webhook_secret"))
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.API.Key = expandEnvVar(viper.GetString("api.key"))
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(c.Parser.Timezone); err != nil {
		return fmt.Errorf("parser.timezone %q: %w", c.Parser.Timezone, err)
	}
	if c.Parser.DefaultHour < 0 || c.Parser.DefaultHour > 23 {
		return fmt.Errorf("parser.default_hour must be 0-23, got %d", c.Parser.DefaultHour)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Reminder.Enabled && c.Reminder.ScanInterval <= 0 {
		return fmt.Errorf("reminder.scan_interval must be positive")
	}
	if c.Reminder.Lookahead < 0 {
		return fmt.Errorf("reminder.lookahead must not be negative")
	}
	if c.API.RateLimitPerMin < 0 {
		return fmt.Errorf("api.rate_limit_per_min must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "Local")
	viper.SetDefault("parser.default_hour", 9)
	viper.SetDefault("storage.path", "data/tasks.yaml")

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.scan_interval", "30s")
	viper.SetDefault("reminder.lookahead", "0s")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")

	viper.SetDefault("api.rate_limit_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
