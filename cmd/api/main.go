package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-reminder/config"
	_ "task-reminder/docs" // Swagger docs
	"task-reminder/internal/httpserver"
	"task-reminder/internal/middleware"
	"task-reminder/internal/reminder"
	taskHTTP "task-reminder/internal/task/delivery/http"
	tgDelivery "task-reminder/internal/task/delivery/telegram"
	fileRepo "task-reminder/internal/task/repository/file"
	"task-reminder/internal/task/usecase"
	"task-reminder/pkg/datemath"
	"task-reminder/pkg/gcalendar"
	"task-reminder/pkg/log"
	"task-reminder/pkg/telegram"
)

// @title       Task Reminder API
// @description Tasks with natural-language quick add, reminders, Telegram and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in          header
// @name        X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Reminder...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Parser.Timezone, datemath.WithDefaultHour(cfg.Parser.DefaultHour))
	if err != nil {
		logger.Errorf(ctx, "Failed to create parser: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Parser timezone: %s", dateMathParser.Location())

	// 4. Task store
	taskRepo, err := fileRepo.New(ctx, cfg.Storage.Path, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store %s: %v", cfg.Storage.Path, err)
		os.Exit(1)
	}

	// 5. Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `taskctl calendar-auth` to generate the token")
		} else {
			calendarClient = client
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, dateMathParser, calendarClient, cfg.GoogleCalendar.CalendarID)

	// 7. Telegram (optional): webhook delivery and reminder channel
	var (
		telegramHandler tgDelivery.Handler
		telegramBot     *telegram.Bot
	)
	if cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, telegramBot, dateMathParser)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. Reminder scheduler
	if cfg.Reminder.Enabled {
		var notifier reminder.Notifier = reminder.NewLogNotifier(logger, dateMathParser.Location())
		if telegramBot != nil && cfg.Telegram.ChatID != 0 {
			tgNotifier, nErr := reminder.NewTelegramNotifier(telegramBot, cfg.Telegram.ChatID, dateMathParser.Location())
			if nErr != nil {
				logger.Warnf(ctx, "Telegram reminders disabled: %v", nErr)
			} else {
				notifier = tgNotifier
			}
		}

		scheduler, sErr := reminder.New(logger, taskRepo, notifier, reminder.Config{
			ScanInterval: cfg.Reminder.ScanInterval,
			Lookahead:    cfg.Reminder.Lookahead,
		})
		if sErr != nil {
			logger.Errorf(ctx, "Failed to create reminder scheduler: %v", sErr)
			os.Exit(1)
		}
		go func() {
			if err := scheduler.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Errorf(ctx, "Reminder scheduler stopped: %v", err)
			}
		}()
		logger.Infof(ctx, "Reminder scheduler running every %s", cfg.Reminder.ScanInterval)
	}

	// 9. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		APIKey:          cfg.API.Key,
		RateLimitPerMin: cfg.API.RateLimitPerMin,
		TelegramSecret:  cfg.Telegram.WebhookSecret,
	})
	if cfg.API.Key == "" {
		logger.Warn(ctx, "api.key is empty: the task API is unauthenticated")
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		Ready:           taskRepo.Ping,
		TaskHandler:     taskHTTP.New(logger, taskUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service, auto-detecting an ngrok
// tunnel when no URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		detected, err := newNgrokProbe(cfg.NgrokAPIURL).webhookURL(ctx)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = detected
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "telegram.webhook_url is empty: Telegram updates will not reach this service")
		return
	}
	if err := bot.SetWebhook(webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
