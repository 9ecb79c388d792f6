package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"task-reminder/config"
	"task-reminder/internal/cli"
	fileRepo "task-reminder/internal/task/repository/file"
	"task-reminder/internal/task/usecase"
	"task-reminder/pkg/datemath"
	"task-reminder/pkg/gcalendar"
	"task-reminder/pkg/log"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := setup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing taskctl: %v\n", err)
		os.Exit(1)
	}

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// setup opens the same store and calendar the API uses. The CLI logs only
// warnings and errors so command output stays readable.
func setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	parser, err := datemath.NewParser(cfg.Parser.Timezone, datemath.WithDefaultHour(cfg.Parser.DefaultHour))
	if err != nil {
		return err
	}

	repo, err := fileRepo.New(ctx, cfg.Storage.Path, logger)
	if err != nil {
		return fmt.Errorf("opening task store: %w", err)
	}

	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		if client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath); calErr == nil {
			calendarClient = client
		}
	}

	cli.TaskUC = usecase.New(logger, repo, parser, calendarClient, cfg.GoogleCalendar.CalendarID)
	cli.DateMath = parser
	cli.CalendarCredentialsPath = cfg.GoogleCalendar.CredentialsPath
	cli.CalendarTokenPath = cfg.GoogleCalendar.TokenPath
	return nil
}
