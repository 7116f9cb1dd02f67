package main

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/calendar/repository"
	caldavRepo "calendar-assistant/internal/calendar/repository/caldav"
	googleRepo "calendar-assistant/internal/calendar/repository/google"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/session"
	"calendar-assistant/pkg/caldav"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/deepseek"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// @title       Calendar Assistant API
// @description Natural-language calendar assistant backed by DeepSeek and a CalDAV or Google Calendar store.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendar provider: %s", cfg.Calendar.Provider)

	// 3. Date parser
	dateMath, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	// 4. Language model client
	llm, err := deepseek.New(deepseek.Config{
		APIKey:  cfg.DeepSeek.APIKey,
		Model:   cfg.DeepSeek.Model,
		BaseURL: cfg.DeepSeek.BaseURL,
		Timeout: cfg.DeepSeek.Timeout,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize DeepSeek client: %v", err)
		return
	}

	// 5. Remote calendar store, wrapped by the range-query compensation
	var store repository.Store
	switch cfg.Calendar.Provider {
	case "caldav":
		client, cErr := caldav.NewClient(caldav.Config{
			ServerURL: cfg.CalDAV.ServerURL,
			Username:  cfg.CalDAV.Username,
			Password:  cfg.CalDAV.Password,
			Timeout:   30 * time.Second,
		})
		if cErr != nil {
			logger.Errorf(ctx, "Failed to initialize CalDAV client: %v", cErr)
			return
		}
		store = caldavRepo.New(logger, client)
	case "google":
		client, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gErr != nil {
			logger.Errorf(ctx, "Failed to initialize Google Calendar client: %v", gErr)
			return
		}
		store = googleRepo.New(logger, client, cfg.GoogleCalendar.CalendarID, cfg.Calendar.Timezone)
	}
	store = repository.NewCompensated(store)

	// 6. Session history
	sessions := session.NewStore(cfg.Session.MaxTurns)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Store:       store,
		Sessions:    sessions,
		LLM:         llm,
		DateMath:    dateMath,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
