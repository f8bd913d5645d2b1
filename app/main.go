package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/govtjobs-alert/bot/app/api"
	"github.com/govtjobs-alert/bot/app/bot"
	"github.com/govtjobs-alert/bot/app/cfg"
	"github.com/govtjobs-alert/bot/app/database"
	"github.com/govtjobs-alert/bot/app/delivery"
	"github.com/govtjobs-alert/bot/app/enrich"
	"github.com/govtjobs-alert/bot/app/feed"
	"github.com/govtjobs-alert/bot/app/scheduler"
)

func main() {
	c, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if c == nil {
		// Help was shown, exit gracefully
		return
	}

	if c.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting GovtJobs Alert bot", "version", c.Version)

	db, err := database.NewConnection(c.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", c.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", c.DBPath, "schema_version", version, "dirty", dirty)

	postRepo := database.NewPostRepo(db)
	chatRepo := database.NewChatRepo(db)

	sources, err := feed.LoadSources(c.SourcesFile)
	if err != nil {
		slog.Error("Failed to load feed sources", "file", c.SourcesFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Feed sources loaded", "count", len(sources))

	httpClient := &http.Client{}
	fetcher := feed.NewFetcher(sources, postRepo, httpClient, c.UserAgent)

	var providers []enrich.Provider
	if c.GeminiAPIKey != "" {
		providers = append(providers, enrich.NewGeminiClient(enrich.DefaultGeminiBaseURL, c.GeminiAPIKey, httpClient))
	}
	if c.GroqAPIKey != "" {
		providers = append(providers, enrich.NewGroqClient(enrich.DefaultGroqBaseURL, c.GroqAPIKey, httpClient))
	}
	if len(providers) == 0 {
		slog.Warn("No enrichment providers configured, posts will carry raw feed data only")
	}
	enricher := enrich.NewEnricher(time.Duration(c.EnrichTimeout)*time.Second, providers...)

	tgBot, err := bot.New(postRepo, chatRepo)
	if err != nil {
		slog.Error("Failed to initialize Telegram bot", "error", err)
		os.Exit(1)
	}

	poster := delivery.NewPoster(fetcher, enricher, postRepo, chatRepo, tgBot,
		time.Duration(c.SendDelay)*time.Millisecond)
	tgBot.Setup(poster, fetcher, enricher)

	sched := scheduler.NewScheduler(poster,
		time.Duration(c.WarmupDelay)*time.Second,
		time.Duration(c.FetchInterval)*time.Minute,
		time.Duration(c.CycleTimeout)*time.Second)
	sched.Start()
	defer sched.Stop()

	go tgBot.Start()

	apiHandler := api.NewHandler(postRepo, chatRepo, c.FetchInterval)
	httpServer := &http.Server{
		Addr:         ":" + c.Port,
		Handler:      api.NewServer(apiHandler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP status server", "port", c.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("GovtJobs Alert bot started")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	tgBot.Stop()

	// Scheduler and database close via defer
	slog.Info("Shutdown complete")
}
