package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"birthday_notifier/internal/app"
	domainEmail "birthday_notifier/internal/domain/email"
	"birthday_notifier/internal/infra/config"
	idb "birthday_notifier/internal/infra/database"
	infraEmail "birthday_notifier/internal/infra/email"
	"birthday_notifier/internal/infra/httpserver"
	"birthday_notifier/internal/infra/logger"
	"birthday_notifier/internal/infra/scheduler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	fmt.Println("Birthday Notifier starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Initialize Database Connection
	log.Infof("Database config - server=%s, database=%s", cfg.DatabaseHost, cfg.DatabaseName)
	tokens := idb.NewStaticTokenProvider(cfg.DatabaseAccessSecret)
	connector := idb.NewConnector(cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseName, cfg.DatabaseUser, tokens, idb.DefaultRetryPolicy())
	db, err := idb.NewPostgresDB(connector)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	// Initialize Repositories
	eventRepo := idb.NewPostgresEventRepository(db)
	birthdayRepo := idb.NewPostgresBirthdayRepository(db)
	log.Info("Repositories initialized.")

	// Initialize Email Client (optional: dispatch skips with a warning when absent)
	var emailClient domainEmail.Client
	if cfg.SMTPHost != "" {
		emailClient = infraEmail.NewSMTPClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
		log.Infof("SMTP email client initialized for host %s.", cfg.SMTPHost)
	} else {
		log.Warn("SMTP_HOST not configured; emails will be skipped.")
	}

	// Initialize Services and Runner
	birthdayService := app.NewBirthdayService(birthdayRepo, log)
	emailService := app.NewEmailService(emailClient, cfg.EmailFrom, cfg.EmailTo, log)
	runner := app.NewRunnerImpl(eventRepo, birthdayService, emailService, log)
	log.Info("Services initialized.")

	// Initialize NotificationScheduler
	notifScheduler := scheduler.NewNotificationScheduler(runner, log, cfg.CronSpecMonthly, cfg.CronSpecDaily)
	if err := notifScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start scheduler: %v", err)
	}

	// Initialize HTTP server for manual test triggers
	server := httpserver.NewServer(cfg.HTTPListenAddr, runner, log, cfg.Environment)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("FATAL: HTTP server failed: %v", err)
		}
	}()

	log.Info("Application setup complete. Scheduler and HTTP server are running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	notifScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully.")
}
