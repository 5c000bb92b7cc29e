package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"batepapo/handlers"
	"batepapo/repositories"
	"batepapo/runtime/workers"
	"batepapo/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning an error instead of calling os.Exit keeps every defer
// (database cleanup included) running on the way out.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & Services
	participantRepository := repositories.NewParticipantRepository(db, log)
	messageRepository := repositories.NewMessageRepository(db, log)
	messageService := services.NewMessageService(messageRepository, participantRepository, log)
	presenceService := services.NewPresenceService(participantRepository, messageService, log)

	// 4. Supervision & Reaper
	reaper := workers.NewReaperWorker(
		presenceService, messageService, log,
		config.LivenessThreshold, config.ScanInterval,
	)
	sup := workers.NewSupervisor(log, config.RestartInterval).Add(reaper)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. HTTP Server Setup
	app := fiber.New()
	handlers.NewChatHandler(presenceService, messageService, log).Register(app)

	// Use an error channel to capture Listen() issues
	errChan := make(chan error, 1)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := app.Listen(address); err != nil {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	_ = app.Shutdown()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
