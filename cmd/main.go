package main

import (
	"context"
	"fmt"
	"guild-warden/errors"
	"guild-warden/internal"
	"guild-warden/observability"
	"guild-warden/platform/discord"
	"guild-warden/repositories"
	"guild-warden/runtime/workers"
	"guild-warden/services"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a termination signal.
// Returning instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return fmt.Errorf("%w %q: %w", errors.ErrUnknownLocation, config.Timezone, err)
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Services
	clk := clockwork.NewRealClock()
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	store := repositories.NewRecordStore(db, log)

	session, err := discord.NewSession(config.DiscordToken, log, clk)
	if err != nil {
		return err
	}
	notifier := services.NewAuditNotifier(log, store, session, session, metrics)
	dispatcher := workers.NewAuditDispatcher(log, notifier, config.AuditQueueSize, metrics)

	stats := services.NewStatsTracker(log, store, clk, location, metrics)
	tickets := services.NewTicketManager(log, session, session, dispatcher, clk, metrics,
		config.TicketCloseDelay, config.StaffRoleIDs())
	moderation := services.NewModerationService(log, session, store, dispatcher, clk, metrics)

	router := discord.NewRouter(log, stats, tickets, moderation, session, session, clk)
	gateway := discord.NewGateway(log, session, router, discord.GatewayConfig{
		RegisterCommands: config.RegisterCommands,
		CommandsGuildID:  config.CommandsGuildID,
	})

	// 4. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(dispatcher, gateway)
	if config.DebugPort > 0 {
		sup.Add(internal.NewDebugServer(log, config.DebugPort, store, registry))
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting guild warden", "timezone", location.String(), "close_delay", config.TicketCloseDelay)
	sup.Run(ctx)
	log.Info("Program stopped cleanly")
	return nil
}
