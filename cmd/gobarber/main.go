package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gobarber-client/config"
	"gobarber-client/internal/delivery/cli"
	"gobarber-client/internal/repository/local"
	"gobarber-client/internal/repository/rest"
	"gobarber-client/internal/usecase"
	"gobarber-client/pkg/logger"
	"gobarber-client/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting gobarber client", "api", cfg.APIBaseURL)

	// 3. Setup local session store
	store, err := local.Open(cfg.StateDBPath)
	if err != nil {
		logger.Log.Error("Failed to open local state store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. Setup the shared API client and repositories
	client := rest.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	sessionRepo := rest.NewSessionRepository(client)
	userRepo := rest.NewUserRepository(client)
	providerRepo := rest.NewProviderRepository(client)
	appointmentRepo := rest.NewAppointmentRepository(client)
	profileRepo := rest.NewProfileRepository(client)

	// 5. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(sessionRepo, userRepo, store, client)
	bookingUC := usecase.NewBookingUsecase(providerRepo, appointmentRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, authUC, validate)

	// 6. Run the command loop until quit or interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(authUC, bookingUC, profileUC, validate, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Log.Error("Client exited with error", "error", err)
		os.Exit(1)
	}
}
