package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"donorboard/internal/adapter/repo"
	"donorboard/internal/geocode"
	"donorboard/internal/http/handlers"
	httpapi "donorboard/internal/http/httpapi"
	"donorboard/internal/infra"
	"donorboard/internal/service"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// PostgREST gateway to the hosted project
	client, err := infra.NewPostgrestClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init supabase gateway")
	}

	donors := repo.NewDonorRepository(client)
	donations := repo.NewDonationRepository(client)
	admins := repo.NewAdminRepository(client)

	donationService := service.NewDonationService(donors, donations, logger)
	transferService := service.NewTransferService(donors, donations, logger)
	geocoder := geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent)

	app := handlers.NewApp(logger, donors, donations, admins, donationService, transferService, geocoder)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	// Start async
	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
