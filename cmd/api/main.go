package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"stagecraft/api/internal/adapter/repo"
	"stagecraft/api/internal/http/handlers"
	"stagecraft/api/internal/http/httpapi"
	"stagecraft/api/internal/imageurl"
	"stagecraft/api/internal/infra"
	"stagecraft/api/internal/infra/geoip"
	"stagecraft/api/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	if err := infra.EnsureSchema(ctx, runner); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	sessions := &middleware.Sessions{Secret: cfg.SessionSecret, TTL: cfg.SessionTTL}

	app := &handlers.App{
		Logger:        logger,
		Sessions:      sessions,
		Admins:        repo.NewAdminRepository(runner),
		Clients:       repo.NewClientRepository(runner),
		Projects:      repo.NewProjectRepository(runner),
		Analytics:     repo.NewAnalyticsRepository(runner),
		Images:        imageurl.Normalizer{Placeholder: cfg.PlaceholderImage},
		BcryptCost:    cfg.BcryptCost,
		SecureCookies: cfg.AppEnv != "development",
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		defer resolver.Close()
		app.GeoIP = resolver
	}

	router := httpapi.NewRouter(app, sessions, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

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
