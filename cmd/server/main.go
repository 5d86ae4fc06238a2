package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tollwise/server/internal/cache"
	"github.com/tollwise/server/internal/clients/google"
	"github.com/tollwise/server/internal/clients/openroute"
	"github.com/tollwise/server/internal/clients/weather"
	"github.com/tollwise/server/internal/config"
	"github.com/tollwise/server/internal/dataset"
	"github.com/tollwise/server/internal/handler"
	"github.com/tollwise/server/internal/services"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file (optional)")
	dev := flag.Bool("dev", false, "development logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := buildLogger(*dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting tollwise server", zap.Int("port", cfg.Server.Port))

	// Dataset: configured file if present, embedded reference table otherwise.
	loader := dataset.NewLoader(cfg.Dataset.Path, log)
	snap, err := loader.Load()
	if err != nil {
		log.Warn("dataset load failed, using embedded reference data",
			zap.String("path", cfg.Dataset.Path), zap.Error(err))
		snap = dataset.EmbeddedSnapshot()
	}
	store := dataset.NewStore(snap)
	log.Info("toll dataset loaded",
		zap.Int("plazas", len(snap.Plazas)),
		zap.String("quality", string(snap.Quality)))

	providers := []services.RouteProvider{
		google.NewClient(cfg.Providers.Google.APIKey, cfg.Providers.Timeout),
		openroute.NewClient(cfg.Providers.OpenRoute.APIKey, cfg.Providers.Timeout),
	}

	routeCache := cache.NewRouteCache(cfg.Cache.TTL)
	chain := services.NewChain(providers, services.NewSyntheticGenerator(), routeCache, cfg.Providers.Timeout, log)

	weatherClient := weather.NewClient(cfg.Weather.APIKey, cfg.Providers.Timeout)
	service := services.NewTollService(chain, store, loader, weatherClient, cfg.Matching.ThresholdKm, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	routeCache.StartPeriodicCleanup(ctx, cfg.Cache.CleanupInterval)

	reloader := services.NewPeriodicReloader(service, cfg.Dataset.ReloadInterval, log)
	reloader.Start(ctx)
	defer reloader.Stop()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestID())
	router.Use(handler.CORS(cfg.Server.CorsOrigins))
	router.Use(handler.AccessLog(log))

	handler.NewTollHandler(service, log).RegisterRoutes(&router.RouterGroup)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("stopped")
}

func buildLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
