package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"orbitplan/internal/api"
	"orbitplan/pkg/config"
	"orbitplan/pkg/logging"
	"orbitplan/pkg/probe"
	"orbitplan/pkg/spiral"
	"orbitplan/pkg/version"
)

var (
	initConfig = flag.Bool("init-config", false, "Generate default config file and exit")
	configPath = flag.String("config", "configs/orbitplan.yaml", "Path to config file")
)

func main() {
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config file generated:", *configPath)
		return
	}

	if err := run(context.Background(), *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// .env is optional; it only carries local overrides.
	_ = godotenv.Load()

	appCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr := os.Getenv("ORBITPLAN_ADDR"); addr != "" {
		appCfg.Server.Address = addr
	}

	cleanupLogs, err := logging.Init(&appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("OrbitPlan started", "version", version.Version, "addr", appCfg.Server.Address)

	if err := runStartupChecks(ctx, appCfg); err != nil {
		return fmt.Errorf("startup checks failed: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	shutdownFunc := func() { quit <- syscall.SIGTERM }

	srv := api.NewServer(appCfg,
		api.NewMissionHandler(appCfg),
		api.NewConfigHandler(appCfg),
		api.NewWSHandler(appCfg),
		shutdownFunc,
	)
	srv.Handler = loggingMiddleware(srv.Handler)

	return runServerLifecycle(ctx, srv, quit)
}

func runStartupChecks(ctx context.Context, appCfg *config.Config) error {
	probes := []probe.Probe{
		{
			Name: "Planner defaults",
			Check: func(context.Context) error {
				_, err := spiral.Generate(appCfg.Planner, appCfg.Defaults)
				return err
			},
			Critical: true,
		},
		{
			Name: "Export directory",
			Check: func(context.Context) error {
				return os.MkdirAll(appCfg.Export.OutputDir, 0o755)
			},
			Critical: false,
		},
	}
	return probe.AnalyzeResults(probe.Run(ctx, probes))
}

func runServerLifecycle(ctx context.Context, srv *http.Server, quit chan os.Signal) error {
	slog.Info("Starting server", "addr", srv.Addr)
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()
	select {
	case <-quit:
		slog.Info("Shutting down server...")
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case err := <-serverErrors:
		return fmt.Errorf("server failed: %w", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request processed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
