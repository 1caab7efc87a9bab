package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jax2600/warpstery/internal/api"
	"github.com/jax2600/warpstery/internal/factory"
	redisstorage "github.com/jax2600/warpstery/internal/storage/redis"
	"github.com/jax2600/warpstery/internal/web"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := loadConfig(envFile)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func newLogger(levelName string) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, cfg serverConfig, logger *slog.Logger) error {
	app, err := factory.New(factoryConfig(cfg, logger))
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findStaticDir()
	}

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(newHandler(app, cfg, staticDir, logger), serverConfig, logger)

	logger.Info("server configured",
		slog.String("base_url", cfg.BaseURL),
		slog.String("storage", cfg.StorageType),
		slog.Bool("sealed_state", cfg.StateSecret != ""),
	)
	return server.Run(ctx)
}

func factoryConfig(cfg serverConfig, logger *slog.Logger) factory.Config {
	out := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		StateSecret: cfg.StateSecret,
		RandomSeed:  cfg.RandomSeed,
		BaseURL:     cfg.BaseURL,
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.SessionTTL = cfg.SessionTTL
		out.RedisConfig = &redisCfg
	}
	return out
}

// newHandler mounts the JSON API under /api/ and the pages everywhere else
func newHandler(app *factory.App, cfg serverConfig, staticDir string, logger *slog.Logger) http.Handler {
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		FrameAdapter:   app.FrameAdapter,
		FrameBuilder:   app.FrameBuilder,
		SessionService: app.SessionService,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		FrameAdapter:   app.FrameAdapter,
		FrameBuilder:   app.FrameBuilder,
		SessionService: app.SessionService,
		StaticDir:      staticDir,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)
	return mux
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "internal/web/static"
}
