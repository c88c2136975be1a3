package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"droscher.com/Weinkeller/configs"
	"droscher.com/Weinkeller/pkg/repository"
	"droscher.com/Weinkeller/pkg/server"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	corsMaxAge        = 86400 // 24 hours
)

type ServeCmd struct {
	ConfigFile string `default:".Weinkeller.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	if level, parseErr := zapcore.ParseLevel(conf.Log.Level); parseErr == nil {
		logConfig.Level.SetLevel(level)
	}

	if cliCtx.Debug {
		logConfig.Level.SetLevel(zapcore.DebugLevel)
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = repo.Migrate(ctx); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	if err = repo.SeedDefaults(ctx); err != nil {
		logger.Error("error seeding default tags", zap.Error(err))

		return err
	}

	router := server.NewRouter(repo, logger, cliCtx.Debug)

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: readHeaderTimeout,
		Handler:           configureCORS(router),
	}

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- svr.ListenAndServe()
	}()

	logger.Info("server started", zap.Int("port", conf.Server.Port))

	select {
	case err = <-serveErr:
		logger.Error("failed to start server", zap.Error(err))

		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = svr.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))

		return err
	}

	logger.Info("server stopped")

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			"x-request-id",
		},
		ExposedHeaders: []string{
			"content-disposition",
			"x-request-id",
		},
		MaxAge: corsMaxAge,
	})

	return corsOpts.Handler(handler)
}
