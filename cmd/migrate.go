package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Weinkeller/configs"
	"droscher.com/Weinkeller/pkg/repository"
)

// MigrateCmd initializes the schema and seed data, then exits. Used by
// container entrypoints that want a ready database without a server.
type MigrateCmd struct {
	ConfigFile string `default:".Weinkeller.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	ctx := context.Background()

	if err = repo.Migrate(ctx); err != nil {
		return err
	}

	if err = repo.SeedDefaults(ctx); err != nil {
		return err
	}

	logger.Info("database initialized", zap.String("path", conf.DB.Path))

	return nil
}
