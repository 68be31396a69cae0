package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/totegamma/reviewstore/internal/config"
	"github.com/totegamma/reviewstore/internal/infrastructure/providers"
)

const version = "0.1.0"

var configPath string

// openDatabase is replaced in tests.
var openDatabase = providers.NewDatabase

var rootCmd = &cobra.Command{
	Use:     "reviewstore",
	Short:   "Customers, items and the reviews joining them",
	Version: version,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")
	rootCmd.AddCommand(migrateCmd, seedCmd, showCmd, watchCmd)
}

// env is what the database subcommands need once the configuration is loaded.
type env struct {
	db       *gorm.DB
	usecases providers.Usecases
	shutdown func(context.Context) error
}

func loadConfig() (config.Config, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	level, err := zerolog.ParseLevel(conf.Server.LogLevel)
	if err != nil {
		return config.Config{}, err
	}
	zerolog.SetGlobalLevel(level)

	return conf, nil
}

// setup connects to the database. It does not touch the schema; see migrate.
func setup(ctx context.Context) (*env, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}

	shutdown := providers.NewTracing(ctx, conf.Server, version)

	db, err := openDatabase(conf.Server)
	if err != nil {
		shutdown(ctx)
		return nil, err
	}

	return &env{
		db:       db,
		usecases: providers.NewUsecases(db, providers.NewPublisher(conf.Server)),
		shutdown: shutdown,
	}, nil
}

func (e *env) close(ctx context.Context) {
	if err := e.shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to flush traces")
	}
	if sqlDB, err := e.db.DB(); err == nil {
		sqlDB.Close()
	}
}
