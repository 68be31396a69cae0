package providers

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/totegamma/reviewstore/internal/config"
	"github.com/totegamma/reviewstore/internal/infrastructure/database"
	"github.com/totegamma/reviewstore/internal/infrastructure/repository"
	"github.com/totegamma/reviewstore/internal/service"
	"github.com/totegamma/reviewstore/internal/telemetry"
	"github.com/totegamma/reviewstore/internal/usecase"
)

// NewDatabase opens a Postgres connection using the configured DSN.
func NewDatabase(conf config.Server) (*gorm.DB, error) {
	return database.NewPostgres(conf.PostgresDsn)
}

// MigrateDatabase applies migrations for the application models.
func MigrateDatabase(db *gorm.DB) error {
	return database.MigratePostgres(db)
}

// NewPublisher returns the redis backed publisher, or nil when redis is not configured.
func NewPublisher(conf config.Server) usecase.Publisher {
	if conf.RedisAddr == "" {
		return nil
	}
	rdb := database.NewRedis(conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
	return service.NewSignalService(rdb)
}

// NewTracing installs the trace exporter when enabled. The returned shutdown is never nil.
func NewTracing(ctx context.Context, conf config.Server, version string) func(context.Context) error {
	noop := func(context.Context) error { return nil }
	if !conf.EnableTrace {
		return noop
	}
	shutdown, err := telemetry.SetupTraceProvider(ctx, conf.TraceEndpoint, "reviewstore", version)
	if err != nil {
		log.Warn().Err(err).Msg("failed to set up tracing")
		return noop
	}
	return shutdown
}

// Usecases bundles the use cases built over one database.
type Usecases struct {
	Customer *usecase.CustomerUsecase
	Item     *usecase.ItemUsecase
	Review   *usecase.ReviewUsecase
}

func NewUsecases(db *gorm.DB, signal usecase.Publisher) Usecases {
	return Usecases{
		Customer: usecase.NewCustomerUsecase(repository.NewCustomerRepository(db), signal),
		Item:     usecase.NewItemUsecase(repository.NewItemRepository(db), signal),
		Review:   usecase.NewReviewUsecase(repository.NewReviewRepository(db), signal),
	}
}
