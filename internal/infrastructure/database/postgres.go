package database

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/totegamma/reviewstore/internal/infrastructure/database/models"
)

func NewPostgres(dsn string) (*gorm.DB, error) {
	return Open(postgres.Open(dsn))
}

// Open connects through dialector with the project's gorm settings.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	gormLogger := logger.New(
		gormWriter{log.With().Str("component", "gorm").Logger()},
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
		NamingStrategy: NamingStrategy{},
	})
	return db, err
}

func MigratePostgres(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Item{},
		&models.Review{},
	)
}

// gormWriter forwards gorm's slow query and error lines to zerolog.
type gormWriter struct {
	l zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.l.Warn().Msgf(format, args...)
}
