package services

import (
	"context"
	"fmt"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/sdr_trainer/services/repositories"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresService keeps the blob store in a postgres kv_entries table.
type PostgresService struct {
	appContext.DefaultService
	db   *gorm.DB
	repo *repositories.KVRepository

	database string
}

func (ds *PostgresService) Id() string {
	return STORE_SVC
}

func (ds *PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *appContext.Context) error {
	ds.loadConfig()
	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) loadConfig() {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		// Fallback to individual environment variables
		host := envOrDefault("DB_HOST", "localhost")
		port := envOrDefault("DB_PORT", "5432")
		user := envOrDefault("DB_USER", "postgres")
		password := envOrDefault("DB_PASSWORD", "postgres")
		dbname := envOrDefault("DB_NAME", "sdr_trainer")
		sslmode := envOrDefault("DB_SSLMODE", "disable")
		timezone := envOrDefault("DB_TIMEZONE", "UTC")

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}
}

func (ds *PostgresService) Start() (err error) {
	// Retry connection with exponential backoff
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	ds.repo = repositories.NewKVRepository(ds.db)
	if err := ds.repo.Migrate(); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	if ds.db == nil {
		return
	}
	if sqlDB, err := ds.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (ds *PostgresService) Get(ctx context.Context, key string) (string, bool, error) {
	value, found, err := ds.repo.Get(ctx, key)
	if err != nil {
		return "", false, ds.handleError(err)
	}
	return value, found, nil
}

func (ds *PostgresService) Set(ctx context.Context, key, value string) error {
	return ds.handleError(ds.repo.Set(ctx, key, value))
}

func (ds *PostgresService) Delete(ctx context.Context, key string) error {
	return ds.handleError(ds.repo.Delete(ctx, key))
}

func (ds *PostgresService) handleError(err error) error {
	if err == nil {
		return nil
	}
	log.WithField("error", err.Error()).Error("Database error occurred")
	return shared.NewInternalError(err, "Storage unavailable")
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
