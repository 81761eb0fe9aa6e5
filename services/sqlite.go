package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/sdr_trainer/services/repositories"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteService is the default blob store: a single kv_entries table in a
// local sqlite file.
type SqliteService struct {
	appContext.DefaultService
	db   *gorm.DB
	repo *repositories.KVRepository

	database string
}

const DEFAULT_SQLITE_DATABASE = "sdr_trainer.db"

// Id returns Service ID
func (ds *SqliteService) Id() string {
	return STORE_SVC
}

// Db Access to raw SqliteService db
func (ds *SqliteService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqliteService) Configure(ctx *appContext.Context) error {
	ds.loadConfig()
	return ds.DefaultService.Configure(ctx)
}

func (ds *SqliteService) loadConfig() {
	ds.database = os.Getenv("DB_DATABASE")
	if ds.database == "" {
		ds.database = DEFAULT_SQLITE_DATABASE
	}
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() error {
	return ds.open()
}

// NewSqliteStore opens database directly, outside the service container.
func NewSqliteStore(database string) (*SqliteService, error) {
	ds := &SqliteService{database: database}
	if err := ds.open(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (ds *SqliteService) open() (err error) {
	ds.db, err = gorm.Open(sqlite.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	// One connection: the store has a single writer and in-memory databases
	// are per connection.
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	ds.repo = repositories.NewKVRepository(ds.db)
	if err := ds.repo.Migrate(); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.WithField("database", ds.database).Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) Shutdown() {
	if ds.db == nil {
		return
	}
	if sqlDB, err := ds.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (ds *SqliteService) Get(ctx context.Context, key string) (string, bool, error) {
	value, found, err := ds.repo.Get(ctx, key)
	if err != nil {
		return "", false, ds.HandleError(err)
	}
	return value, found, nil
}

func (ds *SqliteService) Set(ctx context.Context, key, value string) error {
	return ds.HandleError(ds.repo.Set(ctx, key, value))
}

// Delete removes key; the seed tool purges records with it.
func (ds *SqliteService) Delete(ctx context.Context, key string) error {
	return ds.HandleError(ds.repo.Delete(ctx, key))
}

func (ds *SqliteService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var errorType string

	switch {
	case errors.Is(err, gorm.ErrInvalidTransaction):
		errorType = "TRANSACTION_ERROR"
	case strings.Contains(err.Error(), "no such table"):
		errorType = "SCHEMA_ERROR"
	case strings.Contains(err.Error(), "database is locked"):
		errorType = "LOCKED"
	default:
		errorType = "INTERNAL_ERROR"
	}

	log.WithFields(log.Fields{
		"error_type": errorType,
		"error":      err.Error(),
	}).Error("Database error occurred")

	return shared.NewInternalError(fmt.Errorf("%s: %w", errorType, err), "Storage unavailable")
}
