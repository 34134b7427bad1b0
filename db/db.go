// db/db.go
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/swarnapay/api/config"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
)

// InitPostgres opens the system-of-record connection and runs schema
// migration for the auth tables. The handle is returned for injection, not
// stored globally.
func InitPostgres() (*gorm.DB, error) {
	dsn := config.GetString("postgres.dsn")
	logger.Info("Connecting to Postgres")

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access Postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.GetInt("postgres.maxOpenConns"))
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := gdb.AutoMigrate(&model.Permission{}, &model.Role{}, &model.AdminUser{}); err != nil {
		return nil, fmt.Errorf("failed to migrate auth schema: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return gdb, nil
}

func ClosePostgres(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Error("Error accessing Postgres pool on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection", zap.Error(err))
	}
}
