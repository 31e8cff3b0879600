package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/config"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"
)

// Connect opens postgres when DATABASE_URL is set and falls back to a local
// sqlite file otherwise.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.UsesSQLite() {
		utils.Log.WithField("path", cfg.SQLitePath).Warn("DATABASE_URL not set, using sqlite")
		return OpenSQLite(cfg.SQLitePath)
	}
	return OpenPostgres(cfg.DatabaseURL)
}

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// OpenSQLite opens (creating if needed) a sqlite database file. sqlite allows
// a single writer, so the pool is capped at one connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(utils.Log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}
