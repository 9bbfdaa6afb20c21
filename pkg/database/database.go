// Package database opens the gorm connection for the configured driver.
package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shadowbane/weather-alert/pkg/config/dblogger"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 500 * time.Millisecond

// Dialector picks the gorm dialector for a connection name
func Dialector(connection, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(connection) {
	case "postgres", "postgresql", "pgsql":
		return postgres.Open(dsn), nil
	case "mysql", "mariadb":
		return mysql.Open(dsn), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_CONNECTION %q", connection)
	}
}

// Open connects and configures the pool
func Open(connection, dsn string, debug bool) (*gorm.DB, error) {
	dialector, err := Dialector(connection, dsn)
	if err != nil {
		return nil, err
	}

	logLevel := dblogger.Warn
	if debug {
		logLevel = dblogger.Debug
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: &dblogger.ZapLogger{
			Config: gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  logLevel,
				IgnoreRecordNotFoundError: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", connection, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if strings.HasPrefix(strings.ToLower(connection), "sqlite") {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	zap.S().Infof("Connected to %s database", connection)
	return db, nil
}
