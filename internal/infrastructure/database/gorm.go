package database

import (
	"fmt"
	"strings"

	"jobledger/internal/adapter/persistence/repository"
	"jobledger/internal/infrastructure/config"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialect picks the gorm driver for the configured DB_TYPE.
func Dialect(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case config.DBTypePostgres:
		return postgres.Open(cfg.DBDSN), nil
	case config.DBTypeSQLite:
		return sqlite.Open(sqliteDSN(cfg.DBDSN)), nil
	default:
		return nil, fmt.Errorf("unsupported %s type", cfg.DBType)
	}
}

// Open connects, sizes the pool and migrates the schema.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialect, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBType, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	maxOpen := cfg.DBMaxOpenConn
	if cfg.DBType == config.DBTypeSQLite {
		// SQLite serialises writers.
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)

	if err := repository.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("[database] connected", zap.String("type", cfg.DBType), zap.Int("max_open_conn", maxOpen))
	return db, nil
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
