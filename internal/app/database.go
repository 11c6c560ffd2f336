package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/museme/storefront/config"
)

// getDatabase opens the configured database. The sqlite type keeps the
// whole store in a single file under the workdir data directory.
func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Type) {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=disable TimeZone=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.Passwd, time.Local.String())
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(sqlitePath(cfg.Name, workdir))
	}

	loglevel := logger.Silent
	if cfg.Debug {
		loglevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(loglevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		zap.S().Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Fatalf("failed to access database pool: %v", err)
	}
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetMaxOpenConns(16)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// sqlitePath resolves the sqlite database file location. Absolute paths
// and the :memory: sentinel are used as-is.
func sqlitePath(name, workdir string) string {
	if name == "" {
		name = "museme"
	}
	if name == ":memory:" || filepath.IsAbs(name) {
		return name
	}
	if !strings.HasSuffix(name, ".db") {
		name += ".db"
	}
	return filepath.Join(workdir, "data", name)
}
