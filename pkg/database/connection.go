package database

import (
	"fmt"
	"strings"
	"time"

	"store-app/config"
	"store-app/internal/models"
	applog "store-app/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database. The returned handle is owned by
// the caller and passed down explicitly; there is no package-level DB.
func Open(cfg config.DatabaseConfig, gormLogLevel logger.LogLevel, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		log.Info("Opening sqlite database", zap.String("path", cfg.Path))
		dialector = sqlite.Open(cfg.Path)
	case "mysql":
		dialector = mysql.Open(mysqlDSN(cfg, log))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: applog.NewGormLogger(log, gormLogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// A single writer avoids "database is locked" under concurrent requests.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("Database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migrate creates or updates the three tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Item{}, &models.Sale{}, &models.Expense{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// mysqlDSN prefers DATABASE_URL (mysql:// or mariadb:// URLs are converted)
// and otherwise assembles the DSN from individual components.
func mysqlDSN(cfg config.DatabaseConfig, log *zap.Logger) string {
	const defaultParams = "?charset=utf8mb4&parseTime=True&loc=UTC"

	if cfg.URL == "" {
		log.Info("Constructing DSN from individual components", zap.String("host", cfg.Host), zap.String("db_name", cfg.Name))
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, defaultParams)
	}

	log.Info("Using DATABASE_URL for connection")
	raw := cfg.URL
	switch {
	case strings.HasPrefix(raw, "mysql://"):
		raw = strings.TrimPrefix(raw, "mysql://")
	case strings.HasPrefix(raw, "mariadb://"):
		raw = strings.TrimPrefix(raw, "mariadb://")
	default:
		return raw
	}

	// user:pass@host:port/dbname?params -> user:pass@tcp(host:port)/dbname?params
	creds, rest, ok := strings.Cut(raw, "@")
	if !ok {
		return cfg.URL
	}
	hostPort, dbName, ok := strings.Cut(rest, "/")
	if !ok {
		return cfg.URL
	}
	params := defaultParams
	if name, query, hasQuery := strings.Cut(dbName, "?"); hasQuery {
		dbName = name
		params = "?" + query
	}
	return fmt.Sprintf("%s@tcp(%s)/%s%s", creds, hostPort, dbName, params)
}
