package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig bounds the shared connection pool; values mirror the service
// defaults (bounded pool, 10s connect timeout, 30s statement timeout).
type PoolConfig struct {
	Schema           string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnectTimeout   int // seconds
	StatementTimeout int // milliseconds
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Schema:           "ai_chat",
		MaxOpenConns:     20,
		MaxIdleConns:     10,
		ConnectTimeout:   10,
		StatementTimeout: 30000,
	}
}

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, cfg PoolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)

	return nil
}

// NewGormDBFromDSN opens a pooled Postgres handle. Runtime parameters for
// search_path and timeouts are appended to the DSN so every pooled
// connection carries them, not just the first.
func NewGormDBFromDSN(dsn string, cfg PoolConfig) (*gorm.DB, error) {
	dsn = fmt.Sprintf("%s search_path=%s connect_timeout=%d statement_timeout=%d",
		dsn, cfg.Schema, cfg.ConnectTimeout, cfg.StatementTimeout)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}
