package infra

import (
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	pgOnce      sync.Once
	pgSingleton *gorm.DB
	pgErr       error
)

// InitPostgresql opens the shared connection pool exactly once. Concurrent
// first callers block on the same initialization and all observe the same
// handle or the same error.
func InitPostgresql(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	pgOnce.Do(func() {
		pgSingleton, pgErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if pgErr != nil {
			logger.Error("connecting to database failed", zap.Error(pgErr))
			return
		}
		logger.Info("postgres connected")
	})
	return pgSingleton, pgErr
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance failed", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection failed", zap.Error(err))
		return
	}
	logger.Info("postgres connection closed")
}
