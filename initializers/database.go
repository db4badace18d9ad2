package initializers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectToDB opens a traced connection pool for the configured driver and
// wraps it in gorm.
func ConnectToDB(ctx context.Context, cfg *Config, logger *zap.Logger) (*gorm.DB, error) {
	sqlDB, dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	logger.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

func openDialector(cfg *Config) (*sql.DB, gorm.Dialector, error) {
	switch cfg.DBDriver {
	case DriverPostgres:
		sqlDB, err := otelsql.Open("pgx", cfg.DatabaseURL, otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return sqlDB, postgres.New(postgres.Config{Conn: sqlDB}), nil
	case DriverMySQL:
		sqlDB, err := otelsql.Open("mysql", cfg.DatabaseURL, otelsql.WithAttributes(semconv.DBSystemMySQL))
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		return sqlDB, mysql.New(mysql.Config{Conn: sqlDB}), nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
