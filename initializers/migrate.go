package initializers

import (
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// NewMigrator points golang-migrate at the per-dialect directory under
// MIGRATIONS_PATH, e.g. file://migrations/postgres.
func NewMigrator(cfg *Config) (*migrate.Migrate, error) {
	source := strings.TrimSuffix(cfg.MigrationsPath, "/") + "/" + cfg.DBDriver
	m, err := migrate.New(source, MigrationDatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// MigrationDatabaseURL converts DATABASE_URL into the URL form golang-migrate
// expects. MySQL DSNs get the mysql:// scheme and multiStatements enabled.
func MigrationDatabaseURL(cfg *Config) string {
	if cfg.DBDriver != DriverMySQL {
		return cfg.DatabaseURL
	}

	dsn := strings.TrimPrefix(cfg.DatabaseURL, "mysql://")
	if !strings.Contains(dsn, "multiStatements=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "multiStatements=true"
	}
	return "mysql://" + dsn
}
