package initializers

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv             string        `mapstructure:"APP_ENV"`
	Port               string        `mapstructure:"PORT" validate:"required"`
	DBDriver           string        `mapstructure:"DB_DRIVER" validate:"oneof=mysql postgres"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL" validate:"required"`
	MigrationsPath     string        `mapstructure:"MIGRATIONS_PATH" validate:"required"`
	JWTSecret          string        `mapstructure:"JWT_SECRET" validate:"required,min=16"`
	AccessTokenTTL     time.Duration `mapstructure:"ACCESS_TOKEN_TTL" validate:"gt=0"`
	RefreshTokenTTL    time.Duration `mapstructure:"REFRESH_TOKEN_TTL" validate:"gtfield=AccessTokenTTL"`
	CORSOrigins        []string      `mapstructure:"CORS_ORIGINS" validate:"min=1,dive,url"`
	KafkaBrokers       []string      `mapstructure:"KAFKA_BROKERS"`
	OrderEventsTopic   string        `mapstructure:"ORDER_EVENTS_TOPIC" validate:"required"`
	S3Bucket           string        `mapstructure:"S3_BUCKET"`
	OTLPEndpoint       string        `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	LogFile            string        `mapstructure:"LOG_FILE"`
	SeedSellerEmail    string        `mapstructure:"SEED_SELLER_EMAIL" validate:"required,email"`
	SeedSellerName     string        `mapstructure:"SEED_SELLER_NAME" validate:"required"`
	SeedSellerPassword string        `mapstructure:"SEED_SELLER_PASSWORD"`
}

var defaults = map[string]any{
	"APP_ENV":                     "development",
	"PORT":                        "8000",
	"DB_DRIVER":                   DriverMySQL,
	"DATABASE_URL":                "",
	"MIGRATIONS_PATH":             "file://migrations",
	"JWT_SECRET":                  "",
	"ACCESS_TOKEN_TTL":            30 * time.Minute,
	"REFRESH_TOKEN_TTL":           7 * 24 * time.Hour,
	"CORS_ORIGINS":                []string{"http://localhost:3000", "http://localhost:3002"},
	"KAFKA_BROKERS":               []string{},
	"ORDER_EVENTS_TOPIC":          "order.placed",
	"S3_BUCKET":                   "",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
	"LOG_FILE":                    "",
	"SEED_SELLER_EMAIL":           "seller@hanythrift.local",
	"SEED_SELLER_NAME":            "HanyThrift",
	"SEED_SELLER_PASSWORD":        "",
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)
	cfg.CORSOrigins = compact(cfg.CORSOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
