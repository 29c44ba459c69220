package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Pricing      PricingConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HYRPUNKTEN_APP_ENV" required:"true"`
	Port         string `envconfig:"HYRPUNKTEN_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HYRPUNKTEN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HYRPUNKTEN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"HYRPUNKTEN_DB_DSN"`

	LegacyHost     string `envconfig:"HYRPUNKTEN_DB_HOST"`
	LegacyPort     int    `envconfig:"HYRPUNKTEN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"HYRPUNKTEN_DB_USER"`
	LegacyPassword string `envconfig:"HYRPUNKTEN_DB_PASSWORD"`
	LegacyName     string `envconfig:"HYRPUNKTEN_DB_NAME"`
	LegacySSLMode  string `envconfig:"HYRPUNKTEN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"HYRPUNKTEN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HYRPUNKTEN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HYRPUNKTEN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HYRPUNKTEN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// PricingConfig points the engine at its externalized calendar data. The
// holiday table is configuration so yearly updates never require a deploy.
type PricingConfig struct {
	HolidayCalendarPath string `envconfig:"HYRPUNKTEN_PRICING_HOLIDAY_CALENDAR" default:"config/holidays.json"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"HYRPUNKTEN_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
