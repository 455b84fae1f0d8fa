package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes every environment variable the service reads.
	EnvPrefix = "COMPARIFY"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "COMPARIFY_DB_DSN"
	EnvDBHost = "COMPARIFY_DB_HOST"
	EnvDBUser = "COMPARIFY_DB_USER"
	EnvDBName = "COMPARIFY_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	OpenAI       OpenAIConfig
	Advisor      AdvisorConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"COMPARIFY_APP_ENV" required:"true"`
	Port         string `envconfig:"COMPARIFY_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"COMPARIFY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"COMPARIFY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"COMPARIFY_DB_DSN"`
	Driver     string `envconfig:"COMPARIFY_DB_DRIVER" default:"postgres"`
	SQLitePath string `envconfig:"COMPARIFY_SQLITE_PATH" default:"comparify.db"`

	LegacyHost     string `envconfig:"COMPARIFY_DB_HOST"`
	LegacyPort     int    `envconfig:"COMPARIFY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"COMPARIFY_DB_USER"`
	LegacyPassword string `envconfig:"COMPARIFY_DB_PASSWORD"`
	LegacyName     string `envconfig:"COMPARIFY_DB_NAME"`
	LegacySSLMode  string `envconfig:"COMPARIFY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"COMPARIFY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"COMPARIFY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"COMPARIFY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"COMPARIFY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"COMPARIFY_REDIS_URL"`
	Address      string        `envconfig:"COMPARIFY_REDIS_ADDR"`
	Password     string        `envconfig:"COMPARIFY_REDIS_PASSWORD"`
	DB           int           `envconfig:"COMPARIFY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"COMPARIFY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"COMPARIFY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"COMPARIFY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"COMPARIFY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"COMPARIFY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type OpenAIConfig struct {
	APIKey  string        `envconfig:"COMPARIFY_OPENAI_API_KEY"`
	Model   string        `envconfig:"COMPARIFY_OPENAI_MODEL" default:"gpt-4o-mini"`
	BaseURL string        `envconfig:"COMPARIFY_OPENAI_BASE_URL"`
	Timeout time.Duration `envconfig:"COMPARIFY_OPENAI_TIMEOUT" default:"30s"`
}

type AdvisorConfig struct {
	RateLimitWindow time.Duration `envconfig:"COMPARIFY_ADVISOR_RATE_LIMIT_WINDOW" default:"1m"`
	RateLimitPerKey int           `envconfig:"COMPARIFY_ADVISOR_RATE_LIMIT_PER_KEY" default:"10"`
	HistorySample   int           `envconfig:"COMPARIFY_ADVISOR_HISTORY_SAMPLE" default:"10"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"COMPARIFY_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"COMPARIFY_AUTO_MIGRATE" default:"false"`
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
