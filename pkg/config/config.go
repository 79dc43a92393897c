package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Password  PasswordConfig
	Synthesis SynthesisConfig
	Cart      CartConfig
	RateLimit RateLimitConfig
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
	Env          string `envconfig:"EBF_APP_ENV" required:"true"`
	Port         string `envconfig:"EBF_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"EBF_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EBF_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"EBF_DB_DSN"`
	Driver string `envconfig:"EBF_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"EBF_DB_HOST"`
	Port     int    `envconfig:"EBF_DB_PORT" default:"5432"`
	User     string `envconfig:"EBF_DB_USER"`
	Password string `envconfig:"EBF_DB_PASSWORD"`
	Name     string `envconfig:"EBF_DB_NAME"`
	SSLMode  string `envconfig:"EBF_DB_SSLMODE" default:"disable"`

	AutoMigrate bool `envconfig:"EBF_DB_AUTO_MIGRATE" default:"false"`

	MaxOpenConns    int           `envconfig:"EBF_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"EBF_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"EBF_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"EBF_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the dev sqlite driver is selected.
func (d DBConfig) IsSQLite() bool {
	return strings.EqualFold(d.Driver, DriverSQLite)
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" || d.IsSQLite() {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either EBF_DB_DSN or host/user/name settings are required")
	}
	d.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"EBF_REDIS_URL" required:"true"`
	Address      string        `envconfig:"EBF_REDIS_ADDR"`
	Password     string        `envconfig:"EBF_REDIS_PASSWORD"`
	DB           int           `envconfig:"EBF_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"EBF_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"EBF_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"EBF_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"EBF_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"EBF_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"EBF_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"EBF_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"EBF_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"EBF_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"EBF_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"EBF_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"EBF_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"EBF_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"EBF_ARGON_KEY_LEN" default:"32"`
}

type SynthesisConfig struct {
	APIKey   string        `envconfig:"EBF_SYNTHESIS_API_KEY"`
	BaseURL  string        `envconfig:"EBF_SYNTHESIS_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model    string        `envconfig:"EBF_SYNTHESIS_MODEL" default:"gemini-1.5-flash"`
	Timeout  time.Duration `envconfig:"EBF_SYNTHESIS_TIMEOUT" default:"15s"`
	CacheTTL time.Duration `envconfig:"EBF_SYNTHESIS_CACHE_TTL" default:"10m"`
}

type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"EBF_CART_SNAPSHOT_TTL" default:"168h"`
}

type RateLimitConfig struct {
	LoginLimit  int64         `envconfig:"EBF_LOGIN_RATE_LIMIT" default:"10"`
	LoginWindow time.Duration `envconfig:"EBF_LOGIN_RATE_WINDOW" default:"1m"`
}
