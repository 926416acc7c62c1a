package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "nookstop"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvDBDSN  = "NOOKSTOP_DB_DSN"
	EnvDBHost = "NOOKSTOP_DB_HOST"
	EnvDBUser = "NOOKSTOP_DB_USER"
	EnvDBName = "NOOKSTOP_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Cart          CartConfig
	Catalog       CatalogConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"NOOKSTOP_APP_ENV" required:"true"`
	Port         string `envconfig:"NOOKSTOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"NOOKSTOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NOOKSTOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"NOOKSTOP_DB_DSN"`
	Driver string `envconfig:"NOOKSTOP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"NOOKSTOP_DB_HOST"`
	LegacyPort     int    `envconfig:"NOOKSTOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"NOOKSTOP_DB_USER"`
	LegacyPassword string `envconfig:"NOOKSTOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"NOOKSTOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"NOOKSTOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"NOOKSTOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NOOKSTOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NOOKSTOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NOOKSTOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"NOOKSTOP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"NOOKSTOP_REDIS_ADDR"`
	Password     string        `envconfig:"NOOKSTOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"NOOKSTOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NOOKSTOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NOOKSTOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NOOKSTOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NOOKSTOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NOOKSTOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"NOOKSTOP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"NOOKSTOP_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"NOOKSTOP_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"NOOKSTOP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"NOOKSTOP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"NOOKSTOP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"NOOKSTOP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"NOOKSTOP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"NOOKSTOP_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow           time.Duration `envconfig:"NOOKSTOP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit    int           `envconfig:"NOOKSTOP_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit          int           `envconfig:"NOOKSTOP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow        time.Duration `envconfig:"NOOKSTOP_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterUsernameLimit int           `envconfig:"NOOKSTOP_AUTH_RATE_LIMIT_REGISTER_USERNAME_LIMIT" default:"3"`
	RegisterIPLimit       int           `envconfig:"NOOKSTOP_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CartConfig struct {
	// TTL bounds how long an untouched cart survives in Redis.
	TTL         time.Duration `envconfig:"NOOKSTOP_CART_TTL" default:"720h"`
	MaxQuantity int           `envconfig:"NOOKSTOP_CART_MAX_QUANTITY" default:"99"`
}

type CatalogConfig struct {
	VillagerBaseURL    string        `envconfig:"NOOKSTOP_CATALOG_VILLAGER_BASE_URL" default:"https://api.nookipedia.com"`
	VillagerAPIKey     string        `envconfig:"NOOKSTOP_CATALOG_VILLAGER_API_KEY"`
	VillagerAPIVersion string        `envconfig:"NOOKSTOP_CATALOG_VILLAGER_API_VERSION" default:"1.6.0"`
	FurnitureURL       string        `envconfig:"NOOKSTOP_CATALOG_FURNITURE_URL" default:"https://raw.githubusercontent.com/and1cam/ACNHAPI/master/v1a/houseware.json"`
	FurnitureImageBase string        `envconfig:"NOOKSTOP_CATALOG_FURNITURE_IMAGE_BASE" default:"https://raw.githubusercontent.com/and1cam/ACNHAPI/master/images/furniture"`
	PageSize           int           `envconfig:"NOOKSTOP_CATALOG_PAGE_SIZE" default:"12"`
	RequestTimeout     time.Duration `envconfig:"NOOKSTOP_CATALOG_REQUEST_TIMEOUT" default:"10s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"NOOKSTOP_AUTO_MIGRATE" default:"false"`
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
