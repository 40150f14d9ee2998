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
	Redis        RedisConfig
	Admin        AdminConfig
	Passcode     PasscodeConfig
	Host         HostConfig
	Assistant    AssistantConfig
	Checkout     CheckoutConfig
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
	Env          string   `envconfig:"BEANLINE_APP_ENV" required:"true"`
	Port         string   `envconfig:"BEANLINE_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"BEANLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"BEANLINE_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"BEANLINE_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BEANLINE_DB_DSN"`
	Driver string `envconfig:"BEANLINE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BEANLINE_DB_HOST"`
	LegacyPort     int    `envconfig:"BEANLINE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BEANLINE_DB_USER"`
	LegacyPassword string `envconfig:"BEANLINE_DB_PASSWORD"`
	LegacyName     string `envconfig:"BEANLINE_DB_NAME"`
	LegacySSLMode  string `envconfig:"BEANLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BEANLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BEANLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BEANLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BEANLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BEANLINE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BEANLINE_REDIS_ADDR"`
	Password     string        `envconfig:"BEANLINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"BEANLINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BEANLINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BEANLINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BEANLINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BEANLINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BEANLINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AdminConfig drives the shared-passcode admin gate. The passcode is a UI
// lock, not a security boundary; the token just keeps it out of every request.
type AdminConfig struct {
	PasscodeHash    string `envconfig:"BEANLINE_ADMIN_PASSCODE_HASH" required:"true"`
	TokenSecret     string `envconfig:"BEANLINE_ADMIN_TOKEN_SECRET" required:"true"`
	TokenTTLMinutes int    `envconfig:"BEANLINE_ADMIN_TOKEN_TTL_MINUTES" default:"720"`
}

// TokenTTL returns the admin token TTL configured in minutes.
func (a AdminConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

type PasscodeConfig struct {
	ArgonMemoryKB    int `envconfig:"BEANLINE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BEANLINE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BEANLINE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BEANLINE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BEANLINE_ARGON_KEY_LEN" default:"32"`
}

// HostConfig points at the messaging-bot runtime that receives order and
// menu commands. Delivery is fire-and-forget; the timeout is the only
// failure signal available.
type HostConfig struct {
	WebhookURL string        `envconfig:"BEANLINE_HOST_WEBHOOK_URL" required:"true"`
	AuthToken  string        `envconfig:"BEANLINE_HOST_AUTH_TOKEN"`
	Timeout    time.Duration `envconfig:"BEANLINE_HOST_TIMEOUT" default:"60s"`
}

type AssistantConfig struct {
	BaseURL string        `envconfig:"BEANLINE_ASSISTANT_BASE_URL" default:"https://api.openai.com/v1"`
	APIKey  string        `envconfig:"BEANLINE_ASSISTANT_API_KEY"`
	Model   string        `envconfig:"BEANLINE_ASSISTANT_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"BEANLINE_ASSISTANT_TIMEOUT" default:"60s"`
}

type CheckoutConfig struct {
	MinOrderTotal int `envconfig:"BEANLINE_CHECKOUT_MIN_ORDER_TOTAL" default:"100"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"BEANLINE_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"BEANLINE_SQLITE_PATH" default:"beanline.db"`
	AutoMigrate bool   `envconfig:"BEANLINE_AUTO_MIGRATE" default:"false"`
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
