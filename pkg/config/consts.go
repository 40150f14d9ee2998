package config

// EnvPrefix is passed to envconfig; individual fields pin their full names
// via struct tags so the prefix only matters for unlabeled additions.
const EnvPrefix = "beanline"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "BEANLINE_APP_ENV"
	EnvPort     = "BEANLINE_APP_PORT"
	EnvDBDSN    = "BEANLINE_DB_DSN"
	EnvDBHost   = "BEANLINE_DB_HOST"
	EnvDBUser   = "BEANLINE_DB_USER"
	EnvDBName   = "BEANLINE_DB_NAME"
	EnvRedisURL = "BEANLINE_REDIS_URL"

	EnvAdminPasscodeHash = "BEANLINE_ADMIN_PASSCODE_HASH"
	EnvAdminTokenSecret  = "BEANLINE_ADMIN_TOKEN_SECRET"
	EnvHostWebhookURL    = "BEANLINE_HOST_WEBHOOK_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
