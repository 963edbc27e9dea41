package config

import "time"

const (
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envLabelTick       = "LABEL_TICK"
	envProvider        = "PROVIDER"
	envFixturePath     = "FIXTURE_PATH"
	envDisplayTimezone = "DISPLAY_TIMEZONE"
	envAllowAllStatus  = "STATUS_FILTER_ALLOW_ALL"
	envAdminToken      = "ADMIN_TOKEN"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envLogFile         = "LOG_FILE"
	envLogMaxSize      = "LOG_MAX_SIZE_MB"
	envLogMaxBackups   = "LOG_MAX_BACKUPS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	envPandaBaseURL      = "PANDASCORE_BASE_URL"
	envPandaToken        = "PANDASCORE_TOKEN"
	envPandaPerPage      = "PANDASCORE_PER_PAGE"
	envPandaTimeout      = "PANDASCORE_TIMEOUT"
	envPandaGames        = "PANDASCORE_GAMES"
	envPandaPlaceholder  = "PANDASCORE_PLACEHOLDER"
	envPandaRetries      = "PANDASCORE_RETRY_ATTEMPTS"
	envPandaRetryBackoff = "PANDASCORE_RETRY_BACKOFF"
	envPandaMinInterval  = "PANDASCORE_MIN_INTERVAL"

	// ProviderPandaScore fetches live data; ProviderFixture serves the bundled dataset only.
	ProviderPandaScore = "pandascore"
	ProviderFixture    = "fixture"

	defaultPort = "4000"
	// Each poll issues one request per game, so keep the default well under PandaScore's hourly quota.
	defaultPollInterval    = 2 * Duration(time.Minute)
	defaultLabelTick       = 30 * Duration(time.Second)
	defaultProvider        = ProviderPandaScore
	defaultDisplayTimezone = "UTC"
	defaultAllowAllStatus  = true
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultLogMaxSizeMB    = 10
	defaultLogMaxBackups   = 5
	defaultMetricsPort     = "9090"
	defaultServiceName     = "esports-tracker"

	defaultPandaBaseURL      = "https://api.pandascore.co"
	defaultPandaPerPage      = 40
	maxPandaPerPage          = 100
	defaultPandaTimeout      = 10 * Duration(time.Second)
	defaultPandaPlaceholder  = true
	defaultPandaRetries      = 1
	defaultPandaRetryBackoff = 200 * Duration(time.Millisecond)
	defaultPandaMinInterval  = 10 * Duration(time.Second)
)
