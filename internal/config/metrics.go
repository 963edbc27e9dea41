package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

// LoggingConfig selects the slog handler and level. A non-empty File sends
// logs to a size-rotated file instead of stdout.
type LoggingConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:      envOrDefault(envLogLevel, defaultLogLevel),
		Format:     envOrDefault(envLogFormat, defaultLogFormat),
		File:       envOrDefault(envLogFile, ""),
		MaxSizeMB:  intEnvOrDefault(envLogMaxSize, defaultLogMaxSizeMB),
		MaxBackups: intEnvOrDefault(envLogMaxBackups, defaultLogMaxBackups),
	}
}
