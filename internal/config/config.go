package config

import "strings"

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port         string
	PollInterval Duration
	LabelTick    Duration
	Provider     string
	FixturePath  string
	AdminToken   string
	CORSOrigins  []string
	Display      DisplayConfig
	PandaScore   PandaScoreConfig
	Logging      LoggingConfig
	Metrics      MetricsConfig
}

// DisplayConfig controls how matches are presented.
type DisplayConfig struct {
	Timezone string
	// AllowAllStatus exposes the "all" status filter. When false only
	// upcoming and played are offered and upcoming is the default.
	AllowAllStatus bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		LabelTick:    durationEnvOrDefault(envLabelTick, defaultLabelTick),
		Provider:     strings.ToLower(strings.TrimSpace(envOrDefault(envProvider, defaultProvider))),
		FixturePath:  envOrDefault(envFixturePath, ""),
		AdminToken:   envOrDefault(envAdminToken, ""),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, []string{"*"}),
		Display: DisplayConfig{
			Timezone:       envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
			AllowAllStatus: boolEnvOrDefault(envAllowAllStatus, defaultAllowAllStatus),
		},
		PandaScore: loadPandaScore(),
		Logging:    loadLogging(),
		Metrics:    loadMetrics(),
	}
}
