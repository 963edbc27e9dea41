package config

import "strings"

// PandaScoreConfig controls how we talk to the PandaScore API.
type PandaScoreConfig struct {
	BaseURL       string
	Token         string
	PerPage       int
	Timeout       Duration
	Games         []string
	Placeholder   bool
	RetryAttempts int
	RetryBackoff  Duration
	// MinInterval spaces upstream fetches so manual refreshes cannot burn quota.
	MinInterval Duration
}

func loadPandaScore() PandaScoreConfig {
	perPage := intEnvOrDefault(envPandaPerPage, defaultPandaPerPage)
	if perPage > maxPandaPerPage {
		perPage = maxPandaPerPage
	}
	return PandaScoreConfig{
		BaseURL:       envOrDefault(envPandaBaseURL, defaultPandaBaseURL),
		Token:         strings.TrimSpace(envOrDefault(envPandaToken, "")),
		PerPage:       perPage,
		Timeout:       durationEnvOrDefault(envPandaTimeout, defaultPandaTimeout),
		Games:         listEnvOrDefault(envPandaGames, nil),
		Placeholder:   boolEnvOrDefault(envPandaPlaceholder, defaultPandaPlaceholder),
		RetryAttempts: intEnvOrDefault(envPandaRetries, defaultPandaRetries),
		RetryBackoff:  durationEnvOrDefault(envPandaRetryBackoff, defaultPandaRetryBackoff),
		MinInterval:   durationEnvOrDefault(envPandaMinInterval, defaultPandaMinInterval),
	}
}
