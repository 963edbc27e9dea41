package metrics

// DefaultServiceName names the meter and resource when none is configured.
const DefaultServiceName = "esports-tracker"

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrGame     = "game"
	AttrReason   = "reason"
)
