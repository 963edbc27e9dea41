package logging

import "log/slog"

// Structured field keys shared by every package.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldGame       = "game"
	FieldSource     = "source"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "err"
)

// CommonAttrs returns the service and version attributes stamped on every
// entry. Empty values are left out.
func CommonAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{{FieldService, service}, {FieldVersion, version}} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}

// Err is the attribute form of an error under FieldError.
func Err(err error) slog.Attr {
	return slog.Any(FieldError, err)
}
