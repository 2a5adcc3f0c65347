package logging

// Structured log keys shared by the client, gateway and CLI.
const (
	FieldService = "service"
	FieldVersion = "version"
	FieldError   = "error"
	FieldCount   = "count"
	FieldSeason  = "season"

	// Upstream calls.
	FieldOperation  = "operation"
	FieldOutcome    = "outcome"
	FieldURL        = "url"
	FieldDurationMS = "duration_ms"

	// Gateway requests.
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
)
