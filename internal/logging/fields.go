package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldTool       = "tool"
	FieldEndpoint   = "endpoint"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldGameID     = "game_id"
	FieldTeamID     = "team_id"
	FieldSeason     = "season"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
