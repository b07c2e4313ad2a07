package logfields

const (
	// Identifiers

	Name      = "name"
	Operation = "operation"

	// time zones

	TimeZone     = "timezone"
	KeyName      = "keyName"
	StandardName = "standardName"
	DaylightName = "daylightName"
	Bias         = "bias"
	Variant      = "variant"
	OSVersion    = "osVersion"

	// security

	Privilege = "privilege"

	// Win32

	Win32Code = "win32Code"
	HRESULT   = "hresult"

	// storage

	Path = "path"

	// Time

	Duration  = "duration"
	StartTime = "startTime"
	EndTime   = "endTime"

	// logging and tracing

	TraceID      = "traceID"
	SpanID       = "spanID"
	ParentSpanID = "parentSpanID"
)
