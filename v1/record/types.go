package record

// SpanData is the JSON-safe snapshot of a finished span as written by the
// file exporters. Every field of the SDK's read-only span is represented;
// values are coerced to JSON-safe types:
//   - timestamps become RFC3339Nano strings in UTC
//   - trace/span identifiers become lower-case hex strings (32 / 16 chars)
//   - byte blobs become hex strings
//
// Fields that may legitimately be absent (parent span, end time) are
// pointers and encode as JSON null rather than being omitted, so every line
// carries the full schema.
type SpanData struct {
	Name         string                 `json:"name"`
	TraceID      string                 `json:"trace_id"`
	SpanID       string                 `json:"span_id"`
	ParentSpanID *string                `json:"parent_span_id"`
	StartTime    string                 `json:"start_time"`
	EndTime      *string                `json:"end_time"`
	Kind         string                 `json:"kind"`
	Status       StatusData             `json:"status"`
	Attributes   map[string]interface{} `json:"attributes"`
	Events       []EventData            `json:"events"`
	Links        []LinkData             `json:"links"`
	Resource     map[string]interface{} `json:"resource"`
	Scope        ScopeData              `json:"scope"`
}

// StatusData carries the span status code and description.
type StatusData struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// EventData is a timestamped event attached to a span.
type EventData struct {
	Name       string                 `json:"name"`
	Timestamp  string                 `json:"timestamp"`
	Attributes map[string]interface{} `json:"attributes"`
}

// LinkData is a link from a span to another span context.
type LinkData struct {
	TraceID    string                 `json:"trace_id"`
	SpanID     string                 `json:"span_id"`
	Attributes map[string]interface{} `json:"attributes"`
}

// ScopeData identifies the instrumentation scope that produced a record.
type ScopeData struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// LogData is the JSON-safe snapshot of a log record. Trace correlation
// fields are pointers and encode as null when the record carries no trace
// context.
type LogData struct {
	Timestamp         string                 `json:"timestamp"`
	ObservedTimestamp string                 `json:"observed_timestamp"`
	TraceID           *string                `json:"trace_id"`
	SpanID            *string                `json:"span_id"`
	TraceFlags        int                    `json:"trace_flags"`
	SeverityNumber    int                    `json:"severity_number"`
	SeverityText      string                 `json:"severity_text"`
	Body              interface{}            `json:"body"`
	Attributes        map[string]interface{} `json:"attributes"`
	Resource          map[string]interface{} `json:"resource"`
	Scope             ScopeData              `json:"scope"`
}
