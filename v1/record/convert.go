package record

import (
	"encoding/hex"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// FromReadOnlySpan converts a finished SDK span into its JSON-safe snapshot.
func FromReadOnlySpan(span sdktrace.ReadOnlySpan) SpanData {
	sc := span.SpanContext()

	data := SpanData{
		Name:       span.Name(),
		TraceID:    sc.TraceID().String(),
		SpanID:     sc.SpanID().String(),
		StartTime:  formatTime(span.StartTime()),
		Kind:       span.SpanKind().String(),
		Attributes: attrsToMap(span.Attributes()),
		Events:     make([]EventData, 0, len(span.Events())),
		Links:      make([]LinkData, 0, len(span.Links())),
		Status: StatusData{
			Code:        span.Status().Code.String(),
			Description: span.Status().Description,
		},
		Scope: ScopeData{
			Name:    span.InstrumentationScope().Name,
			Version: span.InstrumentationScope().Version,
		},
	}

	if parent := span.Parent(); parent.HasSpanID() {
		id := parent.SpanID().String()
		data.ParentSpanID = &id
	}

	if end := span.EndTime(); !end.IsZero() {
		s := formatTime(end)
		data.EndTime = &s
	}

	for _, ev := range span.Events() {
		data.Events = append(data.Events, EventData{
			Name:       ev.Name,
			Timestamp:  formatTime(ev.Time),
			Attributes: attrsToMap(ev.Attributes),
		})
	}

	for _, link := range span.Links() {
		data.Links = append(data.Links, LinkData{
			TraceID:    link.SpanContext.TraceID().String(),
			SpanID:     link.SpanContext.SpanID().String(),
			Attributes: attrsToMap(link.Attributes),
		})
	}

	if res := span.Resource(); res != nil {
		data.Resource = attrsToMap(res.Attributes())
	} else {
		data.Resource = map[string]interface{}{}
	}

	return data
}

// FromLogRecord converts an SDK log record into its JSON-safe snapshot.
func FromLogRecord(rec sdklog.Record) LogData {
	data := LogData{
		Timestamp:         formatTime(rec.Timestamp()),
		ObservedTimestamp: formatTime(rec.ObservedTimestamp()),
		TraceFlags:        int(rec.TraceFlags()),
		SeverityNumber:    int(rec.Severity()),
		SeverityText:      rec.SeverityText(),
		Body:              ValueToJSON(rec.Body()),
		Attributes:        make(map[string]interface{}, rec.AttributesLen()),
		Resource:          attrsToMap(rec.Resource().Attributes()),
		Scope: ScopeData{
			Name:    rec.InstrumentationScope().Name,
			Version: rec.InstrumentationScope().Version,
		},
	}

	if tid := rec.TraceID(); tid.IsValid() {
		s := tid.String()
		data.TraceID = &s
	}
	if sid := rec.SpanID(); sid.IsValid() {
		s := sid.String()
		data.SpanID = &s
	}

	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		data.Attributes[kv.Key] = ValueToJSON(kv.Value)
		return true
	})

	return data
}

// ValueToJSON converts a log body/attribute value into a JSON-safe value.
// Byte blobs become hex strings; slices and maps convert recursively.
func ValueToJSON(v otellog.Value) interface{} {
	switch v.Kind() {
	case otellog.KindBool:
		return v.AsBool()
	case otellog.KindFloat64:
		return v.AsFloat64()
	case otellog.KindInt64:
		return v.AsInt64()
	case otellog.KindString:
		return v.AsString()
	case otellog.KindBytes:
		return hex.EncodeToString(v.AsBytes())
	case otellog.KindSlice:
		items := v.AsSlice()
		out := make([]interface{}, 0, len(items))
		for _, item := range items {
			out = append(out, ValueToJSON(item))
		}
		return out
	case otellog.KindMap:
		kvs := v.AsMap()
		out := make(map[string]interface{}, len(kvs))
		for _, kv := range kvs {
			out[kv.Key] = ValueToJSON(kv.Value)
		}
		return out
	default:
		return nil
	}
}

// attrsToMap flattens span/resource attributes into a plain map.
// attribute.Value covers scalars and scalar slices, all JSON-safe.
func attrsToMap(attrs []attribute.KeyValue) map[string]interface{} {
	out := make(map[string]interface{}, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

// formatTime renders a timestamp as an RFC3339Nano string in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
