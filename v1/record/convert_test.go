package record

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/sdk/instrumentation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

var (
	testTraceID  = trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	testSpanID   = trace.SpanID{0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18}
	testParentID = trace.SpanID{0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28}
)

func makeSpanStub() tracetest.SpanStub {
	start := time.Date(2026, 2, 3, 12, 30, 0, 123456789, time.UTC)
	end := start.Add(250 * time.Millisecond)

	return tracetest.SpanStub{
		Name: "op",
		SpanContext: trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: testTraceID,
			SpanID:  testSpanID,
		}),
		Parent: trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: testTraceID,
			SpanID:  testParentID,
		}),
		SpanKind:  trace.SpanKindServer,
		StartTime: start,
		EndTime:   end,
		Attributes: []attribute.KeyValue{
			attribute.String("http.route", "/chat"),
			attribute.Int("http.status_code", 200),
			attribute.Bool("cache.hit", true),
		},
		Events: []sdktrace.Event{
			{
				Name:       "retry",
				Time:       start.Add(100 * time.Millisecond),
				Attributes: []attribute.KeyValue{attribute.Int("attempt", 2)},
			},
		},
		Links: []sdktrace.Link{
			{
				SpanContext: trace.NewSpanContext(trace.SpanContextConfig{
					TraceID: testTraceID,
					SpanID:  testParentID,
				}),
				Attributes: []attribute.KeyValue{attribute.String("kind", "follows")},
			},
		},
		Status:               sdktrace.Status{Code: codes.Error, Description: "boom"},
		Resource:             resource.NewSchemaless(attribute.String("service.name", "chat-api")),
		InstrumentationScope: instrumentation.Scope{Name: "test-scope", Version: "1.2.3"},
	}
}

func TestFromReadOnlySpan(t *testing.T) {
	data := FromReadOnlySpan(makeSpanStub().Snapshot())

	if data.Name != "op" {
		t.Errorf("name = %q, want %q", data.Name, "op")
	}
	if data.TraceID != "0102030405060708090a0b0c0d0e0f10" {
		t.Errorf("trace_id = %q", data.TraceID)
	}
	if data.SpanID != "1112131415161718" {
		t.Errorf("span_id = %q", data.SpanID)
	}
	if data.ParentSpanID == nil || *data.ParentSpanID != "2122232425262728" {
		t.Errorf("parent_span_id = %v", data.ParentSpanID)
	}
	if data.Kind != "server" {
		t.Errorf("kind = %q, want server", data.Kind)
	}
	if data.Status.Code != "Error" || data.Status.Description != "boom" {
		t.Errorf("status = %+v", data.Status)
	}
	if data.StartTime != "2026-02-03T12:30:00.123456789Z" {
		t.Errorf("start_time = %q", data.StartTime)
	}
	if data.EndTime == nil {
		t.Fatal("end_time should be set")
	}
	if data.Attributes["http.route"] != "/chat" {
		t.Errorf("attributes = %v", data.Attributes)
	}
	if got, ok := data.Attributes["http.status_code"].(int64); !ok || got != 200 {
		t.Errorf("http.status_code = %v", data.Attributes["http.status_code"])
	}
	if len(data.Events) != 1 || data.Events[0].Name != "retry" {
		t.Errorf("events = %+v", data.Events)
	}
	if len(data.Links) != 1 || data.Links[0].SpanID != "2122232425262728" {
		t.Errorf("links = %+v", data.Links)
	}
	if data.Resource["service.name"] != "chat-api" {
		t.Errorf("resource = %v", data.Resource)
	}
	if data.Scope.Name != "test-scope" || data.Scope.Version != "1.2.3" {
		t.Errorf("scope = %+v", data.Scope)
	}
}

func TestFromReadOnlySpan_RootSpanWithoutParent(t *testing.T) {
	stub := makeSpanStub()
	stub.Parent = trace.SpanContext{}

	data := FromReadOnlySpan(stub.Snapshot())

	if data.ParentSpanID != nil {
		t.Errorf("parent_span_id = %v, want nil", data.ParentSpanID)
	}

	// The null must survive serialization, not be omitted.
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	v, present := decoded["parent_span_id"]
	if !present {
		t.Fatal("parent_span_id key missing from JSON")
	}
	if v != nil {
		t.Errorf("parent_span_id = %v, want null", v)
	}
}

func TestFromReadOnlySpan_RoundTrip(t *testing.T) {
	data := FromReadOnlySpan(makeSpanStub().Snapshot())

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	var back SpanData
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}

	if back.Name != data.Name || back.TraceID != data.TraceID || back.SpanID != data.SpanID {
		t.Errorf("identity fields changed: %+v vs %+v", back, data)
	}
	if back.StartTime != data.StartTime || *back.EndTime != *data.EndTime {
		t.Errorf("timestamps changed: %+v vs %+v", back, data)
	}
	if back.Status != data.Status || back.Scope != data.Scope {
		t.Errorf("status/scope changed")
	}
	if len(back.Events) != len(data.Events) || len(back.Links) != len(data.Links) {
		t.Errorf("events/links changed")
	}
}

// captureExporter collects log records emitted through a real provider so
// tests convert genuine SDK records.
type captureExporter struct {
	records []sdklog.Record
}

func (c *captureExporter) Export(_ context.Context, recs []sdklog.Record) error {
	c.records = append(c.records, recs...)
	return nil
}

func (c *captureExporter) Shutdown(context.Context) error   { return nil }
func (c *captureExporter) ForceFlush(context.Context) error { return nil }

func emitLogRecord(t *testing.T, ctx context.Context, build func(*otellog.Record)) sdklog.Record {
	t.Helper()

	capture := &captureExporter{}
	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(capture)),
		sdklog.WithResource(resource.NewSchemaless(attribute.String("service.name", "chat-api"))),
	)
	defer provider.Shutdown(context.Background())

	var rec otellog.Record
	build(&rec)
	provider.Logger("test-scope", otellog.WithInstrumentationVersion("1.2.3")).Emit(ctx, rec)

	if len(capture.records) != 1 {
		t.Fatalf("expected 1 captured record, got %d", len(capture.records))
	}
	return capture.records[0]
}

func TestFromLogRecord(t *testing.T) {
	ts := time.Date(2026, 2, 3, 12, 30, 0, 0, time.UTC)
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    testTraceID,
		SpanID:     testSpanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	rec := emitLogRecord(t, ctx, func(r *otellog.Record) {
		r.SetTimestamp(ts)
		r.SetSeverity(otellog.SeverityWarn1) // 13
		r.SetSeverityText("WARN")
		r.SetBody(otellog.StringValue("disk almost full"))
		r.AddAttributes(
			otellog.String("disk", "/dev/sda1"),
			otellog.Int64("free_bytes", 1024),
			otellog.Bytes("digest", []byte{0xde, 0xad}),
		)
	})

	data := FromLogRecord(rec)

	if data.Timestamp != "2026-02-03T12:30:00Z" {
		t.Errorf("timestamp = %q", data.Timestamp)
	}
	if data.TraceID == nil || *data.TraceID != "0102030405060708090a0b0c0d0e0f10" {
		t.Errorf("trace_id = %v", data.TraceID)
	}
	if data.SpanID == nil || *data.SpanID != "1112131415161718" {
		t.Errorf("span_id = %v", data.SpanID)
	}
	if data.SeverityNumber != 13 || data.SeverityText != "WARN" {
		t.Errorf("severity = %d/%q", data.SeverityNumber, data.SeverityText)
	}
	if data.Body != "disk almost full" {
		t.Errorf("body = %v", data.Body)
	}
	if data.Attributes["disk"] != "/dev/sda1" {
		t.Errorf("attributes = %v", data.Attributes)
	}
	if data.Attributes["digest"] != "dead" {
		t.Errorf("digest = %v, want hex string", data.Attributes["digest"])
	}
	if data.Resource["service.name"] != "chat-api" {
		t.Errorf("resource = %v", data.Resource)
	}
	if data.Scope.Name != "test-scope" {
		t.Errorf("scope = %+v", data.Scope)
	}
}

func TestFromLogRecord_NoTraceContext(t *testing.T) {
	rec := emitLogRecord(t, context.Background(), func(r *otellog.Record) {
		r.SetSeverity(otellog.SeverityInfo)
		r.SetBody(otellog.StringValue("hello"))
	})

	data := FromLogRecord(rec)

	if data.TraceID != nil || data.SpanID != nil {
		t.Errorf("trace context = %v/%v, want nil/nil", data.TraceID, data.SpanID)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"trace_id", "span_id"} {
		v, present := decoded[key]
		if !present {
			t.Fatalf("%s key missing from JSON", key)
		}
		if v != nil {
			t.Errorf("%s = %v, want null", key, v)
		}
	}
}

func TestValueToJSON_Composite(t *testing.T) {
	v := otellog.MapValue(
		otellog.Slice("items", otellog.IntValue(1), otellog.StringValue("two")),
		otellog.Bool("ok", true),
	)

	got := ValueToJSON(v)
	m, ok := got.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map, got %T", got)
	}
	if m["ok"] != true {
		t.Errorf("ok = %v", m["ok"])
	}
	items, ok := m["items"].([]interface{})
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v", m["items"])
	}
	if items[0] != int64(1) || items[1] != "two" {
		t.Errorf("items = %v", items)
	}
}
