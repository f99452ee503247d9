package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func spanStub(name string) sdktrace.ReadOnlySpan {
	return tracetest.SpanStub{
		Name: name,
		SpanContext: trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0x01},
			SpanID:  trace.SpanID{0x02},
		}),
		StartTime: time.Now().Add(-time.Second),
		EndTime:   time.Now(),
	}.Snapshot()
}

// captureExporter grabs records from a throwaway provider so the tests feed
// genuine SDK log records into the exporter under test.
type captureExporter struct {
	records []sdklog.Record
}

func (c *captureExporter) Export(_ context.Context, recs []sdklog.Record) error {
	c.records = append(c.records, recs...)
	return nil
}

func (c *captureExporter) Shutdown(context.Context) error   { return nil }
func (c *captureExporter) ForceFlush(context.Context) error { return nil }

func makeLogRecords(t *testing.T, bodies ...string) []sdklog.Record {
	t.Helper()

	capture := &captureExporter{}
	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(capture)),
	)
	defer provider.Shutdown(context.Background())

	logger := provider.Logger("jsonl-test")
	for _, body := range bodies {
		var rec otellog.Record
		rec.SetBody(otellog.StringValue(body))
		rec.SetSeverity(otellog.SeverityInfo)
		logger.Emit(context.Background(), rec)
	}

	if len(capture.records) != len(bodies) {
		t.Fatalf("expected %d captured records, got %d", len(bodies), len(capture.records))
	}
	return capture.records
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	return lines
}

func TestNewSpanExporter_EmptySessionID(t *testing.T) {
	_, err := NewSpanExporter(Config{Dir: t.TempDir()})
	if !errors.Is(err, ErrEmptySessionID) {
		t.Fatalf("expected ErrEmptySessionID, got %v", err)
	}

	_, _, err = NewExporters(Config{Dir: t.TempDir()})
	if !errors.Is(err, ErrEmptySessionID) {
		t.Fatalf("expected ErrEmptySessionID from NewExporters, got %v", err)
	}
}

func TestExportSpans_WritesOneValidLinePerSpan(t *testing.T) {
	dir := t.TempDir()
	exp, err := NewSpanExporter(Config{SessionID: "s1", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer exp.Shutdown(context.Background())

	spans := []sdktrace.ReadOnlySpan{spanStub("a"), spanStub("b"), spanStub("c")}
	if err := exp.ExportSpans(context.Background(), spans); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "s1.jsonl"))
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	names := []string{"a", "b", "c"}
	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if obj["name"] != names[i] {
			t.Errorf("line %d name = %v, want %q", i, obj["name"], names[i])
		}
	}
}

func TestExportSpans_EmptyBatchNoIO(t *testing.T) {
	dir := t.TempDir()
	exp, err := NewSpanExporter(Config{SessionID: "s1", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer exp.Shutdown(context.Background())

	if err := exp.ExportSpans(context.Background(), nil); err != nil {
		t.Fatalf("empty batch should succeed, got %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "s1.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("file size = %d, want 0", info.Size())
	}
}

func TestExportSpans_AfterShutdownFailsClosed(t *testing.T) {
	dir := t.TempDir()
	exp, err := NewSpanExporter(Config{SessionID: "s1", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}

	if err := exp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{spanStub("a")}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "s1.jsonl")
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := exp.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
	// Second shutdown must be a no-op.
	if err := exp.Shutdown(context.Background()); err != nil {
		t.Fatalf("second shutdown errored: %v", err)
	}

	err = exp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{spanStub("b")})
	if !IsShutdownError(err) {
		t.Fatalf("expected shutdown error, got %v", err)
	}
	if err := exp.ForceFlush(context.Background()); !IsShutdownError(err) {
		t.Fatalf("expected shutdown error from flush, got %v", err)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if after.Size() != before.Size() {
		t.Errorf("file grew after shutdown: %d -> %d", before.Size(), after.Size())
	}
}

// closeTrackingBuffer records whether Close was ever called.
type closeTrackingBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closeTrackingBuffer) Close() error {
	b.closed = true
	return nil
}

func TestExternalWriterNeverClosed(t *testing.T) {
	buf := &closeTrackingBuffer{}
	exp, err := NewLogExporter(Config{SessionID: "s1", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	recs := makeLogRecords(t, "hello")
	if err := exp.Export(context.Background(), recs); err != nil {
		t.Fatal(err)
	}
	if err := exp.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}

	if buf.closed {
		t.Fatal("externally supplied writer was closed")
	}
	if exp.Path() != "" {
		t.Errorf("path = %q, want empty for external writer", exp.Path())
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &obj); err != nil {
		t.Fatalf("written line is not valid JSON: %v", err)
	}
	if obj["body"] != "hello" {
		t.Errorf("body = %v", obj["body"])
	}
}

func TestConcurrentExports_NoInterleavedLines(t *testing.T) {
	const workers = 5
	const batches = 10

	dir := t.TempDir()
	exp, err := NewSpanExporter(Config{SessionID: "s1", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer exp.Shutdown(context.Background())

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < batches; i++ {
				name := fmt.Sprintf("w%d-%d", w, i)
				if err := exp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{spanStub(name)}); err != nil {
					t.Errorf("export failed: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	lines := readLines(t, filepath.Join(dir, "s1.jsonl"))
	if len(lines) != workers*batches {
		t.Fatalf("expected %d lines, got %d", workers*batches, len(lines))
	}
	seen := make(map[string]bool, len(lines))
	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		name, _ := obj["name"].(string)
		if seen[name] {
			t.Errorf("duplicate span name %q", name)
		}
		seen[name] = true
	}
}

func TestSharedSink_ShutdownAffectsBothExporters(t *testing.T) {
	dir := t.TempDir()
	spanExp, logExp, err := NewExporters(Config{SessionID: "s1", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}

	if spanExp.Path() != logExp.Path() {
		t.Fatalf("exporters should share one file: %q vs %q", spanExp.Path(), logExp.Path())
	}

	if err := spanExp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{spanStub("a")}); err != nil {
		t.Fatal(err)
	}
	if err := logExp.Export(context.Background(), makeLogRecords(t, "msg")); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, spanExp.Path())
	if len(lines) != 2 {
		t.Fatalf("expected 2 interleaved lines, got %d", len(lines))
	}

	if err := spanExp.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := logExp.Export(context.Background(), makeLogRecords(t, "late")); !IsShutdownError(err) {
		t.Fatalf("expected shutdown error on shared sink, got %v", err)
	}
	// Closing the other half is still a no-op, not a double close.
	if err := logExp.Shutdown(context.Background()); err != nil {
		t.Fatalf("second shutdown errored: %v", err)
	}
}

func TestLogExporter_LinesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	exp, err := NewLogExporter(Config{SessionID: "s1", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer exp.Shutdown(context.Background())

	if err := exp.Export(context.Background(), makeLogRecords(t, "one", "two")); err != nil {
		t.Fatal(err)
	}
	if err := exp.ForceFlush(context.Background()); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "s1.jsonl"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, want := range []string{"one", "two"} {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(lines[i]), &obj); err != nil {
			t.Fatalf("line %d invalid: %v", i, err)
		}
		if obj["body"] != want {
			t.Errorf("line %d body = %v, want %q", i, obj["body"], want)
		}
		if obj["severity_number"] != float64(9) {
			t.Errorf("line %d severity_number = %v, want 9", i, obj["severity_number"])
		}
	}
}
