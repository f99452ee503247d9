package jsonl

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// sink is the shared append-only destination behind the span and log
// exporters of one session. All writes go through a single mutex whose
// critical section covers the whole serialize+write loop of a batch, so
// concurrent exporters can never interleave partial lines.
//
// A sink either owns an *os.File it opened itself, or borrows an external
// writer it must never close.
type sink struct {
	mu     sync.Mutex
	w      io.Writer
	file   *os.File // nil when the writer is externally owned
	path   string
	closed bool
}

// newSink validates the configuration and opens the session file, creating
// the directory first if needed. When cfg.Writer is set the file system is
// not touched at all.
func newSink(cfg Config) (*sink, error) {
	if cfg.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	if cfg.Writer != nil {
		return &sink{w: cfg.Writer}, nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, cfg.SessionID+".jsonl")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return &sink{w: file, file: file, path: path}, nil
}

// writeJSONLines serializes every object to a single JSON line and appends
// it to the destination. Serialization happens under the lock on purpose:
// the line-atomicity contract is per batch, not per record.
func (s *sink) writeJSONLines(objs []interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrShutdown
	}

	for _, obj := range objs {
		line, err := json.Marshal(obj)
		if err != nil {
			return err
		}
		if _, err := s.w.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// flush pushes buffered data to stable storage. Writes go straight to the
// OS, so only the kernel buffer remains; for owned files this is an fsync.
func (s *sink) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrShutdown
	}
	if s.file != nil {
		return s.file.Sync()
	}
	return nil
}

// close marks the sink shut down. The file handle is closed only when the
// sink owns it; externally supplied writers are left untouched. close is
// idempotent.
func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// Path returns the session file path, or "" when writing to an external
// writer.
func (s *sink) Path() string {
	return s.path
}

// NewExporters creates a span exporter and a log exporter sharing one
// session file. This is the constructor the session lifecycle uses: both
// signals of a session land in the same {SessionID}.jsonl file, interleaved
// line by line.
//
// The two exporters share the underlying sink, so shutting either one down
// makes the file unavailable to both. The session lifecycle always shuts
// them down together.
func NewExporters(cfg Config) (*SpanExporter, *LogExporter, error) {
	s, err := newSink(cfg)
	if err != nil {
		return nil, nil, err
	}

	return newSpanExporter(s, cfg), newLogExporter(s, cfg), nil
}

// NewSpanExporter creates a standalone span exporter with its own session
// file. Fails with ErrEmptySessionID when cfg.SessionID is empty.
func NewSpanExporter(cfg Config) (*SpanExporter, error) {
	s, err := newSink(cfg)
	if err != nil {
		return nil, err
	}
	return newSpanExporter(s, cfg), nil
}

// NewLogExporter creates a standalone log exporter with its own session
// file. Fails with ErrEmptySessionID when cfg.SessionID is empty.
func NewLogExporter(cfg Config) (*LogExporter, error) {
	s, err := newSink(cfg)
	if err != nil {
		return nil, err
	}
	return newLogExporter(s, cfg), nil
}
