package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"

	"github.com/trailhead-ai/telemetry/v1/cloudlog"
	"github.com/trailhead-ai/telemetry/v1/console"
	"github.com/trailhead-ai/telemetry/v1/jsonl"
	"github.com/trailhead-ai/telemetry/v1/registry"
)

// Session is the immutable descriptor of one configure/shutdown cycle of the
// pipeline. It bundles the exporters and processors created by Configure;
// shutting it down tears down exactly those, never the shared providers.
type Session struct {
	// ID uniquely names the session, e.g. session_20260830_120000_000042.
	ID string

	// Backend is the destination this session exports to.
	Backend Backend

	// LogFilePath is the jsonl session file, "" for other backends.
	LogFilePath string

	reg           *registry.Registry
	spanExporter  sdktrace.SpanExporter
	logExporter   sdklog.Exporter
	spanProcessor sdktrace.SpanProcessor
	logProcessor  sdklog.Processor
	removeBridge  func()
	logger        Logger

	mu     sync.Mutex
	closed bool
}

// exporterSet is what a backend builder produces: the two exporters plus the
// session file path when the backend writes one.
type exporterSet struct {
	span sdktrace.SpanExporter
	log  sdklog.Exporter
	path string
}

type backendBuilder func(cfg Config, sessionID string) (exporterSet, error)

// builders dispatches exporter construction per backend. BackendDisabled is
// absent on purpose: it never constructs anything.
var builders = map[Backend]backendBuilder{
	BackendConsole:      buildConsole,
	BackendJSONL:        buildJSONL,
	BackendCloudLogging: buildCloudLogging,
}

func buildConsole(Config, string) (exporterSet, error) {
	spanExp, err := console.NewSpanExporter()
	if err != nil {
		return exporterSet{}, err
	}
	logExp, err := console.NewLogExporter()
	if err != nil {
		return exporterSet{}, err
	}
	return exporterSet{span: spanExp, log: logExp}, nil
}

func buildJSONL(cfg Config, sessionID string) (exporterSet, error) {
	// Both signals of a session share one file, interleaved line by line.
	spanExp, logExp, err := jsonl.NewExporters(jsonl.Config{
		SessionID: sessionID,
		Dir:       cfg.Dir,
		Logger:    cfg.Logger,
		Observer:  cfg.Observer,
	})
	if err != nil {
		return exporterSet{}, err
	}
	return exporterSet{span: spanExp, log: logExp, path: spanExp.Path()}, nil
}

func buildCloudLogging(cfg Config, _ string) (exporterSet, error) {
	cloudCfg := cloudlog.Config{
		ProjectID:   cfg.ProjectID,
		Environment: cfg.Environment,
		Source:      cfg.ServiceName,
		Logger:      cfg.Logger,
		Observer:    cfg.Observer,
	}
	spanExp, err := cloudlog.NewSpanExporter(cloudCfg)
	if err != nil {
		return exporterSet{}, err
	}
	logExp, err := cloudlog.NewLogExporter(cloudCfg)
	if err != nil {
		return exporterSet{}, err
	}
	return exporterSet{span: spanExp, log: logExp}, nil
}

// newSessionID generates a session identifier from the current UTC time with
// microsecond precision, unique across rapid successive Configure calls.
func newSessionID(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("session_%s_%06d", t.Format("20060102_150405"), t.Nanosecond()/1000)
}

// Configure builds a telemetry session: exporters for the chosen backend,
// processors wrapping them, and the attachment to the process-wide provider
// pair. The TELEMETRY environment variable overrides cfg.Backend; an
// unrecognized value fails with ErrInvalidBackend.
//
// The console backend delivers records synchronously on the emitting
// goroutine. The jsonl and cloudlogging backends batch records and flush
// from a background worker; they also install a bridge that forwards the
// global zap logger's output into the log pipeline, replacing any bridge a
// previous session installed.
//
// Calling Configure again without shutting the previous session down is
// legal but leaves the earlier processors attached to the providers; a
// warning is emitted through cfg.Logger when that happens.
func Configure(cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()

	if env := os.Getenv(EnvBackend); env != "" {
		backend, err := ParseBackend(env)
		if err != nil {
			return nil, err
		}
		cfg.Backend = backend
	}

	if _, err := ParseBackend(string(cfg.Backend)); err != nil {
		return nil, err
	}

	id := newSessionID(time.Now())

	if cfg.Backend == BackendDisabled {
		return &Session{ID: id, Backend: BackendDisabled}, nil
	}

	if n := cfg.Registry.Active(); n > 0 && cfg.Logger != nil {
		cfg.Logger.Warn("configuring a new session while earlier processors are still attached", nil,
			map[string]interface{}{
				"attached": n,
			})
	}

	set, err := builders[cfg.Backend](cfg, id)
	if err != nil {
		return nil, err
	}

	var (
		spanProc sdktrace.SpanProcessor
		logProc  sdklog.Processor
	)
	if cfg.Backend == BackendConsole {
		spanProc = sdktrace.NewSimpleSpanProcessor(set.span)
		logProc = sdklog.NewSimpleProcessor(set.log)
	} else {
		spanProc = sdktrace.NewBatchSpanProcessor(set.span,
			sdktrace.WithMaxExportBatchSize(DefaultBatchSize),
			sdktrace.WithBatchTimeout(DefaultBatchInterval),
		)
		logProc = sdklog.NewBatchProcessor(set.log,
			sdklog.WithExportMaxBatchSize(DefaultBatchSize),
			sdklog.WithExportInterval(DefaultBatchInterval),
		)
	}

	cfg.Registry.Attach(spanProc, logProc)

	s := &Session{
		ID:            id,
		Backend:       cfg.Backend,
		LogFilePath:   set.path,
		reg:           cfg.Registry,
		spanExporter:  set.span,
		logExporter:   set.log,
		spanProcessor: spanProc,
		logProcessor:  logProc,
		logger:        cfg.Logger,
	}

	if cfg.Backend == BackendJSONL || cfg.Backend == BackendCloudLogging {
		_, lp := cfg.Registry.Providers()
		s.removeBridge = installBridge(cfg.ServiceName, lp)
	}

	rememberLive(s)
	if cfg.FlushOnExit {
		registerExitHook()
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("telemetry session configured", nil, map[string]interface{}{
			"session_id": s.ID,
			"backend":    string(s.Backend),
			"path":       s.LogFilePath,
		})
	}

	return s, nil
}

// Flush force-flushes the session's processors in parallel, draining any
// batched records to the exporters. Safe to call concurrently with exports.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed || s.spanProcessor == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.spanProcessor.ForceFlush(ctx) })
	if s.logProcessor != nil {
		g.Go(func() error { return s.logProcessor.ForceFlush(ctx) })
	}
	return g.Wait()
}

// Shutdown flushes and tears down the session's processors, removes the
// logging bridge it installed, and detaches from the registry. Providers are
// never shut down here; they stay alive for the next session.
//
// Flush and shutdown failures are swallowed after a warning: telemetry
// teardown must never take the host application down. Shutdown is
// idempotent, and a no-op for disabled sessions.
func (s *Session) Shutdown(ctx context.Context) error {
	if s == nil || s.Backend == BackendDisabled {
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	flushCtx, cancel := context.WithTimeout(ctx, DefaultFlushTimeout)
	defer cancel()

	g, flushCtx := errgroup.WithContext(flushCtx)
	g.Go(func() error { return s.spanProcessor.ForceFlush(flushCtx) })
	if s.logProcessor != nil {
		g.Go(func() error { return s.logProcessor.ForceFlush(flushCtx) })
	}
	if err := g.Wait(); err != nil {
		s.warn("flush during shutdown failed", err)
	}

	if err := s.spanProcessor.Shutdown(ctx); err != nil {
		s.warn("span processor shutdown failed", err)
	}
	if s.logProcessor != nil {
		if err := s.logProcessor.Shutdown(ctx); err != nil {
			s.warn("log processor shutdown failed", err)
		}
	}

	if s.removeBridge != nil {
		s.removeBridge()
	}
	s.reg.Detach(s.logProcessor)
	forgetLive(s)

	return nil
}

func (s *Session) warn(msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn(msg, err, map[string]interface{}{
		"session_id": s.ID,
		"backend":    string(s.Backend),
	})
}
