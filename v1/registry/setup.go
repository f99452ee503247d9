package registry

import (
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Registry hands out the per-process pair of telemetry providers: one
// tracer provider and one logger provider. The pair is created exactly once
// per operating-system process and reused across sessions; only a process
// fork (observed as a PID change) discards and recreates it.
//
// Creating the providers is NOT safe for concurrent first calls. Call
// Providers from a single initialization path; once created, the returned
// providers are themselves safe for concurrent use.
type Registry struct {
	cfg Config

	// pid is swappable in tests to simulate a fork.
	pid func() int

	ownerPID       int
	tracerProvider *sdktrace.TracerProvider
	loggerProvider *sdklog.LoggerProvider
	logProcessors  *muxProcessor

	mu     sync.Mutex // guards active
	active int
}

// New creates a registry. Most applications use Default instead; explicit
// registries exist so tests can run isolated provider pairs.
func New(cfg Config) *Registry {
	return &Registry{
		cfg: cfg.withDefaults(),
		pid: os.Getpid,
	}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry handle, creating it on first
// use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(Config{})
	})
	return defaultRegistry
}

// Providers returns the provider pair for the current process, creating it
// on first call. Creation installs both providers as the process's global
// defaults (otel tracer provider, global logger provider) — a one-time
// action per process. If the PID has changed since the pair was created,
// the old pair is abandoned and a fresh one is created for the child
// process.
func (r *Registry) Providers() (*sdktrace.TracerProvider, *sdklog.LoggerProvider) {
	currentPID := r.pid()
	if r.tracerProvider != nil && r.ownerPID == currentPID {
		return r.tracerProvider, r.loggerProvider
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(r.cfg.ServiceName),
		semconv.DeploymentEnvironment(r.cfg.Environment),
		attribute.String("environment", r.cfg.Environment),
	)

	r.tracerProvider = sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	r.logProcessors = newMuxProcessor()
	r.loggerProvider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(r.logProcessors),
	)
	r.ownerPID = currentPID

	// Abandoned pre-fork providers are left to garbage collection; they
	// are never explicitly shut down.
	otel.SetTracerProvider(r.tracerProvider)
	global.SetLoggerProvider(r.loggerProvider)

	return r.tracerProvider, r.loggerProvider
}

// Attach registers a session's processors with the providers. Attachment
// is additive: the trace SDK offers no way to unregister a span processor,
// so a session that is never shut down leaves a small, inert processor
// behind (it is shut down and drops all records, but the object remains
// registered). Log processors attach to the registry's mux and are fully
// removed on Detach.
func (r *Registry) Attach(spanProc sdktrace.SpanProcessor, logProc sdklog.Processor) {
	tp, _ := r.Providers()
	tp.RegisterSpanProcessor(spanProc)
	if logProc != nil {
		r.logProcessors.add(logProc)
	}

	r.mu.Lock()
	r.active++
	r.mu.Unlock()
}

// Detach releases a session's log processor from the mux and decrements the
// active count. The span processor stays registered with the tracer
// provider (shut down, so every callback is a no-op).
func (r *Registry) Detach(logProc sdklog.Processor) {
	if logProc != nil && r.logProcessors != nil {
		r.logProcessors.remove(logProc)
	}

	r.mu.Lock()
	if r.active > 0 {
		r.active--
	}
	r.mu.Unlock()
}

// Active reports how many attached sessions have not been detached yet.
// The session lifecycle uses this to warn when configure is called while
// earlier processors are still attached.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}
