package registry

import (
	"context"
	"sync"

	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// muxProcessor fans log records out to a mutable list of processors.
//
// The log SDK fixes its processors at provider construction time, but the
// registry must keep one provider alive across many sessions, each bringing
// its own processor. The provider is therefore built with a single mux
// whose member list changes as sessions come and go.
type muxProcessor struct {
	mu    sync.RWMutex
	procs []sdklog.Processor
}

func newMuxProcessor() *muxProcessor {
	return &muxProcessor{}
}

// add appends a processor to the fan-out list.
func (m *muxProcessor) add(p sdklog.Processor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.procs = append(m.procs, p)
}

// remove drops a processor from the fan-out list. Removing a processor that
// is not in the list is a no-op.
func (m *muxProcessor) remove(p sdklog.Processor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.procs {
		if existing == p {
			m.procs = append(m.procs[:i], m.procs[i+1:]...)
			return
		}
	}
}

// len reports the number of attached processors.
func (m *muxProcessor) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.procs)
}

// snapshot copies the current list so emit calls run without holding the
// lock.
func (m *muxProcessor) snapshot() []sdklog.Processor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]sdklog.Processor, len(m.procs))
	copy(out, m.procs)
	return out
}

// OnEmit forwards the record to every attached processor. All processors
// are tried even when one fails; the first error is returned.
func (m *muxProcessor) OnEmit(ctx context.Context, rec *sdklog.Record) error {
	var firstErr error
	for _, p := range m.snapshot() {
		if err := p.OnEmit(ctx, rec); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ForceFlush flushes every attached processor.
func (m *muxProcessor) ForceFlush(ctx context.Context) error {
	var firstErr error
	for _, p := range m.snapshot() {
		if err := p.ForceFlush(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Shutdown shuts down every attached processor. Only reached if the
// provider itself is shut down, which the registry never does; sessions
// shut their own processors down directly.
func (m *muxProcessor) Shutdown(ctx context.Context) error {
	var firstErr error
	for _, p := range m.snapshot() {
		if err := p.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
