package cloudlog

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/logging"
)

// entrySink is the narrow slice of the Cloud Logging client the exporters
// need. Tests substitute their own implementation; production code uses the
// gcpSink wrapper around *logging.Client.
type entrySink interface {
	// LogSync writes one entry synchronously, surfacing remote errors to
	// the caller.
	LogSync(ctx context.Context, e logging.Entry) error

	// Flush blocks until buffered entries have been sent.
	Flush() error

	// Close flushes and releases the underlying client.
	Close() error
}

// gcpSink adapts the real Cloud Logging client to entrySink.
type gcpSink struct {
	client *logging.Client
	logger *logging.Logger
}

func (g *gcpSink) LogSync(ctx context.Context, e logging.Entry) error {
	return g.logger.LogSync(ctx, e)
}

func (g *gcpSink) Flush() error {
	return g.logger.Flush()
}

func (g *gcpSink) Close() error {
	return g.client.Close()
}

// lazyClient defers Cloud Logging client construction to the first export
// call. Credentials are often only available after process startup (mounted
// secrets, metadata server); building the client lazily picks them up.
type lazyClient struct {
	mu       sync.Mutex
	sink     entrySink
	build    func(ctx context.Context) (entrySink, error)
	shutdown bool
}

// newLazyClient wires the default builder for the given config.
func newLazyClient(cfg Config) *lazyClient {
	return &lazyClient{
		build: func(ctx context.Context) (entrySink, error) {
			client, err := logging.NewClient(ctx, cfg.ProjectID, cfg.ClientOptions...)
			if err != nil {
				return nil, fmt.Errorf("cloudlog: creating client: %w", err)
			}
			return &gcpSink{client: client, logger: client.Logger(cfg.LogID)}, nil
		},
	}
}

// get returns the sink, building it on first use.
func (c *lazyClient) get(ctx context.Context) (entrySink, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shutdown {
		return nil, ErrShutdown
	}
	if c.sink == nil {
		sink, err := c.build(ctx)
		if err != nil {
			return nil, err
		}
		c.sink = sink
	}
	return c.sink, nil
}

// built reports whether the client has been constructed yet.
func (c *lazyClient) built() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sink != nil
}

// flush flushes the sink if one was ever built.
func (c *lazyClient) flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shutdown {
		return ErrShutdown
	}
	if c.sink == nil {
		return nil
	}
	return c.sink.Flush()
}

// close shuts the client down, closing the sink only if it was ever built.
// close is idempotent.
func (c *lazyClient) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shutdown {
		return nil
	}
	c.shutdown = true

	if c.sink == nil {
		return nil
	}
	return c.sink.Close()
}

// NewSpanExporter creates a Cloud Logging span exporter. The remote client
// is not built until the first export call. Fails with ErrEmptyProjectID
// when cfg.ProjectID is empty.
func NewSpanExporter(cfg Config) (*SpanExporter, error) {
	if cfg.ProjectID == "" {
		return nil, ErrEmptyProjectID
	}
	cfg = cfg.withDefaults()

	return &SpanExporter{
		cfg:    cfg,
		client: newLazyClient(cfg),
	}, nil
}

// NewLogExporter creates a Cloud Logging log exporter. The remote client is
// not built until the first export call. Fails with ErrEmptyProjectID when
// cfg.ProjectID is empty.
func NewLogExporter(cfg Config) (*LogExporter, error) {
	if cfg.ProjectID == "" {
		return nil, ErrEmptyProjectID
	}
	cfg = cfg.withDefaults()

	return &LogExporter{
		cfg:    cfg,
		client: newLazyClient(cfg),
	}, nil
}

// traceName renders the trace correlation string Cloud Logging expects.
func traceName(projectID, traceID string) string {
	return fmt.Sprintf("projects/%s/traces/%s", projectID, traceID)
}
