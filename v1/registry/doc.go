// Package registry owns the per-process telemetry provider pair.
//
// Sessions come and go (one per configure/shutdown cycle, many per process
// in test suites), but the SDK providers they attach to are process-wide
// singletons: created once, installed as the global otel defaults, reused
// by every subsequent session, and recreated only when the process forks.
//
// The registry is the explicit handle for that state. It exposes:
//
//   - Providers: get-or-create the (tracer provider, logger provider) pair
//   - Attach / Detach: additive processor attachment for sessions
//   - Active: how many sessions are currently attached
//
// Providers are never shut down by this package; they live until process
// exit. Creating them is documented as single-initialization-path only —
// the registry does not lock the creation step.
package registry
