// Package session orchestrates one configuration lifetime of the telemetry
// pipeline.
//
// Configure picks a backend (console, jsonl, cloudlogging or disabled),
// builds its exporters, wraps them in simple or batched processors, attaches
// them to the process-wide provider pair from v1/registry, and returns an
// immutable Session descriptor. The caller keeps emitting spans and log
// records through the regular OpenTelemetry API; Shutdown flushes and tears
// down only what this session created, leaving the providers alive for the
// next one.
//
// The TELEMETRY environment variable overrides the configured backend,
// which lets deployments switch destinations without a code change.
package session
