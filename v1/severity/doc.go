// Package severity maps OpenTelemetry severity numbers (1-24) to the small
// fixed set of log levels understood by the pipeline's backends.
//
// The mapping is a pure function with clamping for out-of-range inputs; the
// Cloud Logging exporter uses Level.Cloud to populate the first-class
// severity field on remote entries.
package severity
