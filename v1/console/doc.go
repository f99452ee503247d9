// Package console provides the console telemetry backend.
//
// It is a thin pass-through to the SDK's own stdout exporters; the session
// lifecycle pairs these with synchronous processors so records appear on
// stdout the moment they finish.
package console
