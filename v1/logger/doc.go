// Package logger provides the structured diagnostics logger used by the
// telemetry pipeline.
//
// The telemetry packages never let a backend failure propagate to the host
// application; instead, swallowed errors and lifecycle events are reported
// through this logger. It wraps Uber's Zap with a simplified interface:
// every method takes a message, an optional error, and optional field maps.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger struct: concrete wrapper around *zap.Logger
//   - NewClient constructor: returns *Logger (concrete type)
//   - Consumers (jsonl, cloudlog, session) declare their own narrow Logger
//     interfaces that *Logger satisfies
//   - FX module: provides *Logger for dependency injection
//
// # Direct Usage (Without FX)
//
//	diag := logger.NewClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "chat-api",
//	})
//	defer diag.Zap.Sync()
//
//	diag.Warn("span export failed", err, map[string]interface{}{
//		"backend": "cloudlogging",
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info}
//		}),
//	)
//
// Output goes to stderr so that the console telemetry backend, which writes
// to stdout, is never interleaved with diagnostics.
package logger
