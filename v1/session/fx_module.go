package session

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the session package.
// This module integrates the telemetry session into an Fx-based application
// by providing the Configure factory and registering its lifecycle hooks.
//
// The module:
//  1. Provides the Configure factory function to the dependency injection
//     container, making the session available to other components
//  2. Invokes RegisterSessionLifecycle to flush and tear the session down
//     during application shutdown
//
// Usage:
//
//	app := fx.New(
//	    session.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A session.Config instance must be available in the dependency injection container
var FXModule = fx.Module("session",
	fx.Provide(
		Configure,
	),
	fx.Invoke(RegisterSessionLifecycle),
)

// RegisterSessionLifecycle handles teardown of the telemetry session.
// The OnStop hook flushes buffered records and shuts the session's
// processors down before the application terminates.
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterSessionLifecycle(lc fx.Lifecycle, s *Session) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
