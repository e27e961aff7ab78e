package params

import "log/slog"

// DeprecationHandler receives deprecation messages from legacy entry points.
// The default logs through slog; set it to nil to silence deprecations, or
// swap it to capture messages (tests do this).
var DeprecationHandler = func(msg string) {
	slog.Warn(msg)
}

// WarnDeprecated routes msg through the deprecation handler. Execution
// always continues; deprecations are never fatal.
func WarnDeprecated(msg string) {
	if DeprecationHandler != nil {
		DeprecationHandler(msg)
	}
}
