package types

// Logger defines methods for structured logging.
//
// Compatible with log/slog (via the logging package adapter),
// zap.SugaredLogger, and other structured loggers. All methods accept
// alternating key-value pairs for structured fields.
//
// The Planner logs partition lifecycle events through this interface:
// builds, repartitions, degraded-coverage warnings, duplicate-identity
// warnings, and snapshot store operations.
type Logger interface {
	// Debug logs fine-grained diagnostic detail, such as roster parse counts.
	Debug(msg string, keysAndValues ...any)

	// Info logs normal lifecycle events, such as a completed build.
	Info(msg string, keysAndValues ...any)

	// Warn logs recoverable conditions the user should see, such as degraded
	// category coverage or duplicate roster identities.
	Warn(msg string, keysAndValues ...any)

	// Error logs failed operations.
	Error(msg string, keysAndValues ...any)

	// Fatal logs an unrecoverable condition and calls os.Exit(1), even if
	// logging at this level is disabled.
	Fatal(msg string, keysAndValues ...any)
}
