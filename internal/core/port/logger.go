package port

// Fields carries structured data attached to a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging contract used across the service. Adapters exist
// for slog (stdout) and Fluent Bit; the multi-logger fans out to both.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a logger with the fields pre-attached.
	WithFields(fields Fields) LoggerPort
}
