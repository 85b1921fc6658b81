package lockstep

import "github.com/rs/zerolog"

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Debug(string, map[string]interface{}) {}
func (NoopLogger) Info(string, map[string]interface{})  {}
func (NoopLogger) Warn(string, map[string]interface{})  {}
func (NoopLogger) Error(string, map[string]interface{}) {}

// ZerologLogger adapts a zerolog.Logger to Logger.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger wraps log.
func NewZerologLogger(log zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: log}
}

// Debug logs at debug level.
func (l *ZerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

// Info logs at info level.
func (l *ZerologLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

// Warn logs at warn level.
func (l *ZerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

// Error logs at error level. An "error" field holding an error is attached
// with zerolog's Err so it renders consistently.
func (l *ZerologLogger) Error(msg string, fields map[string]interface{}) {
	event := l.log.Error()

	if err, ok := fields["error"].(error); ok {
		rest := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			if k != "error" {
				rest[k] = v
			}
		}

		event = event.Err(err)
		fields = rest
	}

	event.Fields(fields).Msg(msg)
}
