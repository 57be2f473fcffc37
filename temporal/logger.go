// temporal/logger.go
package temporal

import "log"

// TemporalLogger adapts Go's standard logger to the SDK's logger interface.
type TemporalLogger struct {
	logger *log.Logger
}

func NewTemporalLogger(l *log.Logger) *TemporalLogger {
	return &TemporalLogger{logger: l}
}

func (l *TemporalLogger) Debug(msg string, keyvals ...interface{}) {
	l.logger.Printf("DEBUG: %s %v\n", msg, keyvals)
}

func (l *TemporalLogger) Info(msg string, keyvals ...interface{}) {
	l.logger.Printf("INFO: %s %v\n", msg, keyvals)
}

func (l *TemporalLogger) Warn(msg string, keyvals ...interface{}) {
	l.logger.Printf("WARN: %s %v\n", msg, keyvals)
}

func (l *TemporalLogger) Error(msg string, keyvals ...interface{}) {
	l.logger.Printf("ERROR: %s %v\n", msg, keyvals)
}
