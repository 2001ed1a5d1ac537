package http

import (
	"fmt"

	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// leveledLogger feeds retryablehttp's own logs (retries, backoff) into a
// svix.Logger.
type leveledLogger struct {
	logger svix.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsOf(keysAndValues))
}

// fieldsOf turns alternating keys and values into a map. retryablehttp logs
// the *http.Request, which carries the Authorization header, so values that
// are not plain scalars are rendered by type only.
func fieldsOf(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])

		switch value := keysAndValues[i+1].(type) {
		case string, int, int64, bool, error, fmt.Stringer:
			fields[key] = value
		default:
			fields[key] = fmt.Sprintf("%T", value)
		}
	}

	return fields
}
