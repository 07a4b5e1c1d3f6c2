//go:generate mockgen -package=mocks -destination=../../mocks/mock_logger.go github.com/rotorsim/rotorsim/pkg/logging Logger

package logging

// Logger is the structured logger used throughout the module. Keys and values
// alternate, as with zap's sugared logger.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
}
