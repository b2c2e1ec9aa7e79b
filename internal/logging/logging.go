package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"
	"github.com/rs/zerolog"
)

const ApplicationName = "paystakk"

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

// the values actually don't matter, the type alone will guarantee no package gets at these context values
const (
	LoggerKey key = iota
	RequestIdKey
)

var output io.Writer = os.Stdout

// Setup configures the global severity and the backend used by go-autumn-logging,
// which the circuit breaker and the command line tool log through.
//
// style is either "plain" or "json".
func Setup(severity string, style string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(severity))
	if err != nil {
		return fmt.Errorf("invalid log severity %q: %w", severity, err)
	}

	if style == "json" {
		auzerolog.SetupJsonLogging(ApplicationName)
		output = os.Stdout
	} else {
		auzerolog.SetupPlaintextLogging()
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(level)
	defaultLogger = nil
	return nil
}

var defaultLogger Logger

// NoCtx is only for code that really does not belong to a call chain.
// Otherwise be a good citizen and pass down the context, so log output
// can be associated with the request being processed.
func NoCtx() Logger {
	if defaultLogger == nil {
		defaultLogger = NewLogger()
	}
	return defaultLogger
}

func LoggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return NoCtx()
	}

	logger, ok := ctx.Value(LoggerKey).(Logger)
	if !ok {
		return NoCtx()
	}

	return logger
}

// WithRequestID returns a logger that tags every line with the request id.
func WithRequestID(ctx context.Context, reqID string) Logger {
	logger := zerolog.New(output).
		With().
		Str("App", ApplicationName).
		Str("RequestId", reqID).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

// CreateContextWithLoggerForRequestId stores both the request id and a matching logger in the context.
func CreateContextWithLoggerForRequestId(ctx context.Context, reqID string) context.Context {
	ctx = context.WithValue(ctx, RequestIdKey, reqID)
	return context.WithValue(ctx, LoggerKey, WithRequestID(ctx, reqID))
}

// ContextWithLogger is mostly useful in tests, to silence or capture log output.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	reqID, ok := ctx.Value(RequestIdKey).(string)
	return reqID, ok && reqID != ""
}

func NewLogger() Logger {
	logger := zerolog.New(output).
		With().
		Str("App", ApplicationName).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}
