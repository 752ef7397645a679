package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/acdsyn/acdsyn/internal/config"
	"github.com/acdsyn/acdsyn/internal/redact"
)

// timeLayout is the timestamp format carried by every record.
const timeLayout = "2006-01-02 15:04:05"

// contextKey is the record field carrying the emitting subsystem's tag.
const contextKey = "context"

// Logger renders structured log events according to the configuration
// snapshot it was built from. It is safe for concurrent use: the sink is
// wrapped in a write lock so concurrent records never interleave.
type Logger struct {
	core zapcore.Core
	sink zapcore.WriteSyncer
	name string
	min  Level
}

// Option customizes Setup.
type Option func(*setupOptions)

type setupOptions struct {
	writer io.Writer
}

// WithWriter redirects records to w instead of standard output.
func WithWriter(w io.Writer) Option {
	return func(o *setupOptions) {
		o.writer = w
	}
}

// Setup builds the rendering pipeline from the logging section of the
// configuration snapshot. An unknown level name falls back to INFO with a
// warning on stderr, matching the permissive contract of the configuration
// defaults; every other input combination is valid.
func Setup(cfg config.LoggingConfig, opts ...Option) (*Logger, error) {
	var o setupOptions
	for _, opt := range opts {
		opt(&o)
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = LevelInfo
		fmt.Fprintf(os.Stderr,
			"logger: invalid log level %q configured, using default level INFO\n", cfg.Level)
	}

	var sink zapcore.WriteSyncer
	if o.writer != nil {
		sink = zapcore.AddSync(o.writer)
	} else {
		sink = zapcore.AddSync(os.Stdout)
	}
	sink = zapcore.Lock(sink)

	core := zapcore.NewCore(buildEncoder(cfg), sink, zap.NewAtomicLevelAt(level.zapLevel()))

	return &Logger{
		core: core,
		sink: sink,
		min:  level,
	}, nil
}

// buildEncoder selects the record encoder: single-line JSON when the
// configuration asks for structured json output, a human-readable console
// line otherwise.
func buildEncoder(cfg config.LoggingConfig) zapcore.Encoder {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	if cfg.Format == "json" && cfg.Structured {
		return zapcore.NewJSONEncoder(encCfg)
	}
	return zapcore.NewConsoleEncoder(encCfg)
}

// Named returns a logger whose records carry the given logger name;
// nested names join with a dot.
func (l *Logger) Named(name string) *Logger {
	clone := *l
	if l.name == "" {
		clone.name = name
	} else {
		clone.name = l.name + "." + name
	}
	return &clone
}

// Enabled reports whether a record at the given level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.min
}

// Log emits one record tagged with the given context when level clears the
// configured threshold; below the threshold the call is a no-op. Log never
// panics or returns an error to the caller: a field that cannot be
// serialized degrades to a per-field error entry, and a rendering failure
// degrades to a plain-text line carrying the message.
func (l *Logger) Log(level Level, ctx Context, msg string, fields ...zap.Field) {
	if !l.Enabled(level) {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			l.fallback(level, msg)
		}
	}()

	all := make([]zap.Field, 0, len(fields)+1)
	all = append(all, zap.String(contextKey, string(ctx)))
	all = append(all, fields...)

	entry := zapcore.Entry{
		Level:      level.zapLevel(),
		Time:       time.Now(),
		LoggerName: l.name,
		Message:    msg,
	}
	if ce := l.core.Check(entry, nil); ce != nil {
		ce.Write(all...)
	}
}

// fallback emits a minimal plain-text record so the log call is never
// silently dropped.
func (l *Logger) fallback(level Level, msg string) {
	fmt.Fprintf(l.sink, "%s\t%s\t%s\n", time.Now().Format(timeLayout), level, msg)
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(ctx Context, msg string, fields ...zap.Field) {
	l.Log(LevelDebug, ctx, msg, fields...)
}

// Info logs at INFO level.
func (l *Logger) Info(ctx Context, msg string, fields ...zap.Field) {
	l.Log(LevelInfo, ctx, msg, fields...)
}

// Warn logs at WARNING level.
func (l *Logger) Warn(ctx Context, msg string, fields ...zap.Field) {
	l.Log(LevelWarning, ctx, msg, fields...)
}

// Error logs at ERROR level.
func (l *Logger) Error(ctx Context, msg string, fields ...zap.Field) {
	l.Log(LevelError, ctx, msg, fields...)
}

// Critical logs at CRITICAL level.
func (l *Logger) Critical(ctx Context, msg string, fields ...zap.Field) {
	l.Log(LevelCritical, ctx, msg, fields...)
}

// LogError logs err at ERROR level with its text scrubbed of credential
// and path material before it reaches the sink.
func (l *Logger) LogError(ctx Context, err error, msg string, fields ...zap.Field) {
	all := make([]zap.Field, 0, len(fields)+1)
	all = append(all, zap.String("error", redact.Error(err)))
	all = append(all, fields...)
	l.Log(LevelError, ctx, msg, all...)
}

// Sync flushes any buffered records to the sink.
func (l *Logger) Sync() error {
	return l.sink.Sync()
}
