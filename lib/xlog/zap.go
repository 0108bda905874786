package xlog

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/fwdlist/lib/infra"
)

var _ XLogger = (*xLogger)(nil)

// xLogger is wrapper logger of Uber zap logger.
type xLogger struct {
	logger              atomic.Pointer[zap.Logger]
	dynamicLevelEnabler zap.AtomicLevel
	writer              LogOutWriterType
	encoder             LogEncoderType
}

// IncreaseLogLevel we can increase or decrease the log level concurrently.
func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *xLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Load().Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if es, ok := err.(infra.ErrorStack); ok && es != nil {
		newFields = append(newFields, zap.Inline(es))
	} else if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	l.logger.Load().Log(lvl, fmt.Sprintf(format, args...))
}

type loggerCfg struct {
	writerType  *LogOutWriterType
	ws          zapcore.WriteSyncer
	encoderType *LogEncoderType
	lvlEncoder  zapcore.LevelEncoder
	tsEncoder   zapcore.TimeEncoder
	level       *zapcore.Level
	name        string
	core        xLogCore
}

func (cfg *loggerCfg) apply(l *xLogger) {
	if cfg.writerType != nil {
		l.writer = *cfg.writerType
	} else {
		l.writer = StdOut
	}

	if cfg.encoderType != nil {
		l.encoder = *cfg.encoderType
	} else {
		l.encoder = JSON
	}

	if cfg.level != nil {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(*cfg.level)
	} else {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(getLogLevelOrDefault(os.Getenv("XLOG_LVL")))
	}

	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}

	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}

	if cfg.core == nil {
		cfg.core = &consoleCore{}
	}
}

type XLoggerOption func(*loggerCfg) error

func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	xl := &xLogger{}
	cfg.apply(xl)

	ws, stop := cfg.ws, func() error { return nil }
	if ws == nil {
		ws, stop = getOutWriterByType(xl.writer)
	}
	if stop != nil {
		runtime.SetFinalizer(xl, func(xl *xLogger) {
			_ = stop()
		})
	}

	core := cfg.core.build(
		xl.dynamicLevelEnabler,
		xl.encoder,
		ws,
		cfg.lvlEncoder,
		cfg.tsEncoder,
	)
	// Disable zap logger error stack.
	l := zap.New(
		core,
		zap.AddCallerSkip(1), // Use caller filename as service
		zap.AddCaller(),
	)
	if len(cfg.name) > 0 {
		l = l.Named(cfg.name)
	}
	xl.logger.Store(l)
	return xl
}

func WithXLoggerWriter(w LogOutWriterType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if w >= _writerMax {
			return infra.NewErrorStack("unknown xlogger writer")
		}
		cfg.writerType = &w
		return nil
	}
}

// WithXLoggerWriteSyncer overrides the writer type by a custom syncer.
func WithXLoggerWriteSyncer(ws zapcore.WriteSyncer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if ws == nil {
			return infra.NewErrorStack("nil xlogger write syncer")
		}
		cfg.ws = ws
		return nil
	}
}

func WithXLoggerEncoder(logEnc LogEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack("unknown xlogger encoder")
		}
		cfg.encoderType = &logEnc
		return nil
	}
}

func WithXLoggerLevel(lvl LogLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

// WithXLoggerName sets the "component" field.
func WithXLoggerName(name string) XLoggerOption {
	return func(cfg *loggerCfg) error {
		cfg.name = strings.TrimSpace(name)
		return nil
	}
}

func WithXLoggerConsoleCore() XLoggerOption {
	return func(cfg *loggerCfg) error {
		cfg.core = &consoleCore{}
		return nil
	}
}

func getLogLevelOrDefault(level string) zapcore.Level {
	if len(strings.TrimSpace(level)) == 0 {
		return zapcore.DebugLevel
	}

	switch strings.ToUpper(level) {
	case LogLevelInfo.String():
		return zapcore.InfoLevel
	case LogLevelWarn.String():
		return zapcore.WarnLevel
	case LogLevelError.String():
		return zapcore.ErrorLevel
	case LogLevelDebug.String():
		fallthrough
	default:
	}
	return zapcore.DebugLevel
}
