package xlog

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

func (lvl LogLevel) zapLevel() zapcore.Level {
	switch lvl {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
	}
	return zapcore.DebugLevel
}

func (lvl LogLevel) String() string {
	return string(lvl)
}

type LogEncoderType uint8

const (
	JSON LogEncoderType = iota
	PlainText
	_encMax
)

type LogOutWriterType uint8

const (
	StdOut LogOutWriterType = iota
	StdErr
	_writerMax
)

const coreKeyIgnored = ""

var encoderMap = map[LogEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
	JSON:      zapcore.NewJSONEncoder,
	PlainText: zapcore.NewConsoleEncoder,
}

func getEncoderByType(typ LogEncoderType) func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	enc, ok := encoderMap[typ]
	if !ok {
		return zapcore.NewJSONEncoder
	}
	return enc
}

// getOutWriterByType returns the writer and its stop function, if any.
func getOutWriterByType(typ LogOutWriterType) (zapcore.WriteSyncer, func() error) {
	switch typ {
	case StdErr:
		// Misuse reports are usually followed by a panic, so stderr is not buffered.
		return zapcore.Lock(os.Stderr), nil
	case StdOut:
		ws := &zapcore.BufferedWriteSyncer{WS: os.Stdout, Size: 512 * 1024, FlushInterval: 30 * time.Second}
		return ws, ws.Stop
	default:
	}
	return zapcore.Lock(os.Stdout), nil
}

type xLogCore interface {
	build(
		lvl zapcore.LevelEnabler,
		encoder LogEncoderType,
		ws zapcore.WriteSyncer,
		lvlEnc zapcore.LevelEncoder,
		tsEnc zapcore.TimeEncoder,
	) zapcore.Core
}

type XLogger interface {
	IncreaseLogLevel(level zapcore.Level)
	Level() string
	Sync() error

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)

	// ErrorStack is used to print all errors throws stacks.
	// Instead of using zap default error stack, it can print
	// the error stack in JSON format. It is easy for us to
	// use fluentd, fluentbit or other log aggregator to
	// parse the error stack.
	ErrorStack(err error, msg string, fields ...zap.Field)

	Logf(lvl zapcore.Level, format string, args ...any)
}
