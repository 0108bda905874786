package xlog

import (
	"go.uber.org/zap/zapcore"
)

var _ xLogCore = (*consoleCore)(nil)

type consoleCore struct{}

func (cc *consoleCore) build(
	lvlEnabler zapcore.LevelEnabler,
	encoder LogEncoderType,
	ws zapcore.WriteSyncer,
	lvlEnc zapcore.LevelEncoder,
	tsEnc zapcore.TimeEncoder,
) zapcore.Core {
	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   lvlEnc,
		TimeKey:       "ts",
		EncodeTime:    tsEnc,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	return zapcore.NewCore(getEncoderByType(encoder)(config), ws, lvlEnabler)
}
