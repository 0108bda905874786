package infra

import (
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

const maxStackDepth = 32

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) file() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(frame.pc())
	return f
}

func (frame Frame) line() int {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(frame.pc())
	return l
}

func (frame Frame) name() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - verbose, equivalent to %s:%d
// %+s - function name and full path, separated by \n\t
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.line()))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

// MarshalText renders "<func> <file>:<line>".
func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(frame.file())
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(frame.line()))
	return []byte(builder.String()), nil
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

// ErrorStack is an error carrying the call frames captured where it was built.
// It is a zap object, so the logger can inline the frames as structured fields
// instead of the zap default plain text stacktrace.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Unwrap() error
	Frames() []Frame
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	cause  error
	msg    string
	frames []Frame
}

func callers(skip int) []Frame {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, Frame(pcs[i]))
	}
	return frames
}

func NewErrorStack(msg string) error {
	return &errorStack{
		msg:    msg,
		frames: callers(3),
	}
}

// WrapErrorStack attaches the current frames to err.
// A nil err stays nil.
func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		cause:  err,
		frames: callers(3),
	}
}

func WrapErrorStackWithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &errorStack{
		cause:  err,
		msg:    msg,
		frames: callers(3),
	}
}

func (es *errorStack) Error() string {
	switch {
	case es.cause == nil:
		return es.msg
	case len(es.msg) == 0:
		return es.cause.Error()
	}
	return es.msg + ": " + es.cause.Error()
}

func (es *errorStack) Unwrap() error {
	return es.cause
}

func (es *errorStack) Frames() []Frame {
	return es.frames
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	return enc.AddArray("errorStack", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, frame := range es.frames {
			text, _ := frame.MarshalText()
			arr.AppendByteString(text)
		}
		return nil
	}))
}

// IsErrorStack reports whether any error in err's chain carries frames.
func IsErrorStack(err error) bool {
	var es ErrorStack
	return errors.As(err, &es)
}
