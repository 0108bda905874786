package infra

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.Frame))
	}
	require.True(t, strings.HasPrefix(fmt.Sprintf("%v", initPC), "err_stack_test.go:"))
	require.True(t, strings.HasPrefix(fmt.Sprintf("%+s", initPC), "github.com/benz9527/fwdlist/lib/infra.init\n\t"))
}

func TestFrameMarshalText(t *testing.T) {
	_bytes, err := initPC.MarshalText()
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(_bytes, []byte("github.com/benz9527/fwdlist/lib/infra.init ")))

	_bytes, err = Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, []byte("unknownFrame"), _bytes)
}

func TestErrorStack(t *testing.T) {
	err := NewErrorStack("[forward-list] broken")
	require.Error(t, err)
	require.Equal(t, "[forward-list] broken", err.Error())
	require.True(t, IsErrorStack(err))

	es := err.(ErrorStack)
	require.NotEmpty(t, es.Frames())
	require.Nil(t, es.Unwrap())
	found := false
	for _, frame := range es.Frames() {
		if fmt.Sprintf("%n", frame) == "TestErrorStack" {
			found = true
			break
		}
	}
	require.True(t, found)

	sentinel := errors.New("sentinel")
	wrapped := WrapErrorStackWithMessage(sentinel, "erase after")
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "erase after: sentinel", wrapped.Error())
	require.Equal(t, "sentinel", WrapErrorStack(sentinel).Error())

	require.Nil(t, WrapErrorStack(nil))
	require.Nil(t, WrapErrorStackWithMessage(nil, "ignored"))
	require.False(t, IsErrorStack(sentinel))
}

func TestErrorStackMarshalLogObject(t *testing.T) {
	err := WrapErrorStackWithMessage(errors.New("cause"), "msg")
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, err.(ErrorStack).MarshalLogObject(enc))
	require.Equal(t, "msg: cause", enc.Fields["error"])
	stack, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, stack)
}
