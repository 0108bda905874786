//go:build fwdlistdebug

package list

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/fwdlist/lib/infra"
	"github.com/benz9527/fwdlist/lib/xlog"
)

func requireMisuse(t *testing.T, buf *bytes.Buffer, op string, fn func()) {
	t.Helper()
	buf.Reset()
	defer func() {
		r := recover()
		require.NotNil(t, r, op)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, ErrIteratorMisuse)
		require.True(t, infra.IsErrorStack(err))
		require.Contains(t, err.Error(), op)
		require.Contains(t, buf.String(), "[forward-list] precondition violated")
		require.Contains(t, buf.String(), op)
	}()
	fn()
}

func TestForwardList_DebugIteratorChecks(t *testing.T) {
	require.True(t, debugChecks)

	buf := &bytes.Buffer{}
	SetDebugLogger(xlog.NewXLogger(
		xlog.WithXLoggerWriteSyncer(zapcore.AddSync(buf)),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerLevel(xlog.LogLevelError),
	))

	flist := NewForwardList(1, 2, 3)

	requireMisuse(t, buf, "Iterator.Value", func() {
		_ = flist.End().Value()
	})
	requireMisuse(t, buf, "ConstIterator.Value", func() {
		_ = flist.CBeforeBegin().Value()
	})
	requireMisuse(t, buf, "Iterator.Set", func() {
		flist.BeforeBegin().Set(0)
	})
	requireMisuse(t, buf, "Iterator.Next", func() {
		_ = flist.End().Next()
	})
	requireMisuse(t, buf, "ConstIterator.Advance", func() {
		it := flist.CEnd()
		it.Advance()
	})
	requireMisuse(t, buf, "ForwardList.InsertAfter", func() {
		flist.InsertAfter(flist.End(), 4)
	})

	last := flist.Begin().Next().Next()
	requireMisuse(t, buf, "ForwardList.EraseAfter", func() {
		flist.EraseAfter(last)
	})

	stale := flist.Begin()
	flist.PopFront()
	requireMisuse(t, buf, "Iterator.Ref", func() {
		_ = stale.Ref()
	})

	cleared := flist.CBegin()
	flist.Assign(NewForwardList(7))
	requireMisuse(t, buf, "ConstIterator.Next", func() {
		_ = cleared.Next()
	})
	require.Equal(t, []int{7}, flist.ToSlice())
	require.NoError(t, flist.Validate())

	// Erasing elsewhere keeps unrelated iterators valid.
	flist = NewForwardList(1, 2, 3)
	first := flist.Begin()
	flist.EraseAfter(first)
	require.Equal(t, 1, first.Value())
	require.Equal(t, 3, first.Next().Value())
}

func TestForwardList_DebugValidateReleased(t *testing.T) {
	flist := NewForwardList(1, 2, 3)
	second := flist.head.next.next
	second.guard.release()
	err := flist.Validate()
	require.True(t, errors.Is(err, ErrForwardListReleasedRef))
}
