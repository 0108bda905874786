package list

import (
	"container/list"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type forwardListOp uint8

const (
	opPushFront forwardListOp = iota
	opPopFront
	opInsertAfter
	opEraseAfter
	opClear
	opAssign
	_opMax
)

// positionAfter returns the position i steps after before-begin.
func positionAfter[T any](l *ForwardList[T], i int) Iterator[T] {
	it := l.BeforeBegin()
	for ; i > 0; i-- {
		it.Advance()
	}
	return it
}

func TestForwardList_AgainstGodsSinglyLinkedList(t *testing.T) {
	r := rand.New(rand.NewSource(9527))
	flist := &ForwardList[int]{}
	ref := singlylinkedlist.New()

	checkItems := func() {
		require.Equal(t, int64(ref.Size()), flist.Len())
		values := lo.Map(ref.Values(), func(v any, _ int) int {
			return v.(int)
		})
		require.Equal(t, values, flist.ToSlice())
		require.NoError(t, flist.Validate())
	}

	for round := 0; round < 5000; round++ {
		v := r.Intn(1000)
		switch op := forwardListOp(r.Intn(int(_opMax))); op {
		case opPushFront:
			flist.PushFront(v)
			ref.Prepend(v)
		case opPopFront:
			flist.PopFront()
			if ref.Size() > 0 {
				ref.Remove(0)
			}
		case opInsertAfter:
			// 0 is before-begin, Size() is the last element.
			at := r.Intn(ref.Size() + 1)
			it := flist.InsertAfter(positionAfter(flist, at), v)
			require.Equal(t, v, it.Value())
			ref.Insert(at, v)
		case opEraseAfter:
			if ref.Size() == 0 {
				continue
			}
			at := r.Intn(ref.Size())
			it := flist.EraseAfter(positionAfter(flist, at))
			ref.Remove(at)
			if at == ref.Size() {
				require.True(t, it.Equal(flist.End()))
			} else {
				got, _ := ref.Get(at)
				require.Equal(t, got, it.Value())
			}
		case opClear:
			// Keep the lists growing most of the time.
			if r.Intn(10) != 0 {
				continue
			}
			flist.Clear()
			ref.Clear()
		case opAssign:
			cloned := flist.Clone()
			cloned.PushFront(v)
			cloned.PopFront()
			flist.Assign(cloned)
		}
		checkItems()
	}
}

func TestForwardList_AgainstSDKList(t *testing.T) {
	flist := NewForwardList[int]()
	sdk := list.New()
	for _, v := range lo.Range(64) {
		flist.PushFront(v)
		sdk.PushFront(v)
	}
	// Drop every second element.
	it, e := flist.BeforeBegin(), sdk.Front()
	for !it.Next().IsEnd() {
		flist.EraseAfter(it)
		next := e.Next()
		sdk.Remove(e)
		if e = next; it.Next().IsEnd() {
			break
		}
		it.Advance()
		e = e.Next()
	}
	require.Equal(t, 32, sdk.Len())
	require.Equal(t, int64(sdk.Len()), flist.Len())

	flistItr := flist.CBegin()
	for sdkItr := sdk.Front(); sdkItr != nil; sdkItr = sdkItr.Next() {
		require.Equal(t, sdkItr.Value, flistItr.Value())
		flistItr.Advance()
	}
	require.True(t, flistItr.IsEnd())
}

func BenchmarkForwardList_PushFront(b *testing.B) {
	flist := &ForwardList[int]{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flist.PushFront(i)
	}
	b.ReportAllocs()
}

func BenchmarkSDKLinkedList_PushFront(b *testing.B) {
	dlist := list.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dlist.PushFront(i)
	}
	b.ReportAllocs()
}

func BenchmarkForwardList_InsertAfter(b *testing.B) {
	flist := NewForwardList(0)
	it := flist.Begin()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it = flist.InsertAfter(it, i)
	}
	b.StopTimer()
	b.ReportAllocs()
	require.Equal(b, int64(b.N+1), flist.Len())
}

func BenchmarkForwardList_Clone(b *testing.B) {
	flist := NewForwardList(lo.Range(1024)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flist.Clone()
	}
	b.ReportAllocs()
}
