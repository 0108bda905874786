package list

var _ BasicForwardList[struct{}] = (*ForwardList[struct{}])(nil) // Type check assertion

// ForwardList is a singly linked list with value semantics.
// The zero value is an empty list ready to use.
// A ForwardList must not be copied by value after first use, use Clone
// or Assign instead.
type ForwardList[T any] struct {
	// The sentinel. Its next is the first element; it lives as long as the
	// list so inserting or erasing at the front is the same as anywhere else.
	head forwardListNode[T]
	len  int64
}

// NewForwardList builds a list holding values in the given order.
func NewForwardList[T any](values ...T) *ForwardList[T] {
	l := &ForwardList[T]{}
	tail := &l.head
	for i := 0; i < len(values); i++ {
		tail.next = newForwardListNode(values[i], nil)
		tail = tail.next
	}
	l.len = int64(len(values))
	return l
}

// Len is maintained by every mutation, never counted.
func (l *ForwardList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *ForwardList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *ForwardList[T]) Front() (T, bool) {
	if l == nil || l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

func (l *ForwardList[T]) PushFront(v T) {
	l.head.next = newForwardListNode(v, l.head.next)
	l.len++
}

func (l *ForwardList[T]) PopFront() {
	if l == nil || l.head.next == nil {
		return
	}
	l.unlinkAfter(&l.head)
}

func (l *ForwardList[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	at := pos.nodeRef()
	checkAnchor("ForwardList.InsertAfter", at, pos.guardRef())
	// The node is fully built before it is linked, so a failed allocation
	// leaves the list untouched.
	at.next = newForwardListNode(v, at.next)
	l.len++
	return Iterator[T]{ref: at.next}
}

func (l *ForwardList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	at := pos.nodeRef()
	checkEraseAfter("ForwardList.EraseAfter", at, pos.guardRef())
	return Iterator[T]{ref: l.unlinkAfter(at)}
}

// unlinkAfter releases at.next and returns the node that follows at now.
func (l *ForwardList[T]) unlinkAfter(at *forwardListNode[T]) *forwardListNode[T] {
	victim := at.next
	at.next = victim.next
	victim.release()
	l.len--
	return at.next
}

// Clear releases the nodes one by one. Nothing is torn down recursively,
// so long chains are safe.
func (l *ForwardList[T]) Clear() {
	if l == nil {
		return
	}
	for l.head.next != nil {
		victim := l.head.next
		l.head.next = victim.next
		victim.release()
	}
	l.len = 0
}

func (l *ForwardList[T]) Begin() Iterator[T] {
	if l == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{ref: l.head.next}
}

// End is the past-the-end position shared by every list.
func (l *ForwardList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin refers to the sentinel. It must never be dereferenced; it is
// the anchor for InsertAfter and EraseAfter at the front.
func (l *ForwardList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{ref: &l.head, guard: beforeBeginGuard()}
}

func (l *ForwardList[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *ForwardList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *ForwardList[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

func (l *ForwardList[T]) Foreach(fn func(idx int64, v T) bool) {
	if l == nil || fn == nil {
		return
	}
	idx := int64(0)
	for n := l.head.next; n != nil; n = n.next {
		if !fn(idx, n.value) {
			return
		}
		idx++
	}
}

func (l *ForwardList[T]) ToSlice() []T {
	res := make([]T, 0, l.Len())
	l.Foreach(func(_ int64, v T) bool {
		res = append(res, v)
		return true
	})
	return res
}

// Clone returns an independent copy holding equal values in the same order.
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	return l.CloneWith(nil)
}

// CloneWith is Clone with copyFn producing each copied value, e.g. a deep
// copy of pointer-like elements. A nil copyFn copies by assignment.
// If copyFn panics, the partial copy is dropped and l is untouched.
func (l *ForwardList[T]) CloneWith(copyFn func(T) T) *ForwardList[T] {
	dst := &ForwardList[T]{}
	if l == nil {
		return dst
	}
	var (
		tail = &dst.head
		size = int64(0)
	)
	for n := l.head.next; n != nil; n = n.next {
		v := n.value
		if copyFn != nil {
			v = copyFn(v)
		}
		tail.next = newForwardListNode(v, nil)
		tail = tail.next
		size++
	}
	dst.len = size
	return dst
}

// Assign replaces the content of l by a copy of src.
func (l *ForwardList[T]) Assign(src *ForwardList[T]) {
	l.AssignWith(src, nil)
}

// AssignWith replaces the content of l by a copy of src made by copyFn.
// The copy is completed aside first and then swapped in, so a panic in
// copyFn leaves l exactly as it was. Self assignment is a no-op.
func (l *ForwardList[T]) AssignWith(src *ForwardList[T], copyFn func(T) T) {
	if l == src {
		return
	}
	tmp := src.CloneWith(copyFn)
	l.Swap(tmp)
	// tmp owns the replaced chain now.
	tmp.Clear()
}

// Swap exchanges the contents of l and other. Only the first links and the
// lengths move, no node is copied or allocated.
// Iterators keep referring to their nodes, now owned by the other list,
// except the before-begin ones, which stay with their list.
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	if l == other {
		return
	}
	l.head.next, other.head.next = other.head.next, l.head.next
	l.len, other.len = other.len, l.len
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *ForwardList[T]) {
	a.Swap(b)
}
