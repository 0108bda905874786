package list

var (
	_ ForwardIterator[struct{}, Iterator[struct{}]]      = Iterator[struct{}]{}      // Type check assertion
	_ ForwardIterator[struct{}, ConstIterator[struct{}]] = ConstIterator[struct{}]{} // Type check assertion
)

// Iterator is a mutable position in a forward list.
// The zero value is the past-the-end position.
type Iterator[T any] struct {
	guard iterGuard
	ref   *forwardListNode[T]
}

func (it Iterator[T]) nodeRef() *forwardListNode[T] { return it.ref }
func (it Iterator[T]) guardRef() iterGuard          { return it.guard }

// Value returns a copy of the element at it.
func (it Iterator[T]) Value() T {
	checkDeref("Iterator.Value", it.ref, it.guard)
	return it.ref.value
}

// Ref returns the address of the element at it, valid until the element is removed.
func (it Iterator[T]) Ref() *T {
	checkDeref("Iterator.Ref", it.ref, it.guard)
	return &it.ref.value
}

func (it Iterator[T]) Set(v T) {
	checkDeref("Iterator.Set", it.ref, it.guard)
	it.ref.value = v
}

// Advance moves it to the successor in place and returns it for chaining.
func (it *Iterator[T]) Advance() *Iterator[T] {
	checkAdvance("Iterator.Advance", it.ref, it.guard)
	it.ref = it.ref.next
	it.guard = it.guard.advanced()
	return it
}

func (it Iterator[T]) Next() Iterator[T] {
	checkAdvance("Iterator.Next", it.ref, it.guard)
	return Iterator[T]{ref: it.ref.next, guard: it.guard.advanced()}
}

func (it Iterator[T]) Equal(other Position[T]) bool {
	return other != nil && it.ref == other.nodeRef()
}

func (it Iterator[T]) IsEnd() bool {
	return it.ref == nil
}

// Const converts it to the read-only flavor at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{ref: it.ref, guard: it.guard}
}

// ConstIterator is a read-only position in a forward list.
// The zero value is the past-the-end position.
type ConstIterator[T any] struct {
	guard iterGuard
	ref   *forwardListNode[T]
}

func (it ConstIterator[T]) nodeRef() *forwardListNode[T] { return it.ref }
func (it ConstIterator[T]) guardRef() iterGuard          { return it.guard }

func (it ConstIterator[T]) Value() T {
	checkDeref("ConstIterator.Value", it.ref, it.guard)
	return it.ref.value
}

func (it *ConstIterator[T]) Advance() *ConstIterator[T] {
	checkAdvance("ConstIterator.Advance", it.ref, it.guard)
	it.ref = it.ref.next
	it.guard = it.guard.advanced()
	return it
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	checkAdvance("ConstIterator.Next", it.ref, it.guard)
	return ConstIterator[T]{ref: it.ref.next, guard: it.guard.advanced()}
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return other != nil && it.ref == other.nodeRef()
}

func (it ConstIterator[T]) IsEnd() bool {
	return it.ref == nil
}

// Distance counts the steps from first until it equals last.
// The last must be reachable from first.
func Distance[T any, I ForwardIterator[T, I]](first I, last Position[T]) int64 {
	n := int64(0)
	for it := first; !it.Equal(last); it = it.Next() {
		n++
	}
	return n
}

// equalRange reports whether [first1, last1) and [first2, last2) have the
// same length and pairwise equal elements.
func equalRange[T any, I ForwardIterator[T, I], J ForwardIterator[T, J]](
	first1 I, last1 Position[T],
	first2 J, last2 Position[T],
	eq func(a, b T) bool,
) bool {
	it1, it2 := first1, first2
	for ; !it1.Equal(last1) && !it2.Equal(last2); it1, it2 = it1.Next(), it2.Next() {
		if !eq(it1.Value(), it2.Value()) {
			return false
		}
	}
	return it1.Equal(last1) && it2.Equal(last2)
}

// lexicographicalLess reports whether [first1, last1) orders before [first2, last2).
// A strict prefix orders before the longer range.
func lexicographicalLess[T any, I ForwardIterator[T, I], J ForwardIterator[T, J]](
	first1 I, last1 Position[T],
	first2 J, last2 Position[T],
	less func(a, b T) bool,
) bool {
	it1, it2 := first1, first2
	for ; !it1.Equal(last1) && !it2.Equal(last2); it1, it2 = it1.Next(), it2.Next() {
		a, b := it1.Value(), it2.Value()
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
	}
	return it1.Equal(last1) && !it2.Equal(last2)
}

// lexicographicalCompare is the three-way form of lexicographicalLess.
func lexicographicalCompare[T any, I ForwardIterator[T, I], J ForwardIterator[T, J]](
	first1 I, last1 Position[T],
	first2 J, last2 Position[T],
	cmp func(a, b T) int,
) int {
	it1, it2 := first1, first2
	for ; !it1.Equal(last1) && !it2.Equal(last2); it1, it2 = it1.Next(), it2.Next() {
		if res := cmp(it1.Value(), it2.Value()); res != 0 {
			return res
		}
	}
	switch end1, end2 := it1.Equal(last1), it2.Equal(last2); {
	case end1 && end2:
		return 0
	case end1:
		return -1
	}
	return 1
}
