package list

type forwardListNode[T any] struct {
	guard nodeGuard // zero size unless built with fwdlistdebug
	next  *forwardListNode[T]
	value T // The type of value may be a large size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newForwardListNode[T any](v T, next *forwardListNode[T]) *forwardListNode[T] {
	return &forwardListNode[T]{
		value: v,
		next:  next,
	}
}

// release detaches the node from the chain. The caller must have
// unlinked it from its predecessor already.
func (n *forwardListNode[T]) release() {
	var zero T
	// avoid memory leaks
	n.next = nil
	n.value = zero
	n.guard.release()
}
