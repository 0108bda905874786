package list

import (
	"errors"
)

// Note that the forward list is not thread safe.
//
// Iterators are weak references into the node chain. They are not
// invalidated by the list: an iterator whose node was erased, popped or
// cleared (including by Assign), or an iterator past the end or before the
// beginning, must not be dereferenced or advanced. Doing so is unchecked in
// regular builds. Build with the "fwdlistdebug" tag to have every iterator
// operation validated; a violation is logged and panics with an error
// wrapping ErrIteratorMisuse.

var ErrIteratorMisuse = errors.New("[forward-list] iterator misuse")

// Position is a place in a forward list. Both Iterator and ConstIterator
// are positions, so they can be compared with each other and passed to
// InsertAfter and EraseAfter interchangeably.
type Position[T any] interface {
	nodeRef() *forwardListNode[T]
	guardRef() iterGuard
}

// ForwardIterator is the capability set shared by both iterator flavors.
// I is the iterator type itself, so Next keeps the concrete flavor.
type ForwardIterator[T any, I any] interface {
	Position[T]
	// Next returns a copy advanced by one node. The receiver is untouched.
	Next() I
	// Value returns the element at the position.
	Value() T
	// Equal reports whether both positions refer to the same node.
	// All past-the-end positions are equal.
	Equal(other Position[T]) bool
	// IsEnd reports whether the position is past the last element.
	IsEnd() bool
}

// BasicForwardList is the forward list interface.
type BasicForwardList[T any] interface {
	Len() int64
	IsEmpty() bool
	// Front returns the first value and true, or the zero value and false if the list is empty.
	Front() (T, bool)
	// PushFront inserts a new element with value v at the front of the list.
	PushFront(v T)
	// PopFront removes the first element. It is a no-op on an empty list.
	PopFront()
	// InsertAfter inserts v right after pos and returns the iterator to the new element.
	// The pos may be the before-begin position but not the past-the-end one.
	InsertAfter(pos Position[T], v T) Iterator[T]
	// EraseAfter removes the element right after pos and returns the iterator
	// to the element following the removed one, which may be the past-the-end one.
	// The element after pos must exist.
	EraseAfter(pos Position[T]) Iterator[T]
	// Clear removes all elements.
	Clear()
	Begin() Iterator[T]
	End() Iterator[T]
	BeforeBegin() Iterator[T]
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]
	CBeforeBegin() ConstIterator[T]
	// Foreach traverses the list and calls fn for each value until fn returns false.
	Foreach(fn func(idx int64, v T) bool)
	ToSlice() []T
	// Validate walks the node chain and reports every broken invariant.
	Validate() error
}
