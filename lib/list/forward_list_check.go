package list

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/fwdlist/lib/infra"
)

var (
	ErrForwardListCycle       = errors.New("[forward-list] node chain is cyclic")
	ErrForwardListLenMismatch = errors.New("[forward-list] len mismatches the reachable nodes")
	ErrForwardListNegativeLen = errors.New("[forward-list] negative len")
	ErrForwardListReleasedRef = errors.New("[forward-list] released node is still linked")
)

// Validate reports every broken invariant of l, combined, or nil.
// Released node tracking only exists in fwdlistdebug builds.
func (l *ForwardList[T]) Validate() error {
	if l == nil {
		return nil
	}

	var merr error
	if l.len < 0 {
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(ErrForwardListNegativeLen,
			fmt.Sprintf("len %d", l.len)))
	}

	if hasCycle(l.head.next) {
		// Nothing else can be counted on a cyclic chain.
		return multierr.Append(merr, infra.WrapErrorStack(ErrForwardListCycle))
	}

	var (
		reachable = int64(0)
		released  = int64(0)
	)
	for n := l.head.next; n != nil; n = n.next {
		reachable++
		if n.guard.released() {
			released++
		}
	}
	if reachable != l.len {
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(ErrForwardListLenMismatch,
			fmt.Sprintf("len %d, reachable %d", l.len, reachable)))
	}
	if released > 0 {
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(ErrForwardListReleasedRef,
			fmt.Sprintf("%d released nodes", released)))
	}
	return merr
}

// hasCycle is Floyd's tortoise and hare.
func hasCycle[T any](first *forwardListNode[T]) bool {
	slow, fast := first, first
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
		if slow == fast {
			return true
		}
	}
	return false
}
