//go:build fwdlistdebug

package list

import (
	"go.uber.org/zap"

	"github.com/benz9527/fwdlist/lib/infra"
)

const debugChecks = true

type nodeGuard struct {
	dead bool
}

func (g *nodeGuard) release()       { g.dead = true }
func (g *nodeGuard) released() bool { return g.dead }

type iterGuard struct {
	beforeBegin bool
}

func beforeBeginGuard() iterGuard { return iterGuard{beforeBegin: true} }

func (g iterGuard) advanced() iterGuard { return iterGuard{} }

func reportMisuse(op, reason string) {
	err := infra.WrapErrorStackWithMessage(ErrIteratorMisuse, op+": "+reason)
	debugLogger().ErrorStack(err, "[forward-list] precondition violated",
		zap.String("op", op),
		zap.String("reason", reason),
	)
	panic(err)
}

func checkLive[T any](op string, n *forwardListNode[T]) {
	if n.guard.released() {
		reportMisuse(op, "position refers to a released node")
	}
}

func checkDeref[T any](op string, n *forwardListNode[T], g iterGuard) {
	switch {
	case n == nil:
		reportMisuse(op, "dereference past the end")
	case g.beforeBegin:
		reportMisuse(op, "dereference before the beginning")
	}
	checkLive(op, n)
}

func checkAdvance[T any](op string, n *forwardListNode[T], _ iterGuard) {
	if n == nil {
		reportMisuse(op, "advance past the end")
	}
	checkLive(op, n)
}

func checkAnchor[T any](op string, n *forwardListNode[T], _ iterGuard) {
	if n == nil {
		reportMisuse(op, "anchor is past the end")
	}
	checkLive(op, n)
}

func checkEraseAfter[T any](op string, n *forwardListNode[T], g iterGuard) {
	checkAnchor(op, n, g)
	if n.next == nil {
		reportMisuse(op, "no element after the anchor")
	}
}
