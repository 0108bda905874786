//go:build !fwdlistdebug

package list

const debugChecks = false

type nodeGuard struct{}

func (g *nodeGuard) release()       {}
func (g *nodeGuard) released() bool { return false }

type iterGuard struct{}

func beforeBeginGuard() iterGuard { return iterGuard{} }

func (g iterGuard) advanced() iterGuard { return g }

func checkDeref[T any](string, *forwardListNode[T], iterGuard)      {}
func checkAdvance[T any](string, *forwardListNode[T], iterGuard)    {}
func checkAnchor[T any](string, *forwardListNode[T], iterGuard)     {}
func checkEraseAfter[T any](string, *forwardListNode[T], iterGuard) {}
