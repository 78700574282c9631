// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"code.hybscloud.com/kont"
)

// gateHandler implements kont.Handler for gate effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type gateHandler[S Server, R any] struct {
	g *Gate[S]
}

// Dispatch implements kont.Handler via structural interface assertion.
// Gate operations block the evaluating goroutine.
func (h gateHandler[S, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	gop, ok := op.(gateDispatcher[S])
	if !ok {
		panic("rendezvous: unhandled effect in gateHandler")
	}
	return gop.dispatchGate(h.g), true
}

// Exec runs a Cont-world protocol of gate operations against g.
// Each operation blocks like its method counterpart on [Gate].
func Exec[S Server, R any](g *Gate[S], protocol kont.Eff[R]) R {
	h := gateHandler[S, R]{g: g}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world protocol of gate operations against g.
// Each operation blocks like its method counterpart on [Gate].
func ExecExpr[S Server, R any](g *Gate[S], protocol kont.Expr[R]) R {
	h := gateHandler[S, R]{g: g}
	return kont.HandleExpr(protocol, h)
}
