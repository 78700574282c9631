// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a gate protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended gate operation on g.
//
// A client connect is attempted with [Gate.TryConnectClient]: when no
// server is parked, or another client holds the gate, Advance returns
// iox.ErrWouldBlock and the suspension is unconsumed and may be retried.
// A closed gate resumes the protocol with a nil *Conn. Server connects and
// releases run to completion; a server connect therefore blocks for the
// whole session.
func Advance[S Server, R any](g *Gate[S], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	gop, ok := susp.Op().(gateDispatcher[S])
	if !ok {
		panic("rendezvous: unhandled effect in Advance")
	}
	v, err := gop.tryDispatchGate(g)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
