// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"errors"

	"code.hybscloud.com/kont"
)

// gateDispatcher is the structural interface for gate operations.
// dispatchGate blocks until the operation completes. tryDispatchGate
// returns iox.ErrWouldBlock when the operation cannot start now.
type gateDispatcher[S Server] interface {
	dispatchGate(g *Gate[S]) kont.Resumed
	tryDispatchGate(g *Gate[S]) (kont.Resumed, error)
}

// ConnectClient is the effect operation for a client connect.
// Perform(ConnectClient[S]{}) resumes with the *Conn[S], or nil if the
// gate closed before a server bound.
type ConnectClient[S Server] struct {
	kont.Phantom[*Conn[S]]
}

func (ConnectClient[S]) dispatchGate(g *Gate[S]) kont.Resumed {
	return g.ConnectClient()
}

// tryDispatchGate resumes with nil on a closed gate, matching the
// blocking form.
func (ConnectClient[S]) tryDispatchGate(g *Gate[S]) (kont.Resumed, error) {
	c, err := g.TryConnectClient()
	if errors.Is(err, ErrClosed) {
		return (*Conn[S])(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ConnectServer is the effect operation for a server connect.
// Perform(ConnectServer[S]{Server: s}) offers s to the next client and
// resumes with the result of [Gate.ConnectServer] once the session ends.
type ConnectServer[S Server] struct {
	kont.Phantom[bool]
	Server S
}

func (op ConnectServer[S]) dispatchGate(g *Gate[S]) kont.Resumed {
	return g.ConnectServer(op.Server)
}

// tryDispatchGate blocks for the whole session: a server has nothing
// to do until its client releases.
func (op ConnectServer[S]) tryDispatchGate(g *Gate[S]) (kont.Resumed, error) {
	return g.ConnectServer(op.Server), nil
}

// Release is the effect operation for releasing a connection.
// Perform(Release[S]{Conn: c}) runs c.Release. A nil Conn is a no-op.
type Release[S Server] struct {
	kont.Phantom[struct{}]
	Conn *Conn[S]
}

func (op Release[S]) dispatchGate(*Gate[S]) kont.Resumed {
	if op.Conn != nil {
		op.Conn.Release()
	}
	return struct{}{}
}

func (op Release[S]) tryDispatchGate(g *Gate[S]) (kont.Resumed, error) {
	return op.dispatchGate(g), nil
}
