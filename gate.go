// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"errors"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// ErrClosed is returned by non-blocking operations on a closed gate.
var ErrClosed = errors.New("rendezvous: gate closed")

// noCopy may be embedded into structs which must not be copied
// after first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Gate pairs client goroutines with server goroutines one at a time.
//
// A client calls [Gate.ConnectClient] and blocks until a server calls
// [Gate.ConnectServer]. The client then owns a [Conn] bound to that server
// until it calls [Conn.Release]; the server's ConnectServer call returns
// only after the release has completed. Concurrent clients and concurrent
// servers are serialized on their own side, so the n-th client session is
// paired with exactly one server session.
//
// [Gate.Close] fails every party that has not yet been bound. Sessions
// that are already bound run to completion.
//
// Waiting clients and waiting servers are admitted in whatever order
// [sync.Mutex] grants its lock; no FIFO order is promised.
type Gate[S Server] struct {
	_ noCopy

	clientMu sync.Mutex // held from client connect until Release
	serverMu sync.Mutex // held for a whole ConnectServer call

	mu            sync.Mutex
	clientChanged sync.Cond
	serverChanged sync.Cond
	disconnected  sync.Cond

	clientWaiting bool
	serverWaiting bool
	bound         bool
	server        S
	connected     bool
	closed        bool

	waits   atomix.Uint32
	serials serials
	tracers []Tracer
}

// New creates an open gate.
func New[S Server](opts ...Option) *Gate[S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := &Gate[S]{tracers: o.tracers}
	g.clientChanged.L = &g.mu
	g.serverChanged.L = &g.mu
	g.disconnected.L = &g.mu
	return g
}

// ConnectClient waits for a server and binds the caller to it.
//
// It returns nil if the gate is closed before a server binds. Otherwise the
// returned [Conn] holds the client side of the gate until released; further
// ConnectClient calls block meanwhile.
func (g *Gate[S]) ConnectClient() *Conn[S] {
	g.trace(EventClientLock)
	g.clientMu.Lock()
	g.mu.Lock()
	return g.handshake()
}

// TryConnectClient is the non-blocking form of [Gate.ConnectClient].
//
// It returns [iox.ErrWouldBlock] when another client holds the client side
// or no server is parked waiting for a client, and [ErrClosed] when the
// gate is closed. Otherwise it completes the handshake with the parked
// server, which only waits for that server to bind.
func (g *Gate[S]) TryConnectClient() (*Conn[S], error) {
	if !g.clientMu.TryLock() {
		return nil, iox.ErrWouldBlock
	}
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		g.clientMu.Unlock()
		return nil, ErrClosed
	}
	if !g.serverWaiting {
		g.mu.Unlock()
		g.clientMu.Unlock()
		return nil, iox.ErrWouldBlock
	}
	c := g.handshake()
	if c == nil {
		return nil, ErrClosed
	}
	return c, nil
}

// handshake runs the client side of the connect protocol.
// It is entered with clientMu and mu held. mu is always released;
// clientMu is released on failure and handed to the Conn on success.
func (g *Gate[S]) handshake() *Conn[S] {
	g.clientWaiting = true
	g.clientChanged.Broadcast()

	for !g.bound && !g.closed {
		g.waits.Add(1)
		g.trace(EventClientWait)
		g.serverChanged.Wait()
	}
	// A bound server has committed to this client; close does not undo it.
	if !g.bound {
		g.clientWaiting = false
		g.clientChanged.Broadcast()
		g.trace(EventClientClosed)
		g.mu.Unlock()
		g.clientMu.Unlock()
		return nil
	}

	g.connected = true
	g.server.OnClientConnected()
	c := &Conn[S]{gate: g, server: g.server, serial: g.serials.next()}
	g.trace(EventClientConnected)
	g.mu.Unlock()
	return c
}

// ConnectServer offers s to the next client.
//
// It waits for a client, binds s to it, and then waits until that client
// has released its [Conn]. It reports false if the gate closed before a
// client arrived, and true after a complete session. A server already bound
// is not evicted by [Gate.Close].
func (g *Gate[S]) ConnectServer(s S) bool {
	g.trace(EventServerLock)
	g.serverMu.Lock()
	defer g.serverMu.Unlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	g.serverWaiting = true
	for !g.clientWaiting && !g.closed {
		g.waits.Add(1)
		g.trace(EventServerWait)
		g.clientChanged.Wait()
	}
	g.serverWaiting = false
	if g.closed {
		g.trace(EventServerClosed)
		return false
	}

	g.server = s
	g.bound = true
	g.trace(EventServerBound)
	g.serverChanged.Broadcast()

	// Only the client's Release clears clientWaiting once bound.
	for g.clientWaiting {
		g.clientChanged.Wait()
	}

	g.connected = false
	g.trace(EventServerDisconnected)
	g.disconnected.Broadcast()
	return true
}

// Serve offers s to clients until the gate closes and returns the number
// of completed sessions.
func (g *Gate[S]) Serve(s S) int {
	n := 0
	for g.ConnectServer(s) {
		n++
	}
	return n
}

// disconnect runs the client side of the disconnect protocol.
// The caller owns clientMu through its Conn; it is released last.
func (g *Gate[S]) disconnect() {
	g.mu.Lock()
	g.server.OnClientDisconnecting()
	g.clientWaiting = false
	g.bound = false
	var zero S
	g.server = zero
	g.trace(EventDisconnecting)
	g.clientChanged.Broadcast()

	for g.connected {
		g.disconnected.Wait()
	}
	g.trace(EventDisconnected)
	g.mu.Unlock()
	g.clientMu.Unlock()
}

// Close fails every current and future connect attempt that has not bound.
// Close is idempotent and safe to call from any goroutine.
func (g *Gate[S]) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
	g.trace(EventClose)

	g.clientChanged.Broadcast()
	g.serverChanged.Broadcast()
}

// Closed reports whether [Gate.Close] has been called.
func (g *Gate[S]) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}

// WaitCount returns how many times a client or server has been parked
// waiting for its counterpart to bind. It is a diagnostic counter only.
func (g *Gate[S]) WaitCount() uint32 {
	return g.waits.Load()
}

// Sessions returns the number of client sessions established so far.
func (g *Gate[S]) Sessions() Serial {
	return g.serials.last()
}
