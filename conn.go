// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import "sync"

// Conn is a client's exclusive binding to one server.
//
// A Conn is produced only by a successful client connect. While it is held
// no other client can connect through the same gate, and the bound server
// is not offered to anyone else. [Conn.Release] ends the session; it must
// be called exactly once by the owning goroutine, typically deferred.
type Conn[S Server] struct {
	_      noCopy
	gate   *Gate[S]
	server S
	serial Serial
	once   sync.Once
}

// Server returns the bound server.
// The reference must not be used after [Conn.Release].
func (c *Conn[S]) Server() S {
	return c.server
}

// Serial returns the gate-local serial number of this session.
func (c *Conn[S]) Serial() Serial {
	return c.serial
}

// Release disconnects from the server. It calls the server's
// OnClientDisconnecting, then waits until the server's ConnectServer call
// has observed the disconnect before releasing the client side of the gate.
// Calls after the first are no-ops.
func (c *Conn[S]) Release() {
	c.once.Do(func() {
		c.gate.disconnect()
	})
}

// Do connects a client, runs fn with the bound server, and releases the
// connection when fn returns or panics. It reports false without calling
// fn if the gate is closed before a server binds.
func (g *Gate[S]) Do(fn func(S)) bool {
	c := g.ConnectClient()
	if c == nil {
		return false
	}
	defer c.Release()
	fn(c.Server())
	return true
}
