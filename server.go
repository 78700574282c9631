// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

// Server is the capability a server-side object exposes to a [Gate].
//
// Both callbacks run on the connecting or disconnecting client's goroutine
// while the gate's common lock is held. They are invoked exactly once per
// session, OnClientConnected first. Implementations must not call back into
// the gate: doing so deadlocks.
type Server interface {
	// OnClientConnected is called after a client has been bound to the
	// server and before the client receives its [Conn].
	OnClientConnected()

	// OnClientDisconnecting is called when the client releases its [Conn],
	// before the binding is cleared.
	OnClientDisconnecting()
}

// NopServer implements [Server] with no-op callbacks.
// Embed it in server types that do not care about session boundaries.
type NopServer struct{}

// OnClientConnected implements [Server].
func (NopServer) OnClientConnected() {}

// OnClientDisconnecting implements [Server].
func (NopServer) OnClientDisconnecting() {}
