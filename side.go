// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

// ClientGate is the client-side view of a [Gate].
type ClientGate[S Server] struct {
	g *Gate[S]
}

// Client returns the client-side view of g.
func (g *Gate[S]) Client() ClientGate[S] {
	return ClientGate[S]{g: g}
}

// Connect is [Gate.ConnectClient].
func (c ClientGate[S]) Connect() *Conn[S] {
	return c.g.ConnectClient()
}

// TryConnect is [Gate.TryConnectClient].
func (c ClientGate[S]) TryConnect() (*Conn[S], error) {
	return c.g.TryConnectClient()
}

// Do is [Gate.Do].
func (c ClientGate[S]) Do(fn func(S)) bool {
	return c.g.Do(fn)
}

// ServerGate is the server-side view of a [Gate].
type ServerGate[S Server] struct {
	g *Gate[S]
}

// Server returns the server-side view of g.
func (g *Gate[S]) Server() ServerGate[S] {
	return ServerGate[S]{g: g}
}

// Connect is [Gate.ConnectServer].
func (s ServerGate[S]) Connect(srv S) bool {
	return s.g.ConnectServer(srv)
}

// Serve is [Gate.Serve].
func (s ServerGate[S]) Serve(srv S) int {
	return s.g.Serve(srv)
}
