// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rendezvous provides a gate that pairs client goroutines with
// server goroutines one-to-one, in strict alternation.
//
// A [Gate] carries no payload. It only establishes a mutually exclusive
// window during which exactly one client holds a reference to exactly one
// server, with connect and disconnect handshakes on both sides.
//
// # Protocol
//
//   - Client: [Gate.ConnectClient] blocks until a server binds, calls the
//     server's [Server.OnClientConnected], and returns a [Conn].
//   - Server: [Gate.ConnectServer] blocks until a client waits, binds, and
//     then blocks until that client releases its [Conn].
//   - Disconnect: [Conn.Release] calls [Server.OnClientDisconnecting] and
//     returns only after the server side has observed the disconnect.
//   - Close: [Gate.Close] fails every party not yet bound. Sessions already
//     bound complete normally.
//
// Concurrent clients are serialized on the client side and concurrent
// servers on the server side, so sessions never overlap.
//
// # Integration
//
//   - Scoped use: [Gate.Do] connects, runs a function, and releases on every
//     exit path.
//   - Non-blocking: [Gate.TryConnectClient] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] when no server is parked.
//   - Effects: [ConnectClient], [ConnectServer] and [Release] are
//     [code.hybscloud.com/kont] operations, evaluated with [Exec] or stepped
//     with [Step] and [Advance].
//   - Observability: [WithTracer] installs a [Tracer] called at every protocol
//     step; [Recorder] buffers events, and the rvlog and rvprom packages
//     adapt tracers to logrus and Prometheus.
//
// # Example
//
//	g := rendezvous.New[*Counter]()
//	go g.Serve(counter)
//	g.Do(func(c *Counter) { c.Inc() })
//	g.Close()
package rendezvous
