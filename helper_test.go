// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous_test

import (
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/rendezvous"
)

// calculator is the capability the tests bind clients to.
type calculator interface {
	rendezvous.Server
	SetX(x int)
	SetY(y int)
	Sum() int
}

// testServer signals its callbacks on buffered channels so a test can
// wait for them. Its state is only touched by the client holding the
// connection, or by the test after every goroutine has been joined.
type testServer struct {
	connected     chan struct{}
	disconnecting chan struct{}
	x, y          int
}

func newTestServer() *testServer {
	return &testServer{
		connected:     make(chan struct{}, 1),
		disconnecting: make(chan struct{}, 1),
	}
}

func (s *testServer) OnClientConnected()     { s.connected <- struct{}{} }
func (s *testServer) OnClientDisconnecting() { s.disconnecting <- struct{}{} }
func (s *testServer) SetX(x int)             { s.x = x }
func (s *testServer) SetY(y int)             { s.y = y }
func (s *testServer) Sum() int               { return s.x + s.y }

// countingServer counts calls made through the gate.
type countingServer struct {
	rendezvous.NopServer
	id    int
	calls int
}

func (s *countingServer) Call() { s.calls++ }

type counter interface {
	rendezvous.Server
	Call()
}

const waitTimeout = 5 * time.Second

// expect waits for a signal on ch or fails the test.
func expect(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(waitTimeout):
		t.Fatalf("timed out waiting for %s", what)
	}
}

// within runs fn on a new goroutine and fails the test if it does not
// return in time.
func within(t *testing.T, what string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	expect(t, done, what)
}

// awaitParked spins until a party has been parked on g since old was read.
func awaitParked[S rendezvous.Server](g *rendezvous.Gate[S], old uint32) {
	var bo iox.Backoff
	for g.WaitCount() == old {
		bo.Wait()
	}
}

// closeWhenParked closes g from another goroutine as soon as someone
// parks on it.
func closeWhenParked[S rendezvous.Server](g *rendezvous.Gate[S]) {
	old := g.WaitCount()
	go func() {
		awaitParked(g, old)
		g.Close()
	}()
}

// signal sends on a buffered step channel without blocking.
func signal(ch chan struct{}) {
	ch <- struct{}{}
}
