// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous_test

import (
	"testing"

	"code.hybscloud.com/rendezvous"
)

// BenchmarkRoundTrip measures one connect/call/release cycle against a
// server goroutine that serves until the gate closes.
func BenchmarkRoundTrip(b *testing.B) {
	b.ReportAllocs()
	g := rendezvous.New[counter]()
	srv := &countingServer{}
	done := make(chan int)
	go func() { done <- g.Serve(srv) }()

	for b.Loop() {
		g.Do(func(s counter) { s.Call() })
	}

	g.Close()
	<-done
}

// BenchmarkExecSession measures the same cycle driven as a kont protocol.
func BenchmarkExecSession(b *testing.B) {
	b.ReportAllocs()
	g := rendezvous.New[counter]()
	srv := &countingServer{}
	done := make(chan int)
	go func() { done <- g.Serve(srv) }()

	for b.Loop() {
		rendezvous.Exec(g, rendezvous.Session(func(s counter) struct{} {
			s.Call()
			return struct{}{}
		}))
	}

	g.Close()
	<-done
}

// BenchmarkClosedConnect measures the fail-fast path on a closed gate.
func BenchmarkClosedConnect(b *testing.B) {
	b.ReportAllocs()
	g := rendezvous.New[counter]()
	g.Close()
	for b.Loop() {
		g.ConnectClient()
	}
}
