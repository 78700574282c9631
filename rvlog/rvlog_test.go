// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rvlog_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"code.hybscloud.com/rendezvous"
	"code.hybscloud.com/rendezvous/rvlog"
)

func TestTracerClosedGate(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := rendezvous.New[rendezvous.Server](rendezvous.WithTracer(rvlog.Tracer(logger, logrus.DebugLevel)))
	g.Close()
	if c := g.ConnectClient(); c != nil {
		t.Fatalf("connect on closed gate: got %v, want nil", c)
	}

	want := []string{"close", "client_lock", "client_closed"}
	entries := hook.AllEntries()
	if len(entries) != len(want) {
		t.Fatalf("entries: got %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Level != logrus.DebugLevel {
			t.Fatalf("entry %d: level %v, want debug", i, e.Level)
		}
		if e.Message != "rendezvous" {
			t.Fatalf("entry %d: message %q, want %q", i, e.Message, "rendezvous")
		}
		if got := e.Data["event"]; got != want[i] {
			t.Fatalf("entry %d: event %v, want %s", i, got, want[i])
		}
	}
}

func TestTracerBelowLevel(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	g := rendezvous.New[rendezvous.Server](rendezvous.WithTracer(rvlog.Tracer(logger, logrus.DebugLevel)))
	g.Close()

	if n := len(hook.AllEntries()); n != 0 {
		t.Fatalf("entries below level: got %d, want 0", n)
	}
}
