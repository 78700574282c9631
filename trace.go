// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

// Event identifies a step of the gate protocol reported to a [Tracer].
type Event uint8

const (
	// EventClientLock: a client waits for the client side of the gate.
	EventClientLock Event = iota + 1
	// EventClientWait: a client is parked until a server binds.
	EventClientWait
	// EventClientConnected: OnClientConnected has returned; the client
	// is about to receive its Conn.
	EventClientConnected
	// EventClientClosed: a client connect failed because the gate closed.
	EventClientClosed
	// EventServerLock: a server waits for the server side of the gate.
	EventServerLock
	// EventServerWait: a server is parked until a client arrives.
	EventServerWait
	// EventServerBound: a server bound itself to the waiting client.
	EventServerBound
	// EventServerClosed: a server connect failed because the gate closed.
	EventServerClosed
	// EventServerDisconnected: a server observed the client leaving and
	// broke the mutual connection.
	EventServerDisconnected
	// EventDisconnecting: OnClientDisconnecting has returned; the client
	// waits for the server to acknowledge.
	EventDisconnecting
	// EventDisconnected: the client side is fully released.
	EventDisconnected
	// EventClose: Close was called.
	EventClose
)

var eventNames = [...]string{
	EventClientLock:         "client_lock",
	EventClientWait:         "client_wait",
	EventClientConnected:    "client_connected",
	EventClientClosed:       "client_closed",
	EventServerLock:         "server_lock",
	EventServerWait:         "server_wait",
	EventServerBound:        "server_bound",
	EventServerClosed:       "server_closed",
	EventServerDisconnected: "server_disconnected",
	EventDisconnecting:      "disconnecting",
	EventDisconnected:       "disconnected",
	EventClose:              "close",
}

// String returns the snake_case name of the event.
func (e Event) String() string {
	if int(e) < len(eventNames) && eventNames[e] != "" {
		return eventNames[e]
	}
	return "unknown"
}

// Events lists every event in declaration order.
func Events() []Event {
	evs := make([]Event, 0, len(eventNames)-1)
	for e := EventClientLock; e <= EventClose; e++ {
		evs = append(evs, e)
	}
	return evs
}

// Tracer observes gate protocol events.
//
// A Tracer runs on the goroutine driving the protocol, in some cases while
// the gate's common lock is held. It must be safe for concurrent use, must
// not block for long, and must not call back into the gate.
type Tracer func(ev Event)

// Option configures a [Gate].
type Option func(*options)

type options struct {
	tracers []Tracer
}

// WithTracer adds a tracer. Tracers run in the order they were added.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracers = append(o.tracers, t)
		}
	}
}

// WithRecorder adds r as a tracer.
func WithRecorder(r *Recorder) Option {
	return WithTracer(r.Record)
}

// trace reports ev to every configured tracer.
func (g *Gate[S]) trace(ev Event) {
	for _, t := range g.tracers {
		t(ev)
	}
}
