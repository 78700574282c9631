// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// Recorder is a bounded event log usable as a [Tracer].
//
// Events are kept in a lock-free SPSC ring. Producers are serialized by a
// mutex, so any number of goroutines may record; a single goroutine drains.
// When the ring is full new events are dropped and counted.
type Recorder struct {
	mu      sync.Mutex
	q       lfq.SPSC[Event]
	slot    Event
	dropped atomix.Uint32
}

// NewRecorder creates a recorder holding at most capacity undrained events.
func NewRecorder(capacity int) *Recorder {
	r := &Recorder{}
	r.q.Init(capacity)
	return r
}

// Record appends ev, or drops it if the ring is full.
func (r *Recorder) Record(ev Event) {
	r.mu.Lock()
	r.slot = ev
	err := r.q.Enqueue(&r.slot)
	r.mu.Unlock()
	if err != nil {
		r.dropped.Add(1)
	}
}

// Drain removes and returns every buffered event in recording order.
// Drain must not be called concurrently with itself.
func (r *Recorder) Drain() []Event {
	var evs []Event
	for {
		ev, err := r.q.Dequeue()
		if err != nil {
			return evs
		}
		evs = append(evs, ev)
	}
}

// Dropped returns the number of events lost to a full ring.
func (r *Recorder) Dropped() uint32 {
	return r.dropped.Load()
}
