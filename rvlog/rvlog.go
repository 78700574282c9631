// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rvlog adapts rendezvous tracing to logrus.
package rvlog

import (
	"github.com/sirupsen/logrus"

	"code.hybscloud.com/rendezvous"
)

// Tracer returns a [rendezvous.Tracer] that logs every event on l at level.
// Each entry carries the event name in the "event" field.
func Tracer(l logrus.FieldLogger, level logrus.Level) rendezvous.Tracer {
	return func(ev rendezvous.Event) {
		l.WithField("event", ev.String()).Log(level, "rendezvous")
	}
}
