// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rendezvous

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing session identifier.
// Each successful client connect on a gate takes the next value,
// starting at 1.
type Serial = uint32

// serials is a per-gate monotonic counter for session serials.
type serials struct {
	n atomix.Uint32
}

// next returns the next monotonically increasing serial.
func (s *serials) next() Serial {
	return s.n.Add(1)
}

// last returns the most recently assigned serial, or 0 if none.
func (s *serials) last() Serial {
	return s.n.Load()
}
