// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import "math"

// PhaseOscillator is a phase accumulator that advances by one sample per
// call, wrapping at 1. The frequency may change on every call, which is
// how pitch modulation such as vibrato reaches the voice source.
type PhaseOscillator struct {
	sampleRate float64
	phase      float64
}

func (po *PhaseOscillator) Init(sampleRate int) {
	po.sampleRate = float64(sampleRate)
	po.Reset()
}

func (po *PhaseOscillator) Reset() {
	po.phase = 0
}

// Next advances the phase by frequency/sampleRate and returns the new
// phase in [0, 1).
func (po *PhaseOscillator) Next(frequency float64) float64 {
	po.phase = math.Mod(frequency/po.sampleRate+po.phase, 1)
	return po.phase
}
