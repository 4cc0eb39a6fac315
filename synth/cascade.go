// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

// CascadeBank chains six formant resonators, a nasal anti-resonator and
// a nasal pole in series. Each stage is mixed against its own input by
// the frame's cascade amplitude, so a stage with amplitude 0 passes the
// signal through untouched.
type CascadeBank struct {
	formants  [NumFormants]Resonator
	nasalZero Resonator
	nasalPole Resonator
}

func (cb *CascadeBank) Init(sampleRate int) {
	for i := range cb.formants {
		cb.formants[i].Init(sampleRate, false)
	}
	cb.nasalZero.Init(sampleRate, true)
	cb.nasalPole.Init(sampleRate, false)
}

func (cb *CascadeBank) Reset() {
	for i := range cb.formants {
		cb.formants[i].Reset()
	}
	cb.nasalZero.Reset()
	cb.nasalPole.Reset()
}

// Next runs one excitation sample through the chain. While the glottis
// is open the first formant is shifted by DCF1 and widened by DCB1,
// which models the tracheal coupling of the open glottis.
func (cb *CascadeBank) Next(frame *Frame, glottisOpen bool, input float64) float64 {
	input /= 2.0
	output := input
	for i := range cb.formants {
		frequency := frame.CF[i]
		bandwidth := frame.CB[i]
		if i == 0 && glottisOpen {
			frequency += frame.DCF1
			bandwidth += frame.DCB1
		}
		output = Fade(output, cb.formants[i].Resonate(output, frequency, bandwidth), frame.CA[i])
	}
	output = Fade(output, cb.nasalZero.Resonate(output, frame.CFN0, frame.CBN0), frame.CAN0)
	output = Fade(output, cb.nasalPole.Resonate(output, frame.CFNP, frame.CBNP), frame.CANP)
	return output
}
