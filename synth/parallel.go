// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

// ParallelBank feeds the frication noise to six formant resonators in
// parallel and sums their weighted outputs. Only the resonated
// difference of each branch is mixed in, so branches at amplitude 0
// contribute nothing beyond the (halved) direct signal.
type ParallelBank struct {
	formants [NumFormants]Resonator
}

func (pb *ParallelBank) Init(sampleRate int) {
	for i := range pb.formants {
		pb.formants[i].Init(sampleRate, false)
	}
}

func (pb *ParallelBank) Reset() {
	for i := range pb.formants {
		pb.formants[i].Reset()
	}
}

// Next runs one frication sample through all branches.
func (pb *ParallelBank) Next(frame *Frame, input float64) float64 {
	input /= 2.0
	output := input
	for i := range pb.formants {
		output += Fade(input, pb.formants[i].Resonate(input, frame.PF[i], frame.PB[i])-input, frame.PA[i])
	}
	return output
}
