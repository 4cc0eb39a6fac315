// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import "math/rand"

// NoiseFeedback is the one-pole feedback coefficient that tilts the raw
// uniform noise toward low frequencies, approximating breath noise.
const NoiseFeedback = 0.75

// NoiseGenerator produces low-passed uniform noise. Each generator owns
// its random stream, so seeding the source makes the output reproducible.
type NoiseGenerator struct {
	rnd  *rand.Rand
	last float64
}

// Init gives the generator its random source. It must be called before
// the first Next.
func (ng *NoiseGenerator) Init(src rand.Source) {
	ng.rnd = rand.New(src)
	ng.Reset()
}

// Reset clears the feedback state without disturbing the random stream.
func (ng *NoiseGenerator) Reset() {
	ng.last = 0
}

// Next returns the next noise sample.
func (ng *NoiseGenerator) Next() float64 {
	ng.last = ng.rnd.Float64() + NoiseFeedback*ng.last
	return ng.last
}
