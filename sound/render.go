// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sound

// SampleSource is anything that fills buffers with 16-bit samples, e.g.
// the synthesizer engine. Generate returns the number of samples
// produced, 0 when the source has nothing to generate from.
type SampleSource interface {
	Generate(buf []int16) int
}

// renderChunk is the block size Render pulls at, small enough that
// frame timing requests land with reasonable granularity.
const renderChunk = 1024

// Render pulls n samples from src and wraps them as a mono wave at the
// given sample rate. If the source runs dry the remainder is silence.
func Render(src SampleSource, n, rate int) *Wave {
	samples := make([]int16, n)
	for start := 0; start < n; start += renderChunk {
		end := start + renderChunk
		if end > n {
			end = n
		}
		if src.Generate(samples[start:end]) == 0 {
			break
		}
	}
	return FromSamples(samples, rate)
}
