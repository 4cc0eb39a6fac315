// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"math"
	"math/rand"
)

// VibratoDepth scales the vibrato sine into a pitch multiplier: with
// VibratoPitchOffset of 1 the pitch wobbles by +-6%.
const VibratoDepth = 0.06

// TurbulenceDamping attenuates voice turbulence while the glottis is
// open; turbulence is strongest at glottal closure.
const TurbulenceDamping = 0.1

// VoiceSource generates the glottal excitation waveform: a vibrato
// modulated sawtooth plus aspiration noise, gated by the open quotient.
type VoiceSource struct {
	pitch      PhaseOscillator
	vibrato    PhaseOscillator
	aspiration NoiseGenerator
}

func (vs *VoiceSource) Init(sampleRate int, src rand.Source) {
	vs.pitch.Init(sampleRate)
	vs.vibrato.Init(sampleRate)
	vs.aspiration.Init(src)
}

func (vs *VoiceSource) Reset() {
	vs.pitch.Reset()
	vs.vibrato.Reset()
	vs.aspiration.Reset()
}

// Next produces one sample of excitation from the frame parameters and
// reports whether the glottis is open at this point in the pitch cycle.
func (vs *VoiceSource) Next(frame *Frame) (float64, bool) {
	vibrato := math.Sin(vs.vibrato.Next(frame.VibratoSpeed)*twoPi)*VibratoDepth*frame.VibratoPitchOffset + 1
	phase := vs.pitch.Next(frame.VoicePitch * vibrato)
	aspiration := vs.aspiration.Next()
	turbulence := aspiration * frame.VoiceTurbulenceAmplitude
	glottisOpen := phase >= frame.GlottalOpenQuotient
	if glottisOpen {
		turbulence *= TurbulenceDamping
	}
	voice := phase*2 - 1
	voice += turbulence
	return voice*frame.VoiceAmplitude + aspiration*frame.AspirationAmplitude, glottisOpen
}
