// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phones

import (
	"encoding/json"
	"io/ioutil"

	"github.com/chewxy/math32"

	"github.com/openphon/phonate/synth"
)

// VolMax is the top of the volume scale in dB.
const VolMax = 60

// Amplitude converts a volume level (0 - 60 dB) to a linear scale.
func Amplitude(decibelLevel float32) float32 {
	decibelLevel -= VolMax

	if decibelLevel <= -VolMax {
		return 0
	}

	if decibelLevel >= 0.0 {
		return 1.0
	}

	return math32.Pow(10.0, decibelLevel/20.0)
}

// Voice holds the speaker-level settings stamped onto every phoneme
// frame before it is queued.
type Voice struct {
	SampleRate         int     `desc:"output sample rate in Hz (22050, 44100)"`
	BasePitch          float64 `desc:"speaking fundamental in Hz, used when the phone carries no pitch"`
	Inflection         float64 `desc:"pitch rise over each phone as a fraction of its start pitch, 0 for monotone"`
	HeadSize           float64 `desc:"vocal tract scale, 1 = reference; larger values shift all formants down"`
	Volume             float64 `desc:"output volume (0 - 60 dB)"`
	VibratoSpeed       float64 `desc:"vibrato rate in Hz, 0 keeps the phone's own value"`
	VibratoPitchOffset float64 `desc:"vibrato depth scaling, 0 keeps the phone's own value"`
	Breathiness        float64 `desc:"glottal turbulence amplitude, 0 keeps the phone's own value"`
}

func (vc *Voice) Defaults() {
	vc.SampleRate = 22050
	vc.BasePitch = 110
	vc.Inflection = 0
	vc.HeadSize = 1
	vc.Volume = 60
	vc.VibratoSpeed = 5.5
	vc.VibratoPitchOffset = 0.2
	vc.Breathiness = 0.1
}

// OpenJSON opens voice settings from a JSON-formatted file.
func (vc *Voice) OpenJSON(fn string) error {
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, vc)
}

// Apply stamps the voice onto a phoneme frame: pitch where the phone
// has none, formant scaling for head size, vibrato, breathiness and
// volume. Zero-valued voice settings leave the frame's own values.
func (vc *Voice) Apply(fr *synth.Frame) {
	if fr.VoicePitch == 0 {
		fr.VoicePitch = vc.BasePitch
	}
	if fr.EndVoicePitch == 0 {
		fr.EndVoicePitch = fr.VoicePitch * (1 + vc.Inflection)
	}
	if vc.HeadSize > 0 && vc.HeadSize != 1 {
		scale := 1 / vc.HeadSize
		for i := 0; i < synth.NumFormants; i++ {
			fr.CF[i] *= scale
			fr.PF[i] *= scale
		}
		fr.CFN0 *= scale
		fr.CFNP *= scale
	}
	if vc.VibratoSpeed > 0 {
		fr.VibratoSpeed = vc.VibratoSpeed
	}
	if vc.VibratoPitchOffset > 0 {
		fr.VibratoPitchOffset = vc.VibratoPitchOffset
	}
	if vc.Breathiness > 0 {
		fr.VoiceTurbulenceAmplitude = vc.Breathiness
	}
	fr.Gain *= float64(Amplitude(float32(vc.Volume)))
}
