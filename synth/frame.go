// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

// NumFormants is the number of formant resonators in each filter bank.
const NumFormants = 6

// NumParams is the number of scalar control parameters in a Frame,
// matching the length of ParamNames.
const NumParams = 54

// ParamNames lists the frame parameters in canonical order. Tables and
// value slices that feed SetFromValues must preserve this order.
var ParamNames = []string{
	"vibratoSpeed", "vibratoPitchOffset", "voicePitch",
	"voiceTurbulenceAmplitude", "glottalOpenQuotient",
	"voiceAmplitude", "aspirationAmplitude", "fricationAmplitude", "gain",
	"cf1", "cf2", "cf3", "cf4", "cf5", "cf6",
	"cb1", "cb2", "cb3", "cb4", "cb5", "cb6",
	"ca1", "ca2", "ca3", "ca4", "ca5", "ca6",
	"dcf1", "dcb1",
	"cfN0", "cbN0", "caN0",
	"cfNP", "cbNP", "caNP",
	"pf1", "pf2", "pf3", "pf4", "pf5", "pf6",
	"pb1", "pb2", "pb3", "pb4", "pb5", "pb6",
	"pa1", "pa2", "pa3", "pa4", "pa5", "pa6",
	"endVoicePitch",
}

// Frame is one complete set of control parameters for the synthesizer.
// The engine reads a frame once per output sample, so producers may vary
// any field between samples to shape the output continuously.
type Frame struct {
	VibratoSpeed             float64 `desc:"vibrato oscillation rate in Hz, typically 4-8 for natural voices"`
	VibratoPitchOffset       float64 `min:"0" desc:"vibrato depth scaling, 0 for none, 1 for a full +-6% pitch wobble"`
	VoicePitch               float64 `desc:"fundamental frequency of the voice in Hz"`
	VoiceTurbulenceAmplitude float64 `min:"0" max:"1" desc:"amplitude of breath noise mixed into the glottal waveform"`
	GlottalOpenQuotient      float64 `min:"0" max:"1" desc:"fraction of the pitch cycle after which the glottis counts as open"`
	VoiceAmplitude           float64 `min:"0" max:"1" desc:"amplitude of the voiced (glottal) excitation"`
	AspirationAmplitude      float64 `min:"0" max:"1" desc:"amplitude of unmodulated breath noise, e.g. for h"`
	FricationAmplitude       float64 `min:"0" max:"1" desc:"amplitude of the noise fed to the parallel bank, e.g. for s, f"`
	Gain                     float64 `desc:"overall output gain applied after the filter banks"`

	CF [NumFormants]float64 `desc:"cascade formant center frequencies in Hz"`
	CB [NumFormants]float64 `desc:"cascade formant bandwidths in Hz"`
	CA [NumFormants]float64 `min:"0" max:"1" desc:"cascade formant amplitudes: 0 bypasses the stage, 1 is fully resonated"`

	DCF1 float64 `desc:"shift added to cf1 while the glottis is open"`
	DCB1 float64 `desc:"shift added to cb1 while the glottis is open"`

	CFN0 float64 `desc:"nasal anti-resonator (zero) center frequency in Hz"`
	CBN0 float64 `desc:"nasal anti-resonator bandwidth in Hz"`
	CAN0 float64 `min:"0" max:"1" desc:"nasal anti-resonator amplitude"`
	CFNP float64 `desc:"nasal pole center frequency in Hz"`
	CBNP float64 `desc:"nasal pole bandwidth in Hz"`
	CANP float64 `min:"0" max:"1" desc:"nasal pole amplitude"`

	PF [NumFormants]float64 `desc:"parallel formant center frequencies in Hz"`
	PB [NumFormants]float64 `desc:"parallel formant bandwidths in Hz"`
	PA [NumFormants]float64 `min:"0" max:"1" desc:"parallel formant amplitudes"`

	EndVoicePitch float64 `desc:"pitch in Hz to glide to over the lifetime of a queued frame, 0 for no glide"`
}

// Defaults sets a neutral voiced configuration: an evenly spaced formant
// ladder with the nasal and parallel branches turned off.
func (fr *Frame) Defaults() {
	fr.VibratoSpeed = 5.5
	fr.VibratoPitchOffset = 0.2
	fr.VoicePitch = 110
	fr.VoiceTurbulenceAmplitude = 0.1
	fr.GlottalOpenQuotient = 0.5
	fr.VoiceAmplitude = 1
	fr.AspirationAmplitude = 0
	fr.FricationAmplitude = 0
	fr.Gain = 1
	fr.CF = [NumFormants]float64{500, 1500, 2500, 3500, 4500, 5500}
	fr.CB = [NumFormants]float64{60, 90, 150, 200, 200, 500}
	for i := range fr.CA {
		fr.CA[i] = 1
	}
	fr.DCF1 = 0
	fr.DCB1 = 0
	fr.CFN0 = 250
	fr.CBN0 = 100
	fr.CAN0 = 0
	fr.CFNP = 250
	fr.CBNP = 100
	fr.CANP = 0
	fr.PF = [NumFormants]float64{600, 1400, 2600, 3400, 4400, 5400}
	fr.PB = [NumFormants]float64{100, 200, 250, 300, 350, 400}
	for i := range fr.PA {
		fr.PA[i] = 0
	}
	fr.EndVoicePitch = fr.VoicePitch
}

// SetFromValues sets all parameters from a value slice in ParamNames
// order -- order must be preserved!
func (fr *Frame) SetFromValues(values []float32) {
	fr.VibratoSpeed = float64(values[0])
	fr.VibratoPitchOffset = float64(values[1])
	fr.VoicePitch = float64(values[2])
	fr.VoiceTurbulenceAmplitude = float64(values[3])
	fr.GlottalOpenQuotient = float64(values[4])
	fr.VoiceAmplitude = float64(values[5])
	fr.AspirationAmplitude = float64(values[6])
	fr.FricationAmplitude = float64(values[7])
	fr.Gain = float64(values[8])
	for i := 0; i < NumFormants; i++ {
		fr.CF[i] = float64(values[9+i])
		fr.CB[i] = float64(values[15+i])
		fr.CA[i] = float64(values[21+i])
	}
	fr.DCF1 = float64(values[27])
	fr.DCB1 = float64(values[28])
	fr.CFN0 = float64(values[29])
	fr.CBN0 = float64(values[30])
	fr.CAN0 = float64(values[31])
	fr.CFNP = float64(values[32])
	fr.CBNP = float64(values[33])
	fr.CANP = float64(values[34])
	for i := 0; i < NumFormants; i++ {
		fr.PF[i] = float64(values[35+i])
		fr.PB[i] = float64(values[41+i])
		fr.PA[i] = float64(values[47+i])
	}
	fr.EndVoicePitch = float64(values[53])
}

// Values writes all parameters into dst in ParamNames order, the
// inverse of SetFromValues. dst must hold NumParams elements.
func (fr *Frame) Values(dst []float32) {
	dst[0] = float32(fr.VibratoSpeed)
	dst[1] = float32(fr.VibratoPitchOffset)
	dst[2] = float32(fr.VoicePitch)
	dst[3] = float32(fr.VoiceTurbulenceAmplitude)
	dst[4] = float32(fr.GlottalOpenQuotient)
	dst[5] = float32(fr.VoiceAmplitude)
	dst[6] = float32(fr.AspirationAmplitude)
	dst[7] = float32(fr.FricationAmplitude)
	dst[8] = float32(fr.Gain)
	for i := 0; i < NumFormants; i++ {
		dst[9+i] = float32(fr.CF[i])
		dst[15+i] = float32(fr.CB[i])
		dst[21+i] = float32(fr.CA[i])
	}
	dst[27] = float32(fr.DCF1)
	dst[28] = float32(fr.DCB1)
	dst[29] = float32(fr.CFN0)
	dst[30] = float32(fr.CBN0)
	dst[31] = float32(fr.CAN0)
	dst[32] = float32(fr.CFNP)
	dst[33] = float32(fr.CBNP)
	dst[34] = float32(fr.CANP)
	for i := 0; i < NumFormants; i++ {
		dst[35+i] = float32(fr.PF[i])
		dst[41+i] = float32(fr.PB[i])
		dst[47+i] = float32(fr.PA[i])
	}
	dst[53] = float32(fr.EndVoicePitch)
}

// Fade interpolates linearly from one value toward another. pos is
// normally in 0..1 but is deliberately not clamped, so values beyond
// that range extrapolate along the same line.
func Fade(from, to, pos float64) float64 {
	return from + (to-from)*pos
}

// FadeBetween sets every parameter of this frame to the linear
// interpolation of the corresponding parameters of from and to.
func (fr *Frame) FadeBetween(from, to *Frame, pos float64) {
	fr.VibratoSpeed = Fade(from.VibratoSpeed, to.VibratoSpeed, pos)
	fr.VibratoPitchOffset = Fade(from.VibratoPitchOffset, to.VibratoPitchOffset, pos)
	fr.VoicePitch = Fade(from.VoicePitch, to.VoicePitch, pos)
	fr.VoiceTurbulenceAmplitude = Fade(from.VoiceTurbulenceAmplitude, to.VoiceTurbulenceAmplitude, pos)
	fr.GlottalOpenQuotient = Fade(from.GlottalOpenQuotient, to.GlottalOpenQuotient, pos)
	fr.VoiceAmplitude = Fade(from.VoiceAmplitude, to.VoiceAmplitude, pos)
	fr.AspirationAmplitude = Fade(from.AspirationAmplitude, to.AspirationAmplitude, pos)
	fr.FricationAmplitude = Fade(from.FricationAmplitude, to.FricationAmplitude, pos)
	fr.Gain = Fade(from.Gain, to.Gain, pos)
	for i := 0; i < NumFormants; i++ {
		fr.CF[i] = Fade(from.CF[i], to.CF[i], pos)
		fr.CB[i] = Fade(from.CB[i], to.CB[i], pos)
		fr.CA[i] = Fade(from.CA[i], to.CA[i], pos)
		fr.PF[i] = Fade(from.PF[i], to.PF[i], pos)
		fr.PB[i] = Fade(from.PB[i], to.PB[i], pos)
		fr.PA[i] = Fade(from.PA[i], to.PA[i], pos)
	}
	fr.DCF1 = Fade(from.DCF1, to.DCF1, pos)
	fr.DCB1 = Fade(from.DCB1, to.DCB1, pos)
	fr.CFN0 = Fade(from.CFN0, to.CFN0, pos)
	fr.CBN0 = Fade(from.CBN0, to.CBN0, pos)
	fr.CAN0 = Fade(from.CAN0, to.CAN0, pos)
	fr.CFNP = Fade(from.CFNP, to.CFNP, pos)
	fr.CBNP = Fade(from.CBNP, to.CBNP, pos)
	fr.CANP = Fade(from.CANP, to.CANP, pos)
	fr.EndVoicePitch = Fade(from.EndVoicePitch, to.EndVoicePitch, pos)
}
