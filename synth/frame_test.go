// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"math"
	"testing"
)

func TestParamNamesLength(t *testing.T) {
	if len(ParamNames) != NumParams {
		t.Fatalf("len(ParamNames) = %d, want %d", len(ParamNames), NumParams)
	}
	seen := map[string]bool{}
	for _, nm := range ParamNames {
		if seen[nm] {
			t.Fatalf("duplicate parameter name %q", nm)
		}
		seen[nm] = true
	}
}

func TestSetFromValuesOrder(t *testing.T) {
	values := make([]float32, NumParams)
	for i := range values {
		values[i] = float32(i)
	}
	var fr Frame
	fr.SetFromValues(values)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"vibratoSpeed", fr.VibratoSpeed, 0},
		{"voicePitch", fr.VoicePitch, 2},
		{"glottalOpenQuotient", fr.GlottalOpenQuotient, 4},
		{"fricationAmplitude", fr.FricationAmplitude, 7},
		{"gain", fr.Gain, 8},
		{"cf1", fr.CF[0], 9},
		{"cf6", fr.CF[5], 14},
		{"cb1", fr.CB[0], 15},
		{"ca6", fr.CA[5], 26},
		{"dcf1", fr.DCF1, 27},
		{"dcb1", fr.DCB1, 28},
		{"cfN0", fr.CFN0, 29},
		{"caN0", fr.CAN0, 31},
		{"caNP", fr.CANP, 34},
		{"pf1", fr.PF[0], 35},
		{"pb1", fr.PB[0], 41},
		{"pa6", fr.PA[5], 52},
		{"endVoicePitch", fr.EndVoicePitch, 53},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
}

func TestValuesRoundTrip(t *testing.T) {
	values := make([]float32, NumParams)
	for i := range values {
		values[i] = float32(i)
	}
	var fr Frame
	fr.SetFromValues(values)
	back := make([]float32, NumParams)
	fr.Values(back)
	for i := range values {
		if back[i] != values[i] {
			t.Fatalf("parameter %q = %g after round trip, want %g", ParamNames[i], back[i], values[i])
		}
	}
}

func TestFadeEndpointsAndExtrapolation(t *testing.T) {
	if got := Fade(10, 20, 0); got != 10 {
		t.Errorf("Fade(10,20,0) = %g, want 10", got)
	}
	if got := Fade(10, 20, 1); got != 20 {
		t.Errorf("Fade(10,20,1) = %g, want 20", got)
	}
	if got := Fade(10, 20, 0.5); got != 15 {
		t.Errorf("Fade(10,20,0.5) = %g, want 15", got)
	}
	// no clamping: positions beyond 0..1 extrapolate
	if got := Fade(10, 20, 1.5); got != 25 {
		t.Errorf("Fade(10,20,1.5) = %g, want 25", got)
	}
	if got := Fade(10, 20, -0.5); got != 5 {
		t.Errorf("Fade(10,20,-0.5) = %g, want 5", got)
	}
}

func TestFadeBetweenFrames(t *testing.T) {
	var from, to, mix Frame
	from.Defaults()
	to = from
	to.VoicePitch = 210
	to.CF[0] = 900
	to.Gain = 3

	mix.FadeBetween(&from, &to, 0.25)
	if math.Abs(mix.VoicePitch-135) > 1e-12 {
		t.Errorf("voicePitch = %g, want 135", mix.VoicePitch)
	}
	if math.Abs(mix.CF[0]-600) > 1e-12 {
		t.Errorf("cf1 = %g, want 600", mix.CF[0])
	}
	if math.Abs(mix.Gain-1.5) > 1e-12 {
		t.Errorf("gain = %g, want 1.5", mix.Gain)
	}
	// untouched parameters interpolate to themselves
	if mix.CF[1] != from.CF[1] {
		t.Errorf("cf2 = %g, want %g", mix.CF[1], from.CF[1])
	}
}
