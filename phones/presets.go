// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phones

import "github.com/openphon/phonate/synth"

// base is the voiced configuration all presets start from. Pitch fields
// stay zero so that a Voice can stamp its own at queue time.
func base() synth.Frame {
	var fr synth.Frame
	fr.Defaults()
	fr.VoicePitch = 0
	fr.EndVoicePitch = 0
	return fr
}

func vowel(f1, f2, f3 float64) synth.Frame {
	fr := base()
	fr.CF[0] = f1
	fr.CF[1] = f2
	fr.CF[2] = f3
	return fr
}

func nasal(f1, f2, zero float64) synth.Frame {
	fr := base()
	fr.CF[0] = f1
	fr.CF[1] = f2
	fr.VoiceAmplitude = 0.7
	fr.CFN0 = zero
	fr.CBN0 = 100
	fr.CAN0 = 1
	fr.CFNP = 270
	fr.CBNP = 100
	fr.CANP = 1
	return fr
}

func fricative(voiceAmp, fricAmp float64, pa [synth.NumFormants]float64) synth.Frame {
	fr := base()
	fr.VoiceAmplitude = voiceAmp
	fr.FricationAmplitude = fricAmp
	fr.PA = pa
	return fr
}

func aspirate() synth.Frame {
	fr := base()
	fr.VoiceAmplitude = 0
	fr.AspirationAmplitude = 1
	return fr
}

// StandardTable returns the built-in phoneme inventory. Vowel formants
// follow the classic male averages; fricative spectra are shaped with
// the parallel bank only.
func StandardTable() *Table {
	pt := &Table{}
	pt.Config()

	type phone struct {
		sym       string
		dur, fade float64
		frame     synth.Frame
	}
	inventory := []phone{
		{"aa", 180, 40, vowel(730, 1090, 2440)}, // father
		{"ae", 180, 40, vowel(660, 1720, 2410)}, // cat
		{"ah", 160, 40, vowel(520, 1190, 2390)}, // cut
		{"eh", 170, 40, vowel(530, 1840, 2480)}, // bed
		{"ee", 180, 40, vowel(270, 2290, 3010)}, // heed
		{"ih", 160, 40, vowel(390, 1990, 2550)}, // bid
		{"oh", 180, 40, vowel(570, 840, 2410)},  // bought
		{"oo", 180, 40, vowel(300, 870, 2240)},  // boot
		{"m", 120, 30, nasal(250, 1000, 750)},
		{"n", 120, 30, nasal(250, 1400, 1400)},
		{"s", 140, 30, fricative(0, 0.8, [synth.NumFormants]float64{0, 0, 0, 0.4, 0.9, 0.8})},
		{"z", 140, 30, fricative(0.5, 0.5, [synth.NumFormants]float64{0, 0, 0, 0.4, 0.9, 0.8})},
		{"sh", 140, 30, fricative(0, 0.8, [synth.NumFormants]float64{0, 0, 0.7, 0.9, 0.4, 0.2})},
		{"zh", 140, 30, fricative(0.5, 0.5, [synth.NumFormants]float64{0, 0, 0.7, 0.9, 0.4, 0.2})},
		{"f", 130, 30, fricative(0, 0.5, [synth.NumFormants]float64{0, 0.3, 0.3, 0.3, 0.4, 0.4})},
		{"v", 130, 30, fricative(0.5, 0.4, [synth.NumFormants]float64{0, 0.3, 0.3, 0.3, 0.4, 0.4})},
		{"h", 90, 30, aspirate()},
	}
	for _, p := range inventory {
		pt.AddPhone(p.sym, p.dur, p.fade, &p.frame)
	}
	return pt
}
