// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"math"
	"testing"
)

func TestPhaseOscillatorAdvancesAndWraps(t *testing.T) {
	var po PhaseOscillator
	po.Init(10)
	want := []float64{0.3, 0.6, 0.9, 0.2, 0.5}
	for i, w := range want {
		got := po.Next(3)
		if math.Abs(got-w) > 1e-9 {
			t.Fatalf("phase %d = %g, want %g", i, got, w)
		}
	}
}

func TestPhaseOscillatorStaysInUnitRange(t *testing.T) {
	var po PhaseOscillator
	po.Init(22050)
	freqs := []float64{55, 110.5, 440, 1234.5678, 11024}
	for i := 0; i < 10000; i++ {
		got := po.Next(freqs[i%len(freqs)])
		if got < 0 || got >= 1 {
			t.Fatalf("phase = %g at step %d, want [0,1)", got, i)
		}
	}
}

func TestPhaseOscillatorPeriodicity(t *testing.T) {
	// 500/16000 = 1/32 is exact in binary, so one full period brings the
	// accumulator back to precisely zero and the sequence repeats
	var po PhaseOscillator
	po.Init(16000)
	period := make([]float64, 32)
	for i := range period {
		period[i] = po.Next(500)
	}
	if period[31] != 0 {
		t.Fatalf("phase after one full period = %g, want exactly 0", period[31])
	}
	for i := range period {
		if got := po.Next(500); got != period[i] {
			t.Fatalf("second period diverged at step %d: %g vs %g", i, got, period[i])
		}
	}
}

func TestPhaseOscillatorReset(t *testing.T) {
	var po PhaseOscillator
	po.Init(100)
	po.Next(17)
	po.Next(17)
	po.Reset()
	got := po.Next(25)
	if math.Abs(got-0.25) > 1e-12 {
		t.Fatalf("first phase after Reset = %g, want 0.25", got)
	}
}
