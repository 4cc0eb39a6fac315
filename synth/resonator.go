// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import "math"

const twoPi = math.Pi * 2

// coefs holds the filter coefficients for one resonator along with the
// frequency and bandwidth they were computed from, so that the expensive
// exp and cos only run when a parameter actually changes.
type coefs struct {
	frequency float64
	bandwidth float64
	a, b, c   float64
	set       bool
}

func (co *coefs) stale(frequency, bandwidth float64) bool {
	return !co.set || frequency != co.frequency || bandwidth != co.bandwidth
}

// Resonator is a two-pole bandpass section, or with anti set a two-zero
// notch used for the nasal zero in the cascade bank.
type Resonator struct {
	sampleRate float64
	anti       bool
	co         coefs
	p1, p2     float64
}

func (rs *Resonator) Init(sampleRate int, anti bool) {
	rs.sampleRate = float64(sampleRate)
	rs.anti = anti
	rs.Reset()
}

// Reset clears the filter memory. Cached coefficients stay valid.
func (rs *Resonator) Reset() {
	rs.p1 = 0
	rs.p2 = 0
}

func (rs *Resonator) setParams(frequency, bandwidth float64) {
	if rs.co.stale(frequency, bandwidth) {
		rs.co.frequency = frequency
		rs.co.bandwidth = bandwidth
		r := math.Exp(-math.Pi / rs.sampleRate * bandwidth)
		rs.co.c = -(r * r)
		rs.co.b = r * math.Cos(twoPi/rs.sampleRate*-frequency) * 2.0
		rs.co.a = 1.0 - rs.co.b - rs.co.c
		if rs.anti && frequency != 0 {
			rs.co.a = 1.0 / rs.co.a
			rs.co.c *= -rs.co.a
			rs.co.b *= -rs.co.a
		}
	}
	rs.co.set = true
}

// Resonate filters one sample, recomputing coefficients only if
// frequency or bandwidth differ from the previous call.
func (rs *Resonator) Resonate(in, frequency, bandwidth float64) float64 {
	rs.setParams(frequency, bandwidth)
	out := rs.co.a*in + rs.co.b*rs.p1 + rs.co.c*rs.p2
	rs.p2 = rs.p1
	if rs.anti {
		rs.p1 = in
	} else {
		rs.p1 = out
	}
	return out
}
