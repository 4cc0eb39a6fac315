// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectrum computes windowed power spectra of synthesized audio,
// used to verify formant placement.
package spectrum

import (
	"fmt"
	"math"

	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/openphon/phonate/sound"
)

// Analyzer holds the state for short-window fourier analysis
type Analyzer struct {
	WinSamples int     `desc:"number of samples per analysis window"`
	SampleRate int     `desc:"sample rate of the signal being analyzed"`
	CompLogPow bool    `def:"true" desc:"compute the log of the power and save that to a separate tensor -- generally more useful for visualization of power than raw power values"`
	LogMin     float64 `viewif:"CompLogPow" def:"-100" desc:"minimum value a log can produce -- puts a lower limit on log output"`
	LogOffset  float64 `viewif:"CompLogPow" def:"0" desc:"add this amount when taking the log of the power -- e.g., 1.0 makes everything positive"`

	Hann []float64    `view:"-" desc:" hann window coefficients"`
	Fft  []complex128 `inactive:"+" desc:" fourier transform output complex representation"`

	fft *fourier.CmplxFFT
}

// Init sets defaults and allocates the window and transform buffers for
// the given window size and sample rate.
func (sa *Analyzer) Init(winSamples, sampleRate int) {
	sa.WinSamples = winSamples
	sa.SampleRate = sampleRate
	sa.CompLogPow = true
	sa.LogOffset = 0
	sa.LogMin = -100
	sa.Hann = make([]float64, winSamples)
	for i := range sa.Hann {
		sa.Hann[i] = 0.5 * (1.0 - math.Cos(twoPi*float64(i)/float64(winSamples)))
	}
	sa.Fft = make([]complex128, winSamples)
	sa.fft = fourier.NewCmplxFFT(winSamples)
}

const twoPi = 2.0 * math.Pi

// NumBins returns the number of power spectrum bins, winSamples/2 + 1.
func (sa *Analyzer) NumBins() int {
	return sa.WinSamples/2 + 1
}

// BinFreq returns the center frequency in Hz of the given bin.
func (sa *Analyzer) BinFreq(bin int) float64 {
	return float64(bin) * float64(sa.SampleRate) / float64(sa.WinSamples)
}

// Input loads one window of samples, applies the hann window and runs
// the fourier transform.
func (sa *Analyzer) Input(windowIn *etensor.Float32) {
	for i := 0; i < sa.WinSamples; i++ {
		sa.Fft[i] = complex(windowIn.FloatVal1D(i)*sa.Hann[i], 0)
	}
	sa.Fft = sa.fft.Coefficients(nil, sa.Fft)
}

// Power computes the power spectrum from the transform of the last
// input window, and the log power if enabled.
func (sa *Analyzer) Power(power, logPower *etensor.Float32) {
	power.SetShape([]int{sa.NumBins()}, nil, nil)
	if sa.CompLogPow {
		logPower.SetShape([]int{sa.NumBins()}, nil, nil)
	}
	for k := 0; k < sa.NumBins(); k++ {
		rl := real(sa.Fft[k])
		im := imag(sa.Fft[k])
		powr := rl*rl + im*im
		power.SetFloat1D(k, powr)

		if sa.CompLogPow {
			powr += sa.LogOffset
			var logp float64
			if powr == 0 {
				logp = sa.LogMin
			} else {
				logp = math.Log(powr)
			}
			logPower.SetFloat1D(k, logp)
		}
	}
}

// Analyze runs one window of the wave starting at the given sample
// offset through Input and Power.
func (sa *Analyzer) Analyze(snd *sound.Wave, start int, power, logPower *etensor.Float32) error {
	n := snd.Buf.NumFrames()
	if start < 0 || start+sa.WinSamples > n {
		return fmt.Errorf("spectrum: window [%d, %d) out of range for %d samples", start, start+sa.WinSamples, n)
	}
	for i := 0; i < sa.WinSamples; i++ {
		sa.Fft[i] = complex(float64(snd.FloatAtIdx(start+i))*sa.Hann[i], 0)
	}
	sa.Fft = sa.fft.Coefficients(nil, sa.Fft)
	sa.Power(power, logPower)
	return nil
}

// Peak returns the frequency in Hz of the strongest power bin, skipping
// the dc bin.
func (sa *Analyzer) Peak(power *etensor.Float32) float64 {
	best := 1
	for k := 2; k < power.Len(); k++ {
		if power.FloatVal1D(k) > power.FloatVal1D(best) {
			best = k
		}
	}
	return sa.BinFreq(best)
}
