// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synth implements a cascade/parallel formant synthesizer.
// An Engine pulls one control Frame per output sample from a
// FrameSource, excites the cascade bank with a glottal waveform and the
// parallel bank with frication noise, and writes signed 16-bit samples.
package synth

import "math/rand"

const (
	// SampleScale converts the unit-level filter output to 16-bit range.
	SampleScale = 4000.0
	// SampleLimit is the clamp applied after scaling.
	SampleLimit = 32000.0

	defaultNoiseSeed = 7892347
)

// FrameSource supplies the control frame for each output sample. A nil
// frame means silence. The returned pointer is only borrowed: the
// engine reads it during the current sample and never retains it.
type FrameSource interface {
	CurrentFrame() *Frame
}

// Engine is the top-level synthesizer. It is not safe for concurrent
// use; drive Generate from a single goroutine.
type Engine struct {
	sampleRate int
	voice      VoiceSource
	fricNoise  NoiseGenerator
	cascade    CascadeBank
	parallel   ParallelBank
	source     FrameSource
}

func New(sampleRate int) *Engine {
	eng := &Engine{}
	eng.Init(sampleRate)
	return eng
}

// Init configures all generators for the given sample rate. The noise
// generators start from a fixed default seed, so two freshly
// initialized engines fed identical frames produce identical output.
func (eng *Engine) Init(sampleRate int) {
	eng.sampleRate = sampleRate
	eng.voice.Init(sampleRate, rand.NewSource(defaultNoiseSeed))
	eng.fricNoise.Init(rand.NewSource(defaultNoiseSeed + 1))
	eng.cascade.Init(sampleRate)
	eng.parallel.Init(sampleRate)
}

func (eng *Engine) SampleRate() int {
	return eng.sampleRate
}

// SetFrameSource attaches the source the engine pulls frames from.
func (eng *Engine) SetFrameSource(src FrameSource) {
	eng.source = src
}

// SeedNoise reseeds the aspiration and frication noise generators.
// Aspiration uses seed, frication seed+1, so the two streams never
// collapse into the same sequence.
func (eng *Engine) SeedNoise(seed int64) {
	eng.voice.aspiration.Init(rand.NewSource(seed))
	eng.fricNoise.Init(rand.NewSource(seed + 1))
}

// Reset clears all filter and oscillator state. Frame source and noise
// streams are left alone.
func (eng *Engine) Reset() {
	eng.voice.Reset()
	eng.fricNoise.Reset()
	eng.cascade.Reset()
	eng.parallel.Reset()
}

// Generate fills buf with synthesized samples, one frame query per
// sample, and returns the number of samples written. Without a frame
// source it returns 0 and leaves buf untouched; a nil frame from the
// source yields a zero sample.
func (eng *Engine) Generate(buf []int16) int {
	if eng.source == nil {
		return 0
	}
	for i := range buf {
		frame := eng.source.CurrentFrame()
		if frame == nil {
			buf[i] = 0
			continue
		}
		excitation, glottisOpen := eng.voice.Next(frame)
		cascadeOut := eng.cascade.Next(frame, glottisOpen, excitation)
		fric := eng.fricNoise.Next() * frame.FricationAmplitude
		parallelOut := eng.parallel.Next(frame, fric)
		out := (cascadeOut + parallelOut) * frame.Gain
		buf[i] = clip(out * SampleScale)
	}
	return len(buf)
}

func clip(v float64) int16 {
	if v > SampleLimit {
		return SampleLimit
	}
	if v < -SampleLimit {
		return -SampleLimit
	}
	return int16(v)
}
