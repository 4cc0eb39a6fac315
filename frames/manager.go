// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frames turns discrete, timed frame requests into the smooth
// per-sample frame stream the synthesizer consumes. Producers queue a
// target frame with a duration and a fade time; the manager cross-fades
// from whatever is currently sounding, holds the target for its minimum
// duration, and then moves on to the next request.
package frames

import (
	"sync"

	"github.com/openphon/phonate/synth"
)

// Request is one queued target frame. Durations are in samples.
type Request struct {
	Frame       synth.Frame `desc:"target parameters to fade toward and hold"`
	MinSamples  int         `desc:"minimum number of samples this frame stays current"`
	FadeSamples int         `desc:"number of samples spent interpolating from the previous frame"`
	Tag         int         `desc:"caller-chosen id reported by LastTag once the request starts playing"`
	silent      bool
}

// Manager holds the request queue and produces one interpolated frame
// per sample. Queue and Reset may be called from any goroutine;
// CurrentFrame must be driven by a single consumer, normally the
// synthesis engine. The frame returned by CurrentFrame is borrowed and
// only valid until the next call.
type Manager struct {
	mu         sync.Mutex
	sampleRate int
	queue      []*Request
	active     *Request
	counter    int
	cur        synth.Frame
	prev       synth.Frame
	haveCur    bool
	silence    bool
	lastTag    int
}

func New(sampleRate int) *Manager {
	fm := &Manager{sampleRate: sampleRate, lastTag: -1}
	return fm
}

func (fm *Manager) SampleRate() int {
	return fm.sampleRate
}

func (fm *Manager) msToSamples(ms float64) int {
	return int(ms * float64(fm.sampleRate) / 1000.0)
}

// Queue appends a frame request. frame is copied, so the caller may
// reuse it. A nil frame requests silence for the given duration.
// minMs is how long the frame stays current once reached, fadeMs how
// long the transition from the previous frame takes; fades longer than
// the duration are shortened to it. With purge set, all waiting
// requests are dropped and the new one starts at the next sample,
// fading from whatever mix is currently sounding.
func (fm *Manager) Queue(frame *synth.Frame, minMs, fadeMs float64, tag int, purge bool) {
	req := &Request{
		MinSamples:  fm.msToSamples(minMs),
		FadeSamples: fm.msToSamples(fadeMs),
		Tag:         tag,
	}
	if frame != nil {
		req.Frame = *frame
	} else {
		req.silent = true
	}
	if req.MinSamples < 1 {
		req.MinSamples = 1
	}
	if req.FadeSamples > req.MinSamples {
		req.FadeSamples = req.MinSamples
	}

	fm.mu.Lock()
	if purge {
		fm.queue = fm.queue[:0]
		fm.active = nil
	}
	fm.queue = append(fm.queue, req)
	fm.mu.Unlock()
}

// promote makes the head of the queue the active request. The fade
// starts from the last produced frame; if nothing has sounded yet the
// fade source is the target itself, so the frame applies at once.
func (fm *Manager) promote() {
	req := fm.queue[0]
	fm.queue = fm.queue[1:]
	if fm.haveCur {
		fm.prev = fm.cur
	} else {
		fm.prev = req.Frame
	}
	fm.active = req
	fm.counter = 0
	fm.lastTag = req.Tag
}

// CurrentFrame advances the schedule by one sample and returns the
// frame for it, or nil for silence. When the queue runs dry the last
// frame keeps sounding until a new request or Reset arrives.
func (fm *Manager) CurrentFrame() *synth.Frame {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	if fm.active != nil && fm.counter >= fm.active.MinSamples && len(fm.queue) > 0 {
		fm.promote()
	}
	if fm.active == nil {
		if len(fm.queue) == 0 {
			if fm.silence || !fm.haveCur {
				return nil
			}
			return &fm.cur
		}
		fm.promote()
	}

	req := fm.active
	fm.counter++
	if req.silent {
		if fm.counter >= req.MinSamples {
			fm.haveCur = false
			fm.silence = true
		}
		return nil
	}
	if req.FadeSamples > 0 && fm.counter <= req.FadeSamples {
		pos := float64(fm.counter) / float64(req.FadeSamples)
		fm.cur.FadeBetween(&fm.prev, &req.Frame, pos)
	} else {
		fm.cur = req.Frame
		if req.Frame.EndVoicePitch > 0 && req.Frame.EndVoicePitch != req.Frame.VoicePitch {
			pos := glidePos(fm.counter, req.FadeSamples, req.MinSamples)
			fm.cur.VoicePitch = synth.Fade(req.Frame.VoicePitch, req.Frame.EndVoicePitch, pos)
		}
	}
	fm.haveCur = true
	fm.silence = false
	return &fm.cur
}

// glidePos maps the sample counter onto the 0..1 pitch glide that runs
// from the end of the fade to the end of the minimum duration.
func glidePos(counter, fade, min int) float64 {
	if counter >= min || min <= fade {
		return 1
	}
	return float64(counter-fade) / float64(min-fade)
}

// LastTag returns the tag of the request most recently promoted to
// active, or -1 if none has played yet. Callers use it to track how far
// an utterance has progressed.
func (fm *Manager) LastTag() int {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return fm.lastTag
}

// Pending counts the requests that have not finished their minimum
// duration yet, including the active one. Zero means only the sustained
// tail of the last frame remains.
func (fm *Manager) Pending() int {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	n := len(fm.queue)
	if fm.active != nil && fm.counter < fm.active.MinSamples {
		n++
	}
	return n
}

// Reset drops all requests and returns the manager to silence.
func (fm *Manager) Reset() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.queue = fm.queue[:0]
	fm.active = nil
	fm.counter = 0
	fm.haveCur = false
	fm.silence = false
	fm.lastTag = -1
}
