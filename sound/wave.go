// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sound holds synthesized audio as wav-compatible buffers and
// moves it to files, tensors and the audio device.
package sound

import (
	"encoding/binary"
	"log"
	"os"

	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Wave is an in-memory PCM signal.
type Wave struct {
	Buf *audio.IntBuffer `inactive:"+"`
}

// FromSamples wraps freshly generated 16-bit samples as a mono wave at
// the given sample rate.
func FromSamples(samples []int16, rate int) *Wave {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return &Wave{Buf: &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}}
}

// Load loads the sound file and decodes it
func (snd *Wave) Load(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		log.Printf("sound.Load: couldn't open %s %v", fn, err)
		return err
	}
	defer f.Close()
	d := wav.NewDecoder(f)
	snd.Buf, err = d.FullPCMBuffer()
	if err != nil {
		log.Printf("sound.Load: couldn't decode %s %v", fn, err)
	}
	return err
}

// WriteWave encodes the signal data and writes it to file using the
// sample rate and other values of the buf object
func (snd *Wave) WriteWave(fn string) error {
	out, err := os.Create(fn)
	if err != nil {
		log.Printf("unable to create %s: %v", fn, err)
		return err
	}

	PCM := 1
	e := wav.NewEncoder(out, snd.SampleRate(), snd.Buf.SourceBitDepth, snd.Channels(), PCM)
	if err = e.Write(snd.Buf); err != nil {
		log.Printf("Encoding failed on write: %v", err)
		return err
	}

	if err = e.Close(); err != nil {
		log.Printf("could not close wav file encoder")
		out.Close()
		return err
	}
	return out.Close()
}

// SampleRate returns the sample rate of the sound or 0 if snd is nil
func (snd *Wave) SampleRate() int {
	if snd == nil {
		log.Printf("sound.SampleRate: Sound is nil")
		return 0
	}
	return int(snd.Buf.Format.SampleRate)
}

// Channels returns the number of channels in the wav data or 0 if snd is nil
func (snd *Wave) Channels() int {
	if snd == nil {
		log.Printf("sound.Channels: Sound is nil")
		return 0
	}
	return int(snd.Buf.Format.NumChannels)
}

// ToTensor converts sound data to a floating point etensor with
// normalized -1..1 values, for use in signal processing routines. A
// specific channel can be selected (the tensor is a single-dimensional
// matrix of frames size), and -1 gets all available channels (two
// dimensions, channels outer, frames inner).
func (snd *Wave) ToTensor(samples *etensor.Float32, channel int) bool {
	nFrames := snd.Buf.NumFrames()

	if channel < 0 && snd.Channels() > 1 {
		shape := make([]int, 2)
		shape[0] = snd.Channels()
		shape[1] = nFrames
		samples.SetShape(shape, nil, nil)
		idx := 0
		for i := 0; i < nFrames; i++ {
			for c := 0; c < snd.Channels(); c, idx = c+1, idx+1 {
				samples.SetFloat([]int{c, i}, float64(snd.FloatAtIdx(idx)))
			}
		}
	} else {
		shape := make([]int, 1)
		shape[0] = nFrames
		samples.SetShape(shape, nil, nil)

		if snd.Channels() == 1 {
			for i := 0; i < nFrames; i++ {
				samples.SetFloat1D(i, float64(snd.FloatAtIdx(i)))
			}
		} else {
			idx := 0
			for i := 0; i < nFrames; i++ {
				samples.SetFloat1D(i, float64(snd.FloatAtIdx(idx+channel)))
				idx += snd.Channels()
			}
		}
	}
	return true
}

// FloatAtIdx returns the sample at idx normalized by the source bit depth.
func (snd *Wave) FloatAtIdx(idx int) float32 {
	switch snd.Buf.SourceBitDepth {
	case 32:
		return float32(snd.Buf.Data[idx]) / float32(0x7FFFFFFF)
	case 24:
		return float32(snd.Buf.Data[idx]) / float32(0x7FFFFF)
	case 16:
		return float32(snd.Buf.Data[idx]) / float32(0x7FFF)
	case 8:
		return float32(snd.Buf.Data[idx]) / float32(0x7F)
	}
	return 0
}

// MaxAbs returns the peak normalized magnitude of the wave.
func (snd *Wave) MaxAbs() float32 {
	max := float32(0)
	for i := range snd.Buf.Data {
		v := math32.Abs(snd.FloatAtIdx(i))
		if v > max {
			max = v
		}
	}
	return max
}

// Bytes returns the samples as little-endian 16-bit PCM, the layout the
// audio device consumes.
func (snd *Wave) Bytes() []byte {
	b := make([]byte, 2*len(snd.Buf.Data))
	for i, s := range snd.Buf.Data {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(int16(s)))
	}
	return b
}
