// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sound

import (
	"log"

	"github.com/hajimehoshi/oto"
)

// bitDepthInBytes is what we hand the device, matching the 16-bit
// buffers the synthesizer produces.
const bitDepthInBytes = 2

// Play sends the wave to the default audio device and blocks until the
// device has consumed it.
func (snd *Wave) Play() error {
	c, err := oto.NewContext(snd.SampleRate(), snd.Channels(), bitDepthInBytes, 4096)
	if err != nil {
		log.Printf("sound.Play: error creating oto context: %v", err)
		return err
	}
	defer c.Close()

	p := c.NewPlayer()
	if _, err = p.Write(snd.Bytes()); err != nil {
		log.Printf("sound.Play: error writing to player: %v", err)
		p.Close()
		return err
	}
	return p.Close()
}

// PlayFile loads a wav file and plays it through the audio device.
func PlayFile(fn string) error {
	snd := &Wave{}
	if err := snd.Load(fn); err != nil {
		return err
	}
	return snd.Play()
}
