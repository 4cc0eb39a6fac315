// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sound

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/emer/etable/etensor"
)

func TestFromSamples(t *testing.T) {
	samples := []int16{-3, -2, -1, 0, 1, 2, 3}
	snd := FromSamples(samples, 8000)
	if snd.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %v, want 8000", snd.SampleRate())
	}
	if snd.Channels() != 1 {
		t.Errorf("Channels() = %v, want 1", snd.Channels())
	}
	if snd.Buf.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %v, want 16", snd.Buf.SourceBitDepth)
	}
	if len(snd.Buf.Data) != len(samples) {
		t.Fatalf("len(Data) = %v, want %v", len(snd.Buf.Data), len(samples))
	}
	for i, s := range samples {
		if snd.Buf.Data[i] != int(s) {
			t.Errorf("Data[%v] = %v, want %v", i, snd.Buf.Data[i], s)
		}
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	samples := make([]int16, 256)
	for i := range samples {
		samples[i] = int16(100*i - 12800)
	}
	snd := FromSamples(samples, 22050)

	fn := filepath.Join(t.TempDir(), "roundtrip.wav")
	if err := snd.WriteWave(fn); err != nil {
		t.Fatalf("WriteWave() error: %v", err)
	}

	back := &Wave{}
	if err := back.Load(fn); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if back.SampleRate() != 22050 {
		t.Errorf("SampleRate() after load = %v, want 22050", back.SampleRate())
	}
	if back.Channels() != 1 {
		t.Errorf("Channels() after load = %v, want 1", back.Channels())
	}
	if len(back.Buf.Data) != len(samples) {
		t.Fatalf("len(Data) after load = %v, want %v", len(back.Buf.Data), len(samples))
	}
	for i, s := range samples {
		if back.Buf.Data[i] != int(s) {
			t.Fatalf("Data[%v] after load = %v, want %v", i, back.Buf.Data[i], s)
		}
	}
}

func TestFloatAtIdx(t *testing.T) {
	snd := FromSamples([]int16{0, 16384, -16384, 32767, -32767}, 22050)
	want := []float64{0, 16384.0 / 32767.0, -16384.0 / 32767.0, 1, -1}
	for i, w := range want {
		got := float64(snd.FloatAtIdx(i))
		if math.Abs(got-w) > 1e-6 {
			t.Errorf("FloatAtIdx(%v) = %v, want %v", i, got, w)
		}
	}
	if ma := snd.MaxAbs(); math.Abs(float64(ma)-1) > 1e-6 {
		t.Errorf("MaxAbs() = %v, want 1", ma)
	}
}

func TestBytesLittleEndian(t *testing.T) {
	snd := FromSamples([]int16{258, -2}, 22050)
	b := snd.Bytes()
	want := []byte{0x02, 0x01, 0xFE, 0xFF}
	if len(b) != len(want) {
		t.Fatalf("len(Bytes()) = %v, want %v", len(b), len(want))
	}
	for i, w := range want {
		if b[i] != w {
			t.Errorf("Bytes()[%v] = %#x, want %#x", i, b[i], w)
		}
	}
}

func TestToTensor(t *testing.T) {
	snd := FromSamples([]int16{0, 16384, -16384, 32767, -32767}, 22050)
	samples := &etensor.Float32{}
	snd.ToTensor(samples, 0)
	if samples.Len() != 5 {
		t.Fatalf("tensor Len() = %v, want 5", samples.Len())
	}
	for i := 0; i < 5; i++ {
		got := samples.FloatVal1D(i)
		want := float64(snd.FloatAtIdx(i))
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("tensor[%v] = %v, want %v", i, got, want)
		}
	}
}

// constSource fills every buffer with a fixed sample value.
type constSource struct {
	val int16
}

func (cs *constSource) Generate(buf []int16) int {
	for i := range buf {
		buf[i] = cs.val
	}
	return len(buf)
}

// drySource models an engine with no frame source attached.
type drySource struct{}

func (ds *drySource) Generate(buf []int16) int { return 0 }

func TestRender(t *testing.T) {
	snd := Render(&constSource{val: 1000}, 2500, 22050)
	if snd.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %v, want 22050", snd.SampleRate())
	}
	if len(snd.Buf.Data) != 2500 {
		t.Fatalf("len(Data) = %v, want 2500", len(snd.Buf.Data))
	}
	for i, v := range snd.Buf.Data {
		if v != 1000 {
			t.Fatalf("Data[%v] = %v, want 1000", i, v)
		}
	}
}

func TestRenderDrySource(t *testing.T) {
	snd := Render(&drySource{}, 100, 22050)
	if len(snd.Buf.Data) != 100 {
		t.Fatalf("len(Data) = %v, want 100", len(snd.Buf.Data))
	}
	for i, v := range snd.Buf.Data {
		if v != 0 {
			t.Errorf("Data[%v] = %v, want 0", i, v)
		}
	}
}
