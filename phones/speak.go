// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phones

import (
	"fmt"
	"strings"

	"github.com/openphon/phonate/frames"
)

// RestMs is the silence queued for the "_" rest symbol.
const RestMs = 120

// Speak queues the frames for the space-separated phoneme symbols in
// text, applying the voice to each. "_" inserts a rest. Requests are
// tagged with their position in text, so frames.Manager.LastTag tells
// the caller how far playback has progressed. Returns the number of
// requests queued; on an unknown symbol it stops there and reports it.
func Speak(fm *frames.Manager, pt *Table, vc *Voice, text string) (int, error) {
	n := 0
	for _, sym := range strings.Fields(text) {
		if sym == "_" {
			fm.Queue(nil, RestMs, 0, n, false)
			n++
			continue
		}
		fr, ok := pt.Frame(sym)
		if !ok {
			return n, fmt.Errorf("phones: unknown phoneme %q", sym)
		}
		dur, fade, _ := pt.Timing(sym)
		vc.Apply(fr)
		fm.Queue(fr, dur, fade, n, false)
		n++
	}
	return n, nil
}
