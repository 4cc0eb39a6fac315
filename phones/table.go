// Copyright (c) 2025, The Phonate Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phones maps phoneme symbols to synthesizer frames. The
// inventory lives in an etable with one row per phoneme, so it can be
// inspected, extended at runtime, or loaded from a tab-separated file.
package phones

import (
	"log"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"

	"github.com/openphon/phonate/synth"
)

// Table is a phoneme inventory: symbol, timing and the full frame
// parameter vector per row.
type Table struct {
	Phones etable.Table `desc:"one row per phoneme: phone, duration, fade, phone_data"`
}

// Config sets up the table schema with no rows.
func (pt *Table) Config() {
	pt.Phones.SetMetaData("name", "Phones")
	pt.Phones.SetMetaData("desc", "Phoneme inventory with per-phone frame parameters")

	sch := etable.Schema{
		{"phone", etensor.STRING, nil, nil},
		{"duration", etensor.FLOAT64, nil, nil},
		{"fade", etensor.FLOAT64, nil, nil},
		{"phone_data", etensor.FLOAT32, []int{synth.NumParams}, []string{"params"}},
	}
	pt.Phones.SetFromSchema(sch, 0)
}

// AddPhone appends a phoneme row. Durations are in milliseconds.
func (pt *Table) AddPhone(symbol string, durMs, fadeMs float64, fr *synth.Frame) {
	pt.Phones.AddRows(1)
	row := pt.Phones.Rows - 1
	pt.Phones.SetCellString("phone", row, symbol)
	pt.Phones.SetCellFloat("duration", row, durMs)
	pt.Phones.SetCellFloat("fade", row, fadeMs)
	params := pt.Phones.ColByName("phone_data").SubSpace([]int{row}).(*etensor.Float32)
	fr.Values(params.Values)
}

// Row returns the row index of the given phoneme symbol, or -1.
func (pt *Table) Row(symbol string) int {
	pcol := pt.Phones.ColByName("phone")
	if pcol == nil {
		return -1
	}
	for i := 0; i < pcol.Len(); i++ {
		if pcol.StringVal1D(i) == symbol {
			return i
		}
	}
	return -1
}

// Frame returns a fresh frame holding the parameters of the given
// phoneme, or false if the symbol is not in the table.
func (pt *Table) Frame(symbol string) (*synth.Frame, bool) {
	row := pt.Row(symbol)
	if row < 0 {
		return nil, false
	}
	params := pt.Phones.ColByName("phone_data").SubSpace([]int{row}).(*etensor.Float32)
	fr := &synth.Frame{}
	fr.SetFromValues(params.Values)
	return fr, true
}

// Timing returns the duration and fade of the given phoneme in
// milliseconds.
func (pt *Table) Timing(symbol string) (durMs, fadeMs float64, ok bool) {
	row := pt.Row(symbol)
	if row < 0 {
		return 0, 0, false
	}
	durMs = pt.Phones.ColByName("duration").FloatVal1D(row)
	fadeMs = pt.Phones.ColByName("fade").FloatVal1D(row)
	return durMs, fadeMs, true
}

// OpenCSV replaces the table contents from a tab-separated file in the
// standard etable format.
func (pt *Table) OpenCSV(fn string) error {
	err := pt.Phones.OpenCSV(gi.FileName(fn), '\t')
	if err != nil {
		log.Printf("phones.OpenCSV: %v", err)
	}
	return err
}
