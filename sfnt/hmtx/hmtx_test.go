// seehuhn.de/go/iconfont - a library for building icon fonts from SVG sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hmtx

import (
	"bytes"
	"encoding/binary"
	"testing"

	"seehuhn.de/go/iconfont/funit"
)

func TestEncodeUniform(t *testing.T) {
	n := 5
	info := &Info{
		Width:       make([]uint16, n),
		GlyphExtent: make([]funit.Rect, n),
		LSB:         make([]int16, n),
		Ascent:      1000,
	}
	for i := range info.Width {
		info.Width[i] = 1000
	}
	hheaData, hmtxData := info.Encode()

	// all advances are equal, so a single long record plus short
	// records is enough
	numLong := binary.BigEndian.Uint16(hheaData[len(hheaData)-2:])
	if numLong != 1 {
		t.Errorf("numOfLongHorMetrics = %d, want 1", numLong)
	}
	wantLen := 4*int(numLong) + 2*(n-int(numLong))
	if len(hmtxData) != wantLen {
		t.Errorf("hmtx length = %d, want %d", len(hmtxData), wantLen)
	}

	info2, err := Decode(hheaData, hmtxData)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range info2.Width {
		if w != 1000 {
			t.Errorf("glyph %d: advance %d, want 1000", i, w)
		}
		if info2.LSB[i] != 0 {
			t.Errorf("glyph %d: lsb %d, want 0", i, info2.LSB[i])
		}
	}
	if info2.Ascent != 1000 || info2.Descent != 0 {
		t.Errorf("ascent/descent = %d/%d", info2.Ascent, info2.Descent)
	}
}

func TestEncodeMixed(t *testing.T) {
	info := &Info{
		Width:       []uint16{500, 600, 700, 700, 700},
		GlyphExtent: make([]funit.Rect, 5),
		LSB:         []int16{0, -10, 20, 0, 0},
		Ascent:      800,
		Descent:     -200,
	}
	hheaData, hmtxData := info.Encode()

	numLong := binary.BigEndian.Uint16(hheaData[len(hheaData)-2:])
	if numLong != 3 {
		t.Errorf("numOfLongHorMetrics = %d, want 3", numLong)
	}

	info2, err := Decode(hheaData, hmtxData)
	if err != nil {
		t.Fatal(err)
	}
	for i := range info.Width {
		if info2.Width[i] != info.Width[i] {
			t.Errorf("glyph %d: advance %d, want %d", i, info2.Width[i], info.Width[i])
		}
		if info2.LSB[i] != info.LSB[i] {
			t.Errorf("glyph %d: lsb %d, want %d", i, info2.LSB[i], info.LSB[i])
		}
	}
}

func TestAdvanceWidthMax(t *testing.T) {
	info := &Info{
		Width:       []uint16{100, 1200, 500},
		GlyphExtent: make([]funit.Rect, 3),
		LSB:         make([]int16, 3),
	}
	hheaData, _ := info.Encode()

	var hhea binaryHhea
	err := binary.Read(bytes.NewReader(hheaData), binary.BigEndian, &hhea)
	if err != nil {
		t.Fatal(err)
	}
	if hhea.AdvanceWidthMax != 1200 {
		t.Errorf("advanceWidthMax = %d, want 1200", hhea.AdvanceWidthMax)
	}
}
