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

package glyf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/iconfont/funit"
)

func testGlyphs() Glyphs {
	triangle := &Glyph{
		Rect: funit.Rect{LLx: 0, LLy: 0, URx: 500, URy: 700},
		Contours: []Contour{
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 500, Y: 0, OnCurve: true},
				{X: 250, Y: 700, OnCurve: true},
			},
		},
	}
	curved := &Glyph{
		Rect: funit.Rect{LLx: 0, LLy: 0, URx: 1000, URy: 1000},
		Contours: []Contour{
			{
				{X: 0, Y: 500, OnCurve: true},
				{X: 0, Y: 1000, OnCurve: false},
				{X: 500, Y: 1000, OnCurve: true},
				{X: 1000, Y: 1000, OnCurve: false},
				{X: 1000, Y: 500, OnCurve: true},
				{X: 1000, Y: 0, OnCurve: false},
				{X: 500, Y: 0, OnCurve: true},
				{X: 0, Y: 0, OnCurve: false},
			},
			{
				{X: 300, Y: 300, OnCurve: true},
				{X: 700, Y: 300, OnCurve: true},
				{X: 700, Y: 700, OnCurve: true},
				{X: 300, Y: 700, OnCurve: true},
			},
		},
	}
	return Glyphs{nil, triangle, curved}
}

func TestRoundTrip(t *testing.T) {
	g1 := testGlyphs()

	enc, err := g1.Encode()
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(g1, g2); d != "" {
		t.Errorf("glyphs differ: %s", d)
	}
}

func TestEmptyGlyph(t *testing.T) {
	gg := Glyphs{nil, {}}
	enc, err := gg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(enc.GlyfData) != 0 {
		t.Errorf("expected empty glyf table, got %d bytes", len(enc.GlyfData))
	}

	g2, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if len(g2) != 2 {
		t.Fatalf("expected 2 glyphs, got %d", len(g2))
	}
	for i, g := range g2 {
		if g != nil {
			t.Errorf("glyph %d: expected nil, got %v", i, g)
		}
	}
}

func TestLocaFormat(t *testing.T) {
	gg := testGlyphs()
	enc, err := gg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if enc.LocaFormat != 0 {
		t.Errorf("expected short loca format, got %d", enc.LocaFormat)
	}
	if len(enc.LocaData) != 2*(len(gg)+1) {
		t.Errorf("wrong loca length %d", len(enc.LocaData))
	}
	if len(enc.GlyfData)%2 != 0 {
		t.Errorf("glyf table length %d is odd", len(enc.GlyfData))
	}
}

func TestStats(t *testing.T) {
	gg := testGlyphs()
	stats := gg.Stats()
	if stats.NumGlyphs != 3 {
		t.Errorf("wrong NumGlyphs %d", stats.NumGlyphs)
	}
	if stats.MaxPoints != 12 {
		t.Errorf("wrong MaxPoints %d", stats.MaxPoints)
	}
	if stats.MaxContours != 2 {
		t.Errorf("wrong MaxContours %d", stats.MaxContours)
	}
}

func TestCompositeRejected(t *testing.T) {
	// numberOfContours = -1 marks a composite glyph
	data := []byte{0xFF, 0xFF, 0, 0, 0, 0, 0, 100, 0, 100}
	_, err := decodeGlyph(data)
	if err == nil {
		t.Error("expected error for composite glyph")
	}
}

func FuzzGlyf(f *testing.F) {
	enc, err := testGlyphs().Encode()
	if err != nil {
		f.Fatal(err)
	}
	f.Add(enc.GlyfData, enc.LocaData, enc.LocaFormat)

	f.Fuzz(func(t *testing.T, glyfData, locaData []byte, locaFormat int16) {
		enc1 := &Encoded{
			GlyfData:   glyfData,
			LocaData:   locaData,
			LocaFormat: locaFormat,
		}
		g1, err := Decode(enc1)
		if err != nil {
			return
		}

		enc2, err := g1.Encode()
		if err != nil {
			t.Fatal(err)
		}
		g2, err := Decode(enc2)
		if err != nil {
			t.Fatal(err)
		}

		if d := cmp.Diff(g1, g2); d != "" {
			t.Errorf("glyphs differ: %s", d)
		}
	})
}
