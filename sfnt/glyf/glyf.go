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

// Package glyf implements reading and writing the "glyf" and "loca" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
package glyf

// Glyphs contains the information from a "glyf" table.
type Glyphs []*Glyph

// Encoded contains the binary representation of the "glyf" and "loca"
// tables.
type Encoded struct {
	GlyfData   []byte
	LocaData   []byte
	LocaFormat int16
}

// Decode converts the data from the "glyf" and "loca" tables into a slice of
// Glyphs.  The value for LocaFormat is specified in the indexToLocFormat
// entry in the "head" table.
func Decode(enc *Encoded) (Glyphs, error) {
	offs, err := decodeLoca(enc)
	if err != nil {
		return nil, err
	}

	numGlyphs := len(offs) - 1

	gg := make([]*Glyph, numGlyphs)
	for i := range gg {
		data := enc.GlyfData[offs[i]:offs[i+1]]
		g, err := decodeGlyph(data)
		if err != nil {
			return nil, err
		}
		gg[i] = g
	}

	return gg, nil
}

// Encode encodes the Glyphs into a "glyf" and "loca" table.
func (gg Glyphs) Encode() (*Encoded, error) {
	n := len(gg)

	offs := make([]int, n+1)
	bodies := make([][]byte, n)
	offs[0] = 0
	for i, g := range gg {
		body, err := g.encode()
		if err != nil {
			return nil, err
		}
		bodies[i] = body
		offs[i+1] = offs[i] + len(body)
	}
	locaData, locaFormat := encodeLoca(offs)

	glyfData := make([]byte, 0, offs[n])
	for _, body := range bodies {
		glyfData = append(glyfData, body...)
	}

	enc := &Encoded{
		GlyfData:   glyfData,
		LocaData:   locaData,
		LocaFormat: locaFormat,
	}

	return enc, nil
}

// Stats describes complexity limits of a set of glyphs, for use in the
// "maxp" table.
type Stats struct {
	NumGlyphs   int
	MaxPoints   uint16
	MaxContours uint16
}

// Stats computes the complexity limits of the glyphs.
func (gg Glyphs) Stats() Stats {
	stats := Stats{NumGlyphs: len(gg)}
	for _, g := range gg {
		if g == nil {
			continue
		}
		numPoints := 0
		for _, cc := range g.Contours {
			numPoints += len(cc)
		}
		if numPoints > int(stats.MaxPoints) {
			stats.MaxPoints = uint16(numPoints)
		}
		if len(g.Contours) > int(stats.MaxContours) {
			stats.MaxContours = uint16(len(g.Contours))
		}
	}
	return stats
}
