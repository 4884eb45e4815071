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
	"seehuhn.de/go/iconfont/funit"
	"seehuhn.de/go/iconfont/sfnt"
)

// A Point is a point in a glyph outline.
type Point struct {
	X, Y    funit.Int16
	OnCurve bool
}

// A Contour describes a connected part of a glyph outline.
// Contours are implicitly closed.
type Contour []Point

// Glyph represents a single simple glyph in a TrueType font.
// A glyph with no contours leaves no marks on the page.
type Glyph struct {
	funit.Rect
	Contours []Contour
}

const (
	flagOnCurve = 0x01
	flagXShort  = 0x02
	flagYShort  = 0x04
	flagRepeat  = 0x08
	flagXSame   = 0x10 // or sign bit for short x
	flagYSame   = 0x20 // or sign bit for short y
)

// encode returns the wire format of the glyph, padded to a multiple of
// two bytes.  Empty glyphs encode to zero bytes.
func (g *Glyph) encode() ([]byte, error) {
	if g == nil || len(g.Contours) == 0 {
		return nil, nil
	}
	if len(g.Contours) > 0x7FFF {
		return nil, errTooComplex
	}

	numPoints := 0
	for _, cc := range g.Contours {
		numPoints += len(cc)
	}
	if numPoints > 0xFFFF {
		return nil, errTooComplex
	}

	// per-point flags and coordinate bytes
	flags := make([]byte, 0, numPoints)
	var xData, yData []byte
	var x, y funit.Int16
	for _, cc := range g.Contours {
		for _, p := range cc {
			var flag byte
			if p.OnCurve {
				flag |= flagOnCurve
			}

			dx := int(p.X) - int(x)
			switch {
			case dx == 0:
				flag |= flagXSame
			case dx >= -255 && dx <= 255:
				flag |= flagXShort
				if dx > 0 {
					flag |= flagXSame
				} else {
					dx = -dx
				}
				xData = append(xData, byte(dx))
			default:
				xData = append(xData, byte(dx>>8), byte(dx))
			}

			dy := int(p.Y) - int(y)
			switch {
			case dy == 0:
				flag |= flagYSame
			case dy >= -255 && dy <= 255:
				flag |= flagYShort
				if dy > 0 {
					flag |= flagYSame
				} else {
					dy = -dy
				}
				yData = append(yData, byte(dy))
			default:
				yData = append(yData, byte(dy>>8), byte(dy))
			}

			flags = append(flags, flag)
			x, y = p.X, p.Y
		}
	}

	buf := make([]byte, 0, 10+2*len(g.Contours)+2+len(flags)+len(xData)+len(yData))
	numContours := int16(len(g.Contours))
	buf = append(buf,
		byte(numContours>>8),
		byte(numContours),
		byte(g.LLx>>8),
		byte(g.LLx),
		byte(g.LLy>>8),
		byte(g.LLy),
		byte(g.URx>>8),
		byte(g.URx),
		byte(g.URy>>8),
		byte(g.URy))

	end := -1
	for _, cc := range g.Contours {
		end += len(cc)
		buf = append(buf, byte(end>>8), byte(end))
	}

	// no hinting instructions
	buf = append(buf, 0, 0)

	// run-length compress the flags
	for i := 0; i < len(flags); {
		j := i + 1
		for j < len(flags) && flags[j] == flags[i] && j-i < 256 {
			j++
		}
		if j-i > 1 {
			buf = append(buf, flags[i]|flagRepeat, byte(j-i-1))
		} else {
			buf = append(buf, flags[i])
		}
		i = j
	}

	buf = append(buf, xData...)
	buf = append(buf, yData...)

	for len(buf)%glyfAlign != 0 {
		buf = append(buf, 0)
	}

	return buf, nil
}

// decodeGlyph reads the wire format of a simple glyph.
func decodeGlyph(data []byte) (*Glyph, error) {
	if len(data) == 0 {
		return nil, nil
	} else if len(data) < 10 {
		return nil, &sfnt.InvalidFontError{
			SubSystem: "sfnt/glyf",
			Reason:    "incomplete glyph header",
		}
	}

	numCont := int16(data[0])<<8 | int16(data[1])
	if numCont < 0 {
		return nil, &sfnt.NotSupportedError{
			SubSystem: "sfnt/glyf",
			Feature:   "composite glyphs",
		}
	}

	g := &Glyph{
		Rect: funit.Rect{
			LLx: funit.Int16(data[2])<<8 | funit.Int16(data[3]),
			LLy: funit.Int16(data[4])<<8 | funit.Int16(data[5]),
			URx: funit.Int16(data[6])<<8 | funit.Int16(data[7]),
			URy: funit.Int16(data[8])<<8 | funit.Int16(data[9]),
		},
	}

	buf := data[10:]
	numContours := int(numCont)
	if numContours == 0 {
		// A glyph without contours leaves no marks.  Normalise to nil,
		// discarding the (meaningless) bounding box.
		return nil, nil
	}
	if len(buf) < 2*numContours+2 {
		return nil, errInvalidGlyphData
	}
	endPtsOfContours := make([]uint16, numContours)
	for i := 0; i < numContours; i++ {
		endPtsOfContours[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
	}
	buf = buf[2*numContours:]
	numPoints := int(endPtsOfContours[numContours-1]) + 1

	instructionLength := int(buf[0])<<8 | int(buf[1])
	if len(buf) < 2+instructionLength {
		return nil, errInvalidGlyphData
	}
	buf = buf[2+instructionLength:]

	// decode the flags
	ff := make([]byte, numPoints)
	i := 0
	for i < numPoints {
		if len(buf) < 1 {
			return nil, errInvalidGlyphData
		}
		flags := buf[0]
		buf = buf[1:]
		ff[i] = flags
		i++
		if flags&flagRepeat != 0 {
			if len(buf) < 1 {
				return nil, errInvalidGlyphData
			}
			count := buf[0]
			buf = buf[1:]
			for count > 0 && i < numPoints {
				ff[i] = flags
				i++
				count--
			}
		}
	}

	// decode the x-coordinates
	xx := make([]funit.Int16, numPoints)
	var x funit.Int16
	for i, flags := range ff {
		if flags&flagXShort != 0 {
			if len(buf) < 1 {
				return nil, errInvalidGlyphData
			}
			dx := funit.Int16(buf[0])
			buf = buf[1:]
			if flags&flagXSame != 0 {
				x += dx
			} else {
				x -= dx
			}
		} else if flags&flagXSame == 0 {
			if len(buf) < 2 {
				return nil, errInvalidGlyphData
			}
			dx := funit.Int16(buf[0])<<8 | funit.Int16(buf[1])
			buf = buf[2:]
			x += dx
		}
		xx[i] = x
	}

	// decode the y-coordinates
	yy := make([]funit.Int16, numPoints)
	var y funit.Int16
	for i, flags := range ff {
		if flags&flagYShort != 0 {
			if len(buf) < 1 {
				return nil, errInvalidGlyphData
			}
			dy := funit.Int16(buf[0])
			buf = buf[1:]
			if flags&flagYSame != 0 {
				y += dy
			} else {
				y -= dy
			}
		} else if flags&flagYSame == 0 {
			if len(buf) < 2 {
				return nil, errInvalidGlyphData
			}
			dy := funit.Int16(buf[0])<<8 | funit.Int16(buf[1])
			buf = buf[2:]
			y += dy
		}
		yy[i] = y
	}

	cc := make([]Contour, numContours)
	start := 0
	for i := 0; i < numContours; i++ {
		end := int(endPtsOfContours[i]) + 1
		if end <= start || end > numPoints {
			return nil, errInvalidGlyphData
		}
		pp := make([]Point, end-start)
		for j := start; j < end; j++ {
			pp[j-start] = Point{xx[j], yy[j], ff[j]&flagOnCurve != 0}
		}
		start = end

		cc[i] = pp
	}
	g.Contours = cc

	return g, nil
}

const glyfAlign = 2

var errInvalidGlyphData = &sfnt.InvalidFontError{
	SubSystem: "sfnt/glyf",
	Reason:    "invalid glyph data",
}

var errTooComplex = &sfnt.InvalidFontError{
	SubSystem: "sfnt/glyf",
	Reason:    "glyph outline too complex",
}
