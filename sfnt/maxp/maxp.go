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

// Package maxp has code for reading and writing the "maxp" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// Info contains the information needed for the "maxp" table of a font
// with "glyf" outlines.  The glyphs are assumed to be simple and
// unhinted.
type Info struct {
	NumGlyphs   uint16
	MaxPoints   uint16
	MaxContours uint16
}

// Read reads the "maxp" table from r.  Only the glyph count and, for
// version 1.0 tables, the point and contour maxima are decoded.
func Read(r io.Reader) (*Info, error) {
	var buf [6]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return nil, err
	}

	version := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	info := &Info{
		NumGlyphs: uint16(buf[4])<<8 | uint16(buf[5]),
	}
	switch version {
	case 0x00005000:
		return info, nil
	case 0x00010000:
		var rest [4]byte
		_, err := io.ReadFull(r, rest[:])
		if err != nil {
			return nil, err
		}
		info.MaxPoints = uint16(rest[0])<<8 | uint16(rest[1])
		info.MaxContours = uint16(rest[2])<<8 | uint16(rest[3])
		return info, nil
	default:
		return nil, errors.New("sfnt/maxp: unknown version")
	}
}

// Encode encodes the information as a version 1.0 "maxp" table.
func (info *Info) Encode() []byte {
	enc := &binaryMaxp{
		Version:   0x00010000,
		NumGlyphs: info.NumGlyphs,

		MaxPoints:   info.MaxPoints,
		MaxContours: info.MaxContours,

		MaxZones: 1,
	}

	buf := bytes.NewBuffer(make([]byte, 0, maxpLength))
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

const maxpLength = 32

type binaryMaxp struct {
	Version   uint32
	NumGlyphs uint16

	MaxPoints            uint16
	MaxContours          uint16
	MaxCompositePoints   uint16
	MaxCompositeContours uint16

	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}
