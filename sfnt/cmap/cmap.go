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

// Package cmap has code for reading and writing cmap tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
package cmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"seehuhn.de/go/iconfont/sfnt"
)

// Key selects a subtable of a cmap table.
type Key struct {
	PlatformID uint16 // Platform ID.
	EncodingID uint16 // Platform-specific encoding ID.
	Language   uint16
}

// Subtable represents a decoded cmap subtable.
type Subtable interface {
	// Lookup returns the glyph ID for the given rune, or 0 if the rune
	// is not mapped.
	Lookup(r rune) sfnt.GlyphID

	// Encode returns the binary form of the subtable.
	Encode(language uint16) []byte

	// CodeRange returns the smallest and largest mapped code point.
	CodeRange() (low, high rune)
}

// Table contains the binary subtables of a cmap table.
type Table map[Key][]byte

// Decode splits a cmap table into its subtables.
func Decode(data []byte) (Table, error) {
	if len(data) < 4 {
		return nil, errMalformedCmap
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version != 0 {
		return nil, fmt.Errorf("cmap: unknown version %d", version)
	}
	numTables := int(data[2])<<8 | int(data[3])
	if len(data) < 4+8*numTables {
		return nil, errMalformedCmap
	}

	endOfHeader := uint32(4 + 8*numTables)
	endOfData := uint32(len(data))

	res := make(Table)
	for i := 0; i < numTables; i++ {
		platformID := uint16(data[4+i*8])<<8 | uint16(data[5+i*8])
		if platformID > 4 {
			return nil, errMalformedCmap
		}
		encodingID := uint16(data[6+i*8])<<8 | uint16(data[7+i*8])

		o := uint32(data[8+i*8])<<24 |
			uint32(data[9+i*8])<<16 |
			uint32(data[10+i*8])<<8 |
			uint32(data[11+i*8])
		if o < endOfHeader || o > endOfData-4 {
			return nil, errMalformedCmap
		}

		length := uint32(data[o+2])<<8 | uint32(data[o+3])
		if length < 4 || length > endOfData-o {
			return nil, errMalformedCmap
		}
		language := uint16(data[o+4])<<8 | uint16(data[o+5])
		if platformID != 1 {
			language = 0
		}

		key := Key{
			PlatformID: platformID,
			EncodingID: encodingID,
			Language:   language,
		}
		res[key] = data[o : o+length]
	}

	return res, nil
}

// Write writes the cmap table with all subtables.  Identical subtable
// bodies are stored only once.
func (ss Table) Write(w io.Writer) error {
	type extended struct {
		Data []byte
		Offs uint32
		Key
	}
	ext := make([]extended, 0, len(ss))
	for key, data := range ss {
		ext = append(ext, extended{
			Data: data,
			Key:  key,
		})
	}
	sort.Slice(ext, func(i, j int) bool {
		if ext[i].PlatformID != ext[j].PlatformID {
			return ext[i].PlatformID < ext[j].PlatformID
		}
		if ext[i].EncodingID != ext[j].EncodingID {
			return ext[i].EncodingID < ext[j].EncodingID
		}
		return ext[i].Language < ext[j].Language
	})

	numTables := len(ext)
	endOfHeader := uint32(4 + 8*numTables)

	pos := endOfHeader
offsLoop:
	for i, e := range ext {
		for j := 0; j < i; j++ {
			if bytes.Equal(e.Data, ext[j].Data) {
				ext[i].Offs = ext[j].Offs
				ext[i].Data = nil
				continue offsLoop
			}
		}
		ext[i].Offs = pos
		pos += uint32(len(e.Data))
	}

	header := make([]byte, endOfHeader)
	header[2] = byte(numTables >> 8)
	header[3] = byte(numTables)
	for i, e := range ext {
		header[4+i*8] = byte(e.PlatformID >> 8)
		header[5+i*8] = byte(e.PlatformID)
		header[6+i*8] = byte(e.EncodingID >> 8)
		header[7+i*8] = byte(e.EncodingID)
		header[8+i*8] = byte(e.Offs >> 24)
		header[9+i*8] = byte(e.Offs >> 16)
		header[10+i*8] = byte(e.Offs >> 8)
		header[11+i*8] = byte(e.Offs)
	}
	_, err := w.Write(header)
	if err != nil {
		return err
	}
	for _, e := range ext {
		_, err = w.Write(e.Data)
		if err != nil {
			return err
		}
	}

	return nil
}

// Encode returns the binary form of the cmap table.
func (ss Table) Encode() []byte {
	buf := &bytes.Buffer{}
	_ = ss.Write(buf)
	return buf.Bytes()
}

// Get decodes the given cmap subtable.
func (ss Table) Get(key Key) (Subtable, error) {
	data, ok := ss[key]
	if !ok {
		return nil, errors.New("cmap: no such subtable")
	}

	format := uint16(data[0])<<8 | uint16(data[1])
	if format != 4 {
		return nil, &sfnt.NotSupportedError{
			SubSystem: "sfnt/cmap",
			Feature:   fmt.Sprintf("subtable format %d", format),
		}
	}
	return decodeFormat4(data)
}

var (
	errMalformedCmap     = fmt.Errorf("malformed cmap table")
	errMalformedSubtable = fmt.Errorf("malformed cmap subtable")
)
