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

// Package name has code for reading and writing the "name" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"fmt"
	"sort"
	"unicode/utf16"
)

const maxNameID = 17

// The language ID for US English on the Windows platform.
const languageUSEnglish = 0x0409

// Table contains the name strings of a font, in a single language.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
type Table struct {
	Copyright      string
	Family         string
	Subfamily      string
	Identifier     string
	FullName       string
	Version        string
	PostScriptName string
	Trademark      string
	Manufacturer   string
	Designer       string
	Description    string
	VendorURL      string
	TypoFamily     string
	TypoSubfamily  string
}

func (t *Table) get(i int) string {
	switch i {
	case 0:
		return t.Copyright
	case 1:
		return t.Family
	case 2:
		return t.Subfamily
	case 3:
		return t.Identifier
	case 4:
		return t.FullName
	case 5:
		return t.Version
	case 6:
		return t.PostScriptName
	case 7:
		return t.Trademark
	case 8:
		return t.Manufacturer
	case 9:
		return t.Designer
	case 10:
		return t.Description
	case 11:
		return t.VendorURL
	case 16:
		return t.TypoFamily
	case 17:
		return t.TypoSubfamily
	default:
		return ""
	}
}

func (t *Table) set(i int, val string) {
	switch i {
	case 0:
		t.Copyright = val
	case 1:
		t.Family = val
	case 2:
		t.Subfamily = val
	case 3:
		t.Identifier = val
	case 4:
		t.FullName = val
	case 5:
		t.Version = val
	case 6:
		t.PostScriptName = val
	case 7:
		t.Trademark = val
	case 8:
		t.Manufacturer = val
	case 9:
		t.Designer = val
	case 10:
		t.Description = val
	case 11:
		t.VendorURL = val
	case 16:
		t.TypoFamily = val
	case 17:
		t.TypoSubfamily = val
	}
}

// Decode extracts the US English Windows name strings from a "name"
// table.
func Decode(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, errMalformedNames
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version > 1 {
		return nil, errMalformedNames
	}

	numRec := int(data[2])<<8 + int(data[3])
	storageOffset := int(data[4])<<8 + int(data[5])

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) || storageOffset > len(data) {
		return nil, errMalformedNames
	}

	t := &Table{}
	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		platformID := uint16(data[pos])<<8 | uint16(data[pos+1])
		languageID := uint16(data[pos+4])<<8 | uint16(data[pos+5])
		nameID := uint16(data[pos+6])<<8 | uint16(data[pos+7])
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		if platformID != 3 || languageID != languageUSEnglish || nameID > maxNameID {
			continue
		}
		if storageOffset+nameOffset+nameLen > len(data) {
			return nil, errMalformedNames
		}
		nameBytes := data[storageOffset+nameOffset : storageOffset+nameOffset+nameLen]
		t.set(int(nameID), utf16Decode(nameBytes))
	}
	return t, nil
}

// Encode converts the name strings into a binary "name" table.  Strings
// are stored as Windows platform records in US English; empty strings
// are omitted.
func (t *Table) Encode() []byte {
	type recInfo struct {
		NameID uint16
		offset uint16
		length uint16
	}
	var records []recInfo

	b := newNameBuilder()
	for nameID := 0; nameID <= maxNameID; nameID++ {
		val := t.get(nameID)
		if val == "" {
			continue
		}
		offset, length := b.Add(utf16Encode(val))
		records = append(records, recInfo{
			NameID: uint16(nameID),
			offset: offset,
			length: length,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].NameID < records[j].NameID
	})

	numRec := len(records)
	startOfRecords := 6
	startOfStrings := startOfRecords + numRec*12
	res := make([]byte, startOfStrings+len(b.data))

	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for i, rec := range records {
		base := startOfRecords + i*12
		res[base] = 0
		res[base+1] = 3 // Windows
		res[base+2] = 0
		res[base+3] = 1 // Unicode BMP
		res[base+4] = byte(languageUSEnglish >> 8)
		res[base+5] = byte(languageUSEnglish & 0xFF)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(rec.length >> 8)
		res[base+9] = byte(rec.length)
		res[base+10] = byte(rec.offset >> 8)
		res[base+11] = byte(rec.offset)
	}
	copy(res[startOfStrings:], b.data)

	return res
}

type nameBuilder struct {
	data []byte
	idx  map[string]uint16
}

func newNameBuilder() *nameBuilder {
	return &nameBuilder{
		idx: make(map[string]uint16),
	}
}

func (nb *nameBuilder) Add(b []byte) (offs, length uint16) {
	key := string(b)
	if idx, ok := nb.idx[key]; ok {
		return idx, uint16(len(b))
	}
	idx := uint16(len(nb.data))
	nb.idx[key] = idx
	nb.data = append(nb.data, b...)
	return idx, uint16(len(b))
}

func utf16Encode(s string) []byte {
	rr := utf16.Encode([]rune(s))
	res := make([]byte, len(rr)*2)
	for i, r := range rr {
		res[i*2] = byte(r >> 8)
		res[i*2+1] = byte(r)
	}
	return res
}

func utf16Decode(buf []byte) string {
	var nameWords []uint16
	for i := 0; i+1 < len(buf); i += 2 {
		nameWords = append(nameWords, uint16(buf[i])<<8|uint16(buf[i+1]))
	}
	return string(utf16.Decode(nameWords))
}

var errMalformedNames = fmt.Errorf("malformed name table")
