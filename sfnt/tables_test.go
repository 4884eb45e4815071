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

package sfnt

import (
	"bytes"
	"encoding/binary"
	"testing"

	"seehuhn.de/go/iconfont/sfnt/head"
)

func TestChecksum(t *testing.T) {
	cases := []struct {
		data []byte
		sum  uint32
	}{
		{nil, 0},
		{[]byte{0, 0, 0, 1}, 1},
		{[]byte{0, 0, 0, 1, 0, 0, 0, 2}, 3},
		{[]byte{1}, 0x01000000},
		{[]byte{1, 2, 3}, 0x01020300},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 1}, 0},
	}
	for i, c := range cases {
		if sum := checksum(c.data); sum != c.sum {
			t.Errorf("case %d: expected %08x, got %08x", i, c.sum, sum)
		}
	}
}

func TestChecksumSplitWrites(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	c := &check{}
	for _, b := range data {
		c.Write([]byte{b})
	}
	if sum := c.Sum(); sum != checksum(data) {
		t.Errorf("expected %08x, got %08x", checksum(data), sum)
	}
}

func TestWriteTables(t *testing.T) {
	tables := map[string][]byte{
		"glyf": {1, 2, 3, 4, 5}, // length not a multiple of four
		"cmap": {6, 7, 8, 9},
		"name": {},
		"cvt ": nil, // must be omitted
	}

	buf := &bytes.Buffer{}
	n, err := WriteTables(buf, ScalerTypeTrueType, tables)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if int64(len(data)) != n {
		t.Errorf("reported size %d, wrote %d bytes", n, len(data))
	}
	if len(data)%4 != 0 {
		t.Errorf("file length %d is not a multiple of four", len(data))
	}

	scalerType := binary.BigEndian.Uint32(data)
	if scalerType != ScalerTypeTrueType {
		t.Errorf("wrong scaler type %08x", scalerType)
	}
	numTables := binary.BigEndian.Uint16(data[4:])
	if numTables != 3 {
		t.Fatalf("expected 3 tables, got %d", numTables)
	}

	// directory entries are sorted by tag
	var prev Tag
	for i := 0; i < int(numTables); i++ {
		rec := data[12+16*i:]
		var tag Tag
		copy(tag[:], rec)
		if i > 0 && bytes.Compare(prev[:], tag[:]) >= 0 {
			t.Errorf("tags out of order: %s before %s", prev, tag)
		}
		prev = tag

		offset := binary.BigEndian.Uint32(rec[8:])
		length := binary.BigEndian.Uint32(rec[12:])
		if int(offset)+int(length) > len(data) {
			t.Errorf("table %s extends beyond the file", tag)
			continue
		}
		body := data[offset : offset+length]
		if !bytes.Equal(body, tables[tag.String()]) {
			t.Errorf("wrong data for table %s", tag)
		}
	}
}

func TestTableOrder(t *testing.T) {
	tables := map[string][]byte{
		"glyf": {1, 2, 3, 4},
		"loca": {0, 0, 0, 2},
		"cmap": {6, 7, 8, 9},
		"maxp": {0, 1, 2, 3},
	}
	buf := &bytes.Buffer{}
	_, err := WriteTables(buf, ScalerTypeTrueType, tables)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	// table bodies must follow the recommended ordering,
	// independent of the alphabetical directory order
	want := []string{"maxp", "cmap", "loca", "glyf"}
	bodyStart := uint32(12 + 16*len(want))
	for i, name := range want {
		for j := 0; j < len(want); j++ {
			rec := data[12+16*j:]
			var tag Tag
			copy(tag[:], rec)
			if tag.String() != name {
				continue
			}
			offset := binary.BigEndian.Uint32(rec[8:])
			if offset != bodyStart+uint32(4*i) {
				t.Errorf("table %s at offset %d, expected %d",
					name, offset, bodyStart+uint32(4*i))
			}
		}
	}
}

func TestCheckSumAdjustment(t *testing.T) {
	headInfo := &head.Info{
		FontRevision: 0x00010000,
		UnitsPerEm:   1000,
	}
	tables := map[string][]byte{
		"head": headInfo.Encode(),
		"glyf": {1, 2, 3, 4, 5, 6},
	}

	buf := &bytes.Buffer{}
	_, err := WriteTables(buf, ScalerTypeTrueType, tables)
	if err != nil {
		t.Fatal(err)
	}

	if sum := checksum(buf.Bytes()); sum != 0xB1B0AFBA {
		t.Errorf("whole-file checksum is %08x", sum)
	}
}
