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

package os2

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/iconfont/sfnt/cmap"
)

func TestRoundTrip(t *testing.T) {
	i1 := &Info{
		WeightClass: 400,
		WidthClass:  5,
		IsRegular:   true,

		Ascent:  1000,
		Descent: 0,

		AvgGlyphWidth: 1000,

		Vendor: "Seeh",

		PermUse: PermInstall,
	}

	data := i1.Encode(nil)
	i2, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(i1, i2); d != "" {
		t.Errorf("infos differ: %s", d)
	}
}

func TestPermissions(t *testing.T) {
	for _, perm := range []Permissions{PermInstall, PermEdit, PermView, PermRestricted} {
		i1 := &Info{PermUse: perm, Vendor: "    "}
		data := i1.Encode(nil)
		i2, err := Read(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		if i2.PermUse != perm {
			t.Errorf("%s: got %s", perm, i2.PermUse)
		}
	}
}

func TestCharIndexRange(t *testing.T) {
	cc := cmap.Format4{0xE000: 1, 0xE001: 2, 0xE07F: 3}
	info := &Info{}
	data := info.Encode(cc)

	// usFirstCharIndex is at offset 64, usLastCharIndex at 66
	first := uint16(data[64])<<8 | uint16(data[65])
	last := uint16(data[66])<<8 | uint16(data[67])
	if first != 0xE000 {
		t.Errorf("wrong usFirstCharIndex %04X", first)
	}
	if last != 0xE07F {
		t.Errorf("wrong usLastCharIndex %04X", last)
	}

	// bit 60 of ulUnicodeRange marks the Private Use Area.
	// The range starts at offset 42; bit 60 is in the second word.
	word2 := uint32(data[46])<<24 | uint32(data[47])<<16 |
		uint32(data[48])<<8 | uint32(data[49])
	if word2&(1<<28) == 0 {
		t.Error("Private Use Area bit not set")
	}
}

func TestTableLength(t *testing.T) {
	info := &Info{}
	data := info.Encode(nil)
	if len(data) != 96 {
		t.Errorf("expected 96 bytes for a version 4 table, got %d", len(data))
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version != 4 {
		t.Errorf("wrong version %d", version)
	}
}
