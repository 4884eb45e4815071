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

package maxp

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	i1 := &Info{
		NumGlyphs:   4,
		MaxPoints:   120,
		MaxContours: 7,
	}

	data := i1.Encode()
	if len(data) != maxpLength {
		t.Errorf("expected %d bytes, got %d", maxpLength, len(data))
	}

	i2, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(i1, i2); d != "" {
		t.Errorf("infos differ: %s", d)
	}
}

func TestVersion05(t *testing.T) {
	data := []byte{0x00, 0x00, 0x50, 0x00, 0x00, 0x03}
	info, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if info.NumGlyphs != 3 {
		t.Errorf("wrong NumGlyphs %d", info.NumGlyphs)
	}
}

func TestBadVersion(t *testing.T) {
	data := []byte{0x00, 0x02, 0x00, 0x00, 0x00, 0x03}
	_, err := Read(bytes.NewReader(data))
	if err == nil {
		t.Error("expected error for unknown version")
	}
}
