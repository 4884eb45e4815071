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

package name

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	t1 := &Table{
		Copyright:      "Contains third-party icons under their original licenses.",
		Family:         "myicons",
		Subfamily:      "Regular",
		FullName:       "myicons Regular",
		Version:        "Version 1.000",
		PostScriptName: "myicons-Regular",
		Description:    "Auto generated icon collection",
		VendorURL:      "https://seehuhn.de/go/iconfont",
		TypoFamily:     "myicons",
		TypoSubfamily:  "Regular",
	}

	data := t1.Encode()
	t2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(t1, t2); d != "" {
		t.Errorf("tables differ: %s", d)
	}
}

func TestNonASCII(t *testing.T) {
	t1 := &Table{
		Family:   "Größenwahn",
		Designer: "志村�子",
	}
	data := t1.Encode()
	t2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if t2.Family != t1.Family || t2.Designer != t1.Designer {
		t.Errorf("strings mangled: %q, %q", t2.Family, t2.Designer)
	}
}

func TestSharedStrings(t *testing.T) {
	// equal strings share storage
	t1 := &Table{
		Family:     "icons",
		TypoFamily: "icons",
	}
	data := t1.Encode()
	expected := 6 + 2*12 + 2*len("icons")
	if len(data) != expected {
		t.Errorf("expected %d bytes, got %d", expected, len(data))
	}
}

func TestEmptyOmitted(t *testing.T) {
	t1 := &Table{Family: "x"}
	data := t1.Encode()
	numRec := int(data[2])<<8 | int(data[3])
	if numRec != 1 {
		t.Errorf("expected 1 record, got %d", numRec)
	}
}

func FuzzName(f *testing.F) {
	f.Add((&Table{}).Encode())
	f.Add((&Table{
		Family:         "test",
		Subfamily:      "Regular",
		FullName:       "test Regular",
		PostScriptName: "test-Regular",
	}).Encode())

	f.Fuzz(func(t *testing.T, data []byte) {
		t1, err := Decode(data)
		if err != nil {
			return
		}

		data2 := t1.Encode()
		t2, err := Decode(data2)
		if err != nil {
			t.Fatal(err)
		}

		if d := cmp.Diff(t1, t2); d != "" {
			t.Errorf("tables differ: %s", d)
		}
	})
}
