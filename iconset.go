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

package iconfont

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/iconfont/sfnt"
)

// Collection groups the icons of an icon set by origin.
type Collection struct {
	Name string

	// Local is set for icons loaded from local files rather than
	// fetched from a remote collection.
	Local bool
}

// Icon is a single named icon.
type Icon struct {
	// Identifier is the name the icon is referred to by.  It must
	// form a valid Go identifier after normalization.
	Identifier string

	// Source is the SVG markup (or bare path data) of the icon.
	// After synthesis it holds the assigned character instead.
	Source string

	// Order is the global position of the icon, counted across all
	// collections.
	Order int
}

// IconSet is the complete input for building a font.
type IconSet struct {
	// Module is the name the font and generated identifiers are
	// derived from, for example "ui.icons".
	Module string

	Glyphs map[Collection][]*Icon
}

// Mapping records which character and glyph an icon was assigned.
type Mapping struct {
	Identifier string
	Rune       rune
	GID        sfnt.GlyphID
}

// InOrder returns all icons of the set as a single slice, sorted by
// their global order.
func (s *IconSet) InOrder() []*Icon {
	cols := maps.Keys(s.Glyphs)
	slices.SortFunc(cols, func(a, b Collection) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		switch {
		case a.Local == b.Local:
			return 0
		case b.Local:
			return -1
		default:
			return 1
		}
	})

	var icons []*Icon
	for _, col := range cols {
		icons = append(icons, s.Glyphs[col]...)
	}
	slices.SortStableFunc(icons, func(a, b *Icon) int {
		return a.Order - b.Order
	})
	return icons
}

// NormalizeIdentifier turns an icon name into the Go identifier used
// for it in generated code: the name is NFC-normalized and the first
// rune is converted to upper case.  An error is returned if the
// result is not a valid Go identifier.
func NormalizeIdentifier(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return "", &InvalidIconError{Identifier: name, Reason: "blank identifier"}
	}

	if token.IsKeyword(name) {
		return "", &InvalidIconError{Identifier: name, Reason: "identifier is a Go keyword"}
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	id := string(runes)

	if !token.IsIdentifier(id) {
		return "", &InvalidIconError{Identifier: name, Reason: "not a valid Go identifier"}
	}
	return id, nil
}
