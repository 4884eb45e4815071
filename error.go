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

import "fmt"

// InvalidIconError indicates that an icon definition cannot be used
// to build a glyph.
type InvalidIconError struct {
	Identifier string
	Reason     string
}

func (e *InvalidIconError) Error() string {
	if e.Identifier == "" {
		return "invalid icon: " + e.Reason
	}
	return fmt.Sprintf("icon %q: %s", e.Identifier, e.Reason)
}
