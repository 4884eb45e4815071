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

package svg

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// WrapIconify wraps an Iconify icon body in a complete SVG document.
// The view box starts at the origin and has the given width and
// height.
func WrapIconify(body string, width, height float64) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">%s</svg>`,
		formatDim(width), formatDim(height), body)
}

// formatDim formats a view box dimension with up to six decimal
// digits, without trailing zeros.
func formatDim(x float64) string {
	s := strconv.FormatFloat(x, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// wrapIfNeeded turns the markup into a complete SVG document:
// a bare path data string becomes a single <path> in a 24x24
// document, a complete document is left alone, and any other markup
// fragment is wrapped in a 24x24 <svg> element.
func wrapIfNeeded(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if !strings.Contains(trimmed, "<") {
		return fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="%s"/></svg>`,
			trimmed)
	}
	if strings.HasPrefix(trimmed, "<svg") ||
		strings.HasPrefix(trimmed, "<?xml") ||
		strings.HasPrefix(trimmed, "<!DOCTYPE") {
		return trimmed
	}
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">%s</svg>`,
		trimmed)
}

// extractViewBox looks for a viewBox attribute in the markup.  The
// search is textual, so the attribute is found even before the
// document is parsed.  Nil is returned if there is no usable view
// box.
func extractViewBox(markup string) *rect.Rect {
	idx := strings.Index(markup, "viewBox=")
	if idx < 0 {
		return nil
	}
	rest := markup[idx+len("viewBox="):]
	if rest == "" {
		return nil
	}
	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return nil
	}
	rest = rest[1:]
	end := strings.IndexByte(rest, quote)
	if end < 0 {
		return nil
	}
	fields := strings.FieldsFunc(rest[:end], func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	if len(fields) != 4 {
		return nil
	}
	var vals [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		vals[i] = x
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return nil
	}
	return &rect.Rect{
		LLx: vals[0],
		LLy: vals[1],
		URx: vals[0] + vals[2],
		URy: vals[1] + vals[3],
	}
}
