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
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// element is a generic SVG document node.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

// attr returns the value of the named attribute.  A property of the
// same name in the style attribute takes precedence.
func (e *element) attr(name string) (string, bool) {
	if v, ok := e.styleProp(name); ok {
		return v, true
	}
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *element) styleProp(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local != "style" {
			continue
		}
		for _, decl := range strings.Split(a.Value, ";") {
			key, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			if strings.TrimSpace(key) == name {
				return strings.TrimSpace(val), true
			}
		}
	}
	return "", false
}

// floatAttr returns the named attribute as a number, or the given
// default value if the attribute is absent or malformed.  A "px" unit
// suffix is accepted.
func (e *element) floatAttr(name string, def float64) float64 {
	v, ok := e.attr(name)
	if !ok {
		return def
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return x
}

// shapeToPathData converts the basic shape elements to equivalent
// path data.  The second return value reports whether the shape can
// be filled.
func shapeToPathData(e *element) (string, bool, error) {
	switch e.XMLName.Local {
	case "rect":
		return rectPathData(e)
	case "circle":
		r := e.floatAttr("r", 0)
		return ellipsePathData(e.floatAttr("cx", 0), e.floatAttr("cy", 0), r, r), true, nil
	case "ellipse":
		d := ellipsePathData(e.floatAttr("cx", 0), e.floatAttr("cy", 0),
			e.floatAttr("rx", 0), e.floatAttr("ry", 0))
		return d, true, nil
	case "line":
		d := fmt.Sprintf("M%s %sL%s %s",
			num(e.floatAttr("x1", 0)), num(e.floatAttr("y1", 0)),
			num(e.floatAttr("x2", 0)), num(e.floatAttr("y2", 0)))
		return d, false, nil
	case "polyline", "polygon":
		points, _ := e.attr("points")
		d, err := polyPathData(points, e.XMLName.Local == "polygon")
		return d, true, err
	}
	return "", false, fmt.Errorf("svg: unsupported shape <%s>", e.XMLName.Local)
}

func rectPathData(e *element) (string, bool, error) {
	x := e.floatAttr("x", 0)
	y := e.floatAttr("y", 0)
	w := e.floatAttr("width", 0)
	h := e.floatAttr("height", 0)
	if w <= 0 || h <= 0 {
		return "", true, nil
	}

	rx := e.floatAttr("rx", -1)
	ry := e.floatAttr("ry", -1)
	if rx < 0 {
		rx = ry
	}
	if ry < 0 {
		ry = rx
	}
	if rx <= 0 || ry <= 0 {
		d := fmt.Sprintf("M%s %sH%sV%sH%sZ",
			num(x), num(y), num(x+w), num(y+h), num(x))
		return d, true, nil
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	arc := func(ex, ey float64) string {
		return fmt.Sprintf("A%s %s 0 0 1 %s %s", num(rx), num(ry), num(ex), num(ey))
	}
	d := fmt.Sprintf("M%s %sH%s%sV%s%sH%s%sV%s%sZ",
		num(x+rx), num(y),
		num(x+w-rx), arc(x+w, y+ry),
		num(y+h-ry), arc(x+w-rx, y+h),
		num(x+rx), arc(x, y+h-ry),
		num(y+ry), arc(x+rx, y))
	return d, true, nil
}

func ellipsePathData(cx, cy, rx, ry float64) string {
	if rx <= 0 || ry <= 0 {
		return ""
	}
	return fmt.Sprintf("M%s %sA%s %s 0 1 0 %s %sA%s %s 0 1 0 %s %sZ",
		num(cx+rx), num(cy),
		num(rx), num(ry), num(cx-rx), num(cy),
		num(rx), num(ry), num(cx+rx), num(cy))
}

func polyPathData(points string, closed bool) (string, error) {
	fields := strings.FieldsFunc(points, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	if len(fields) == 0 {
		return "", nil
	}
	if len(fields)%2 != 0 {
		return "", fmt.Errorf("svg: odd number of coordinates in points list")
	}
	var b strings.Builder
	for i := 0; i < len(fields); i += 2 {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		b.WriteString(fields[i])
		b.WriteByte(' ')
		b.WriteString(fields[i+1])
	}
	if closed {
		b.WriteByte('Z')
	}
	return b.String(), nil
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
