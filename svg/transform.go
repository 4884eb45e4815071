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
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// parseTransform parses an SVG transform attribute.  In a transform
// list the rightmost transform is applied to coordinates first.
func parseTransform(s string) (matrix.Matrix, error) {
	m := matrix.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return matrix.Matrix{}, fmt.Errorf("svg: malformed transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		closing := strings.IndexByte(rest[open:], ')')
		if closing < 0 {
			return matrix.Matrix{}, fmt.Errorf("svg: malformed transform %q", s)
		}
		args, err := parseTransformArgs(rest[open+1 : open+closing])
		if err != nil {
			return matrix.Matrix{}, err
		}
		t, err := transformFunc(name, args)
		if err != nil {
			return matrix.Matrix{}, err
		}
		m = t.Mul(m)
		rest = strings.TrimLeft(strings.TrimSpace(rest[open+closing+1:]), ",")
		rest = strings.TrimSpace(rest)
	}
	return m, nil
}

func parseTransformArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	args := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("svg: invalid transform argument %q", f)
		}
		args[i] = x
	}
	return args, nil
}

func transformFunc(name string, args []float64) (matrix.Matrix, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			break
		}
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case "translate":
		switch len(args) {
		case 1:
			return matrix.Translate(args[0], 0), nil
		case 2:
			return matrix.Translate(args[0], args[1]), nil
		}
	case "scale":
		switch len(args) {
		case 1:
			return matrix.Scale(args[0], args[0]), nil
		case 2:
			return matrix.Scale(args[0], args[1]), nil
		}
	case "rotate":
		switch len(args) {
		case 1:
			return matrix.RotateDeg(args[0]), nil
		case 3:
			m := matrix.Translate(-args[1], -args[2]).
				Mul(matrix.RotateDeg(args[0])).
				Mul(matrix.Translate(args[1], args[2]))
			return m, nil
		}
	case "skewX":
		if len(args) != 1 {
			break
		}
		return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, nil
	case "skewY":
		if len(args) != 1 {
			break
		}
		return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	default:
		return matrix.Matrix{}, fmt.Errorf("svg: unknown transform function %q", name)
	}
	return matrix.Matrix{}, fmt.Errorf("svg: wrong number of arguments for %s()", name)
}
