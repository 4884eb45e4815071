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

package outline

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// minDimension is the smallest usable extent of an outline or view
// box, in source units.
const minDimension = 1e-6

// FitEmSquare maps the outline into font units, in place.
//
// SVG uses a y-down coordinate system, font units are y-up, so the
// outline is mirrored vertically as part of the mapping.
//
// If viewBox is non-nil, the mapping is chosen so that the view box
// height exactly covers unitsPerEm, with the view box origin going to
// the glyph origin.  Otherwise the outline's own bounding box is
// scaled uniformly to fit within maxWidth x maxHeight.
func (o *Outline) FitEmSquare(viewBox *rect.Rect, unitsPerEm uint16, maxWidth, maxHeight float64) error {
	bbox := o.Extent()
	w := bbox.Dx()
	h := bbox.Dy()
	if w <= minDimension || h <= minDimension {
		return fmt.Errorf("outline: degenerate extent %gx%g", w, h)
	}

	var m matrix.Matrix
	if viewBox != nil && viewBox.Dx() > minDimension && viewBox.Dy() > minDimension {
		s := float64(unitsPerEm) / viewBox.Dy()
		m = matrix.Translate(-viewBox.LLx, -viewBox.LLy).
			Mul(matrix.Matrix{s, 0, 0, -s, 0, 0}).
			Mul(matrix.Translate(0, float64(unitsPerEm)))
	} else {
		s := math.Min(maxWidth/w, maxHeight/h)
		if math.IsInf(s, 0) || math.IsNaN(s) || s <= minDimension {
			return fmt.Errorf("outline: cannot scale %gx%g extent into %gx%g",
				w, h, maxWidth, maxHeight)
		}
		m = matrix.Translate(-bbox.LLx, -bbox.LLy).
			Mul(matrix.Matrix{s, 0, 0, -s, 0, 0}).
			Mul(matrix.Translate(0, s*h))
	}
	o.Transform(m)
	return nil
}
