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

// Package outline represents glyph outlines as sequences of drawing
// commands.
package outline

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Opcode classifies the drawing commands of an outline.
type Opcode byte

// The available drawing commands.
const (
	OpMoveTo Opcode = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

// Command is a single drawing command in an outline.
type Command struct {
	Op   Opcode
	Args []vec.Vec2
}

// Outline is a glyph outline, described as a sequence of drawing
// commands.
type Outline struct {
	Cmds []Command
}

// MoveTo starts a new subpath at the given point.
func (o *Outline) MoveTo(x, y float64) {
	o.Cmds = append(o.Cmds, Command{
		Op:   OpMoveTo,
		Args: []vec.Vec2{{X: x, Y: y}},
	})
}

// LineTo appends a straight line segment.
func (o *Outline) LineTo(x, y float64) {
	o.Cmds = append(o.Cmds, Command{
		Op:   OpLineTo,
		Args: []vec.Vec2{{X: x, Y: y}},
	})
}

// QuadTo appends a quadratic Bezier segment.
func (o *Outline) QuadTo(x1, y1, x2, y2 float64) {
	o.Cmds = append(o.Cmds, Command{
		Op:   OpQuadTo,
		Args: []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}},
	})
}

// CurveTo appends a cubic Bezier segment.
func (o *Outline) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	o.Cmds = append(o.Cmds, Command{
		Op:   OpCubeTo,
		Args: []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}},
	})
}

// Close closes the current subpath.
func (o *Outline) Close() {
	o.Cmds = append(o.Cmds, Command{Op: OpClose})
}

// Append appends all commands of other to o.
func (o *Outline) Append(other *Outline) {
	if other == nil {
		return
	}
	o.Cmds = append(o.Cmds, other.Cmds...)
}

// Clone returns a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	res := &Outline{Cmds: make([]Command, len(o.Cmds))}
	for i, cmd := range o.Cmds {
		res.Cmds[i] = Command{
			Op:   cmd.Op,
			Args: append([]vec.Vec2(nil), cmd.Args...),
		}
	}
	return res
}

// IsEmpty reports whether the outline contains no drawing commands.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Cmds) == 0
}

// Transform applies the matrix to all coordinates of the outline, in
// place.
func (o *Outline) Transform(m matrix.Matrix) {
	for _, cmd := range o.Cmds {
		for i, p := range cmd.Args {
			x, y := m.Apply(p.X, p.Y)
			cmd.Args[i] = vec.Vec2{X: x, Y: y}
		}
	}
}

// Extent computes the bounding box of all outline points, including
// Bezier control points.
func (o *Outline) Extent() rect.Rect {
	var bbox rect.Rect
	first := true
	for _, cmd := range o.Cmds {
		for _, p := range cmd.Args {
			if first {
				bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
				continue
			}
			if p.X < bbox.LLx {
				bbox.LLx = p.X
			}
			if p.X > bbox.URx {
				bbox.URx = p.X
			}
			if p.Y < bbox.LLy {
				bbox.LLy = p.Y
			}
			if p.Y > bbox.URy {
				bbox.URy = p.Y
			}
		}
	}
	return bbox
}
