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
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// quadTolerance is the maximum allowed distance, in user space units,
// between a cubic segment and its quadratic replacements.
const quadTolerance = 0.1

var errNoCurrentPoint = errors.New("outline: drawing command before MoveTo")

// ToQuadratic returns a copy of the outline with every cubic Bezier
// segment replaced by quadratic segments.  The approximation error is
// at most quadTolerance.
//
// An error is returned if a line or curve command occurs before the
// first MoveTo of a subpath.
func (o *Outline) ToQuadratic() (*Outline, error) {
	res := &Outline{}
	var cur vec.Vec2
	var start vec.Vec2
	haveCur := false
	for _, cmd := range o.Cmds {
		switch cmd.Op {
		case OpMoveTo:
			cur = cmd.Args[0]
			start = cur
			haveCur = true
			res.MoveTo(cur.X, cur.Y)
		case OpLineTo:
			if !haveCur {
				return nil, errNoCurrentPoint
			}
			cur = cmd.Args[0]
			res.LineTo(cur.X, cur.Y)
		case OpQuadTo:
			if !haveCur {
				return nil, errNoCurrentPoint
			}
			res.QuadTo(cmd.Args[0].X, cmd.Args[0].Y, cmd.Args[1].X, cmd.Args[1].Y)
			cur = cmd.Args[1]
		case OpCubeTo:
			if !haveCur {
				return nil, errNoCurrentPoint
			}
			c := cubic{cur, cmd.Args[0], cmd.Args[1], cmd.Args[2]}
			c.toQuads(res, quadTolerance)
			cur = cmd.Args[2]
		case OpClose:
			res.Close()
			cur = start
		}
	}
	return res, nil
}

// cubic is a cubic Bezier segment used during conversion.
type cubic struct {
	p0, p1, p2, p3 vec.Vec2
}

// toQuads appends quadratic segments approximating c to res.
//
// The error of the best quadratic approximation is proportional to the
// third derivative of the cubic, which is constant along the segment,
// so the error shrinks with the third power of the number of
// subdivisions and the parameter interval can be split evenly.
func (c cubic) toQuads(res *Outline, accuracy float64) {
	// 432 == (36 / sqrt(3))^2, see
	// http://caffeineowl.com/graphics/2d/vectorial/cubic2quad01.html
	maxHypot2 := 432.0 * accuracy * accuracy
	p1x2 := c.p1.Mul(3).Sub(c.p0)
	p2x2 := c.p2.Mul(3).Sub(c.p3)
	d := p2x2.Sub(p1x2)
	err := d.X*d.X + d.Y*d.Y
	n := int(math.Ceil(math.Pow(err/maxHypot2, 1.0/6.0)))
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		seg := c.subsegment(t0, t1)
		q1x2 := seg.p1.Mul(3).Sub(seg.p0)
		q2x2 := seg.p2.Mul(3).Sub(seg.p3)
		ctrl := q1x2.Add(q2x2).Mul(0.25)
		res.QuadTo(ctrl.X, ctrl.Y, seg.p3.X, seg.p3.Y)
	}
}

// eval evaluates the cubic at parameter t.
func (c cubic) eval(t float64) vec.Vec2 {
	mt := 1 - t
	a := c.p0.Mul(mt * mt * mt)
	b := c.p1.Mul(3 * mt * mt * t)
	d := c.p2.Mul(3 * mt * t * t)
	e := c.p3.Mul(t * t * t)
	return a.Add(b).Add(d).Add(e)
}

// deriv evaluates the derivative of the cubic at parameter t.
func (c cubic) deriv(t float64) vec.Vec2 {
	mt := 1 - t
	a := c.p1.Sub(c.p0).Mul(3 * mt * mt)
	b := c.p2.Sub(c.p1).Mul(6 * mt * t)
	d := c.p3.Sub(c.p2).Mul(3 * t * t)
	return a.Add(b).Add(d)
}

// subsegment returns the restriction of the cubic to the parameter
// interval [t0, t1], reparametrized to [0, 1].
func (c cubic) subsegment(t0, t1 float64) cubic {
	q0 := c.eval(t0)
	q3 := c.eval(t1)
	scale := (t1 - t0) / 3
	q1 := q0.Add(c.deriv(t0).Mul(scale))
	q2 := q3.Sub(c.deriv(t1).Mul(scale))
	return cubic{q0, q1, q2, q3}
}
