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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/iconfont/outline"
)

// pathParser parses SVG path data into an outline.
type pathParser struct {
	data string
	pos  int

	out   *outline.Outline
	cur   vec.Vec2
	start vec.Vec2

	// prevCtrl is the last Bezier control point, used for the S and T
	// shorthand commands.
	prevCtrl vec.Vec2
	prevCmd  byte
}

// parsePathData parses the value of a path element's "d" attribute.
func parsePathData(d string) (*outline.Outline, error) {
	p := &pathParser{
		data: d,
		out:  &outline.Outline{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.out, nil
}

func (p *pathParser) run() error {
	p.skipSep()
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isNumberStart(c) {
			// Implicit repetition of the previous command.  After a
			// MoveTo the repeated command is LineTo.
			switch p.prevCmd {
			case 'M':
				c = 'L'
			case 'm':
				c = 'l'
			case 0:
				return fmt.Errorf("svg: path data starts with a number")
			default:
				c = p.prevCmd
			}
		} else {
			p.pos++
		}
		if err := p.command(c); err != nil {
			return err
		}
		p.prevCmd = c
		p.skipSep()
	}
	return nil
}

func (p *pathParser) command(c byte) error {
	rel := c >= 'a' && c <= 'z'
	switch c {
	case 'M', 'm':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.cur = pt
		p.start = pt
		p.out.MoveTo(pt.X, pt.Y)
	case 'L', 'l':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.cur = pt
		p.out.LineTo(pt.X, pt.Y)
	case 'H', 'h':
		x, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			x += p.cur.X
		}
		p.cur.X = x
		p.out.LineTo(p.cur.X, p.cur.Y)
	case 'V', 'v':
		y, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			y += p.cur.Y
		}
		p.cur.Y = y
		p.out.LineTo(p.cur.X, p.cur.Y)
	case 'C', 'c':
		c1, err := p.point(rel)
		if err != nil {
			return err
		}
		c2, err := p.point(rel)
		if err != nil {
			return err
		}
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		p.out.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		p.prevCtrl = c2
		p.cur = end
	case 'S', 's':
		c1 := p.reflect('C', 'c', 'S', 's')
		c2, err := p.point(rel)
		if err != nil {
			return err
		}
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		p.out.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		p.prevCtrl = c2
		p.cur = end
	case 'Q', 'q':
		c1, err := p.point(rel)
		if err != nil {
			return err
		}
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		p.out.QuadTo(c1.X, c1.Y, end.X, end.Y)
		p.prevCtrl = c1
		p.cur = end
	case 'T', 't':
		c1 := p.reflect('Q', 'q', 'T', 't')
		end, err := p.point(rel)
		if err != nil {
			return err
		}
		p.out.QuadTo(c1.X, c1.Y, end.X, end.Y)
		p.prevCtrl = c1
		p.cur = end
	case 'A', 'a':
		if err := p.arc(rel); err != nil {
			return err
		}
	case 'Z', 'z':
		p.out.Close()
		p.cur = p.start
	default:
		return fmt.Errorf("svg: invalid path command %q", c)
	}
	return nil
}

// reflect returns the reflection of the previous control point about
// the current point, or the current point itself if the previous
// command was not of the matching family.
func (p *pathParser) reflect(cmds ...byte) vec.Vec2 {
	for _, c := range cmds {
		if p.prevCmd == c {
			return vec.Vec2{
				X: 2*p.cur.X - p.prevCtrl.X,
				Y: 2*p.cur.Y - p.prevCtrl.Y,
			}
		}
	}
	return p.cur
}

func (p *pathParser) arc(rel bool) error {
	rx, err := p.number()
	if err != nil {
		return err
	}
	ry, err := p.number()
	if err != nil {
		return err
	}
	rot, err := p.number()
	if err != nil {
		return err
	}
	largeArc, err := p.flag()
	if err != nil {
		return err
	}
	sweep, err := p.flag()
	if err != nil {
		return err
	}
	end, err := p.point(rel)
	if err != nil {
		return err
	}

	arcToCubics(p.out, p.cur, end, rx, ry, rot*math.Pi/180, largeArc, sweep)
	p.cur = end
	return nil
}

func (p *pathParser) point(rel bool) (vec.Vec2, error) {
	x, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	pt := vec.Vec2{X: x, Y: y}
	if rel {
		pt = pt.Add(p.cur)
	}
	return pt, nil
}

func (p *pathParser) number() (float64, error) {
	p.skipSep()
	start := p.pos
	i := p.pos
	if i < len(p.data) && (p.data[i] == '+' || p.data[i] == '-') {
		i++
	}
	for i < len(p.data) && p.data[i] >= '0' && p.data[i] <= '9' {
		i++
	}
	if i < len(p.data) && p.data[i] == '.' {
		i++
		for i < len(p.data) && p.data[i] >= '0' && p.data[i] <= '9' {
			i++
		}
	}
	if i < len(p.data) && (p.data[i] == 'e' || p.data[i] == 'E') {
		j := i + 1
		if j < len(p.data) && (p.data[j] == '+' || p.data[j] == '-') {
			j++
		}
		if j < len(p.data) && p.data[j] >= '0' && p.data[j] <= '9' {
			for j < len(p.data) && p.data[j] >= '0' && p.data[j] <= '9' {
				j++
			}
			i = j
		}
	}
	if i == start {
		return 0, fmt.Errorf("svg: expected number at position %d in path data", p.pos)
	}
	x, err := strconv.ParseFloat(p.data[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("svg: invalid number %q in path data", p.data[start:i])
	}
	p.pos = i
	return x, nil
}

// flag reads an arc flag, which is a single "0" or "1" character and
// may be run together with the following number.
func (p *pathParser) flag() (bool, error) {
	p.skipSep()
	if p.pos >= len(p.data) {
		return false, fmt.Errorf("svg: missing arc flag in path data")
	}
	switch p.data[p.pos] {
	case '0':
		p.pos++
		return false, nil
	case '1':
		p.pos++
		return true, nil
	}
	return false, fmt.Errorf("svg: invalid arc flag %q in path data", p.data[p.pos])
}

func (p *pathParser) skipSep() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.pos++
		default:
			return
		}
	}
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'
}

// arcToCubics appends cubic Bezier segments approximating an
// elliptical arc from p0 to p1 in endpoint parameterization, following
// the conversion rules of the SVG specification.
func arcToCubics(out *outline.Outline, p0, p1 vec.Vec2, rx, ry, phi float64, largeArc, sweep bool) {
	if p0 == p1 {
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		out.LineTo(p1.X, p1.Y)
		return
	}

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)

	// endpoint to center parameterization
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	// split into segments no larger than a quarter turn
	n := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	delta := dTheta / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(delta/4)

	pointAt := func(theta float64) vec.Vec2 {
		ct := math.Cos(theta)
		st := math.Sin(theta)
		return vec.Vec2{
			X: cx + rx*ct*cosPhi - ry*st*sinPhi,
			Y: cy + rx*ct*sinPhi + ry*st*cosPhi,
		}
	}
	derivAt := func(theta float64) vec.Vec2 {
		ct := math.Cos(theta)
		st := math.Sin(theta)
		return vec.Vec2{
			X: -rx*st*cosPhi - ry*ct*sinPhi,
			Y: -rx*st*sinPhi + ry*ct*cosPhi,
		}
	}

	theta := theta1
	for i := 0; i < n; i++ {
		thetaNext := theta + delta
		q0 := pointAt(theta)
		q3 := pointAt(thetaNext)
		if i == n-1 {
			q3 = p1 // avoid accumulated rounding at the join
		}
		q1 := q0.Add(derivAt(theta).Mul(alpha))
		q2 := q3.Sub(derivAt(thetaNext).Mul(alpha))
		out.CurveTo(q1.X, q1.Y, q2.X, q2.Y, q3.X, q3.Y)
		theta = thetaNext
	}
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	len := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	a := math.Acos(math.Max(-1, math.Min(1, dot/len)))
	if ux*vy-uy*vx < 0 {
		a = -a
	}
	return a
}
