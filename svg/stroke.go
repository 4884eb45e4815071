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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/iconfont/outline"
)

type capStyle int

const (
	capButt capStyle = iota
	capRound
	capSquare
)

type joinStyle int

const (
	joinMiter joinStyle = iota
	joinRound
	joinBevel
)

const (
	strokeFlatness        = 0.1
	zeroLengthThreshold   = 1e-9
	collinearityThreshold = 1e-9
	cuspCosineThreshold   = -1 + 1e-6
)

// strokeSegment is a line segment of a flattened subpath.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A to B)
	N    vec.Vec2 // unit normal (90 degrees CCW from T)
}

// stroker expands a path into the outline of its stroked shape.
type stroker struct {
	width      float64
	cap        capStyle
	join       joinStyle
	miterLimit float64

	segs             []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2

	stroke []vec.Vec2
	out    *outline.Outline
}

// expandStroke returns the outline of the area covered when the path
// is stroked with the given pen.  The polygons of the result overlap
// at joins and must be filled with the nonzero winding rule.
func expandStroke(o *outline.Outline, width float64, cap capStyle, join joinStyle, miterLimit float64) *outline.Outline {
	if miterLimit < 1 {
		miterLimit = 4
	}
	s := &stroker{
		width:      width,
		cap:        cap,
		join:       join,
		miterLimit: miterLimit,
		out:        &outline.Outline{},
	}
	s.flatten(o)

	// Degenerate subpaths have no direction; only a round cap gives
	// them any extent.
	if s.cap == capRound {
		for _, pt := range s.degeneratePoints {
			s.stroke = s.stroke[:0]
			s.addArc(pt, width/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			s.emitPolygon()
		}
	}

	for i := range s.segsOffsets {
		s.stroke = s.stroke[:0]
		s.strokeSubpath(s.subpathSegments(i), s.subpathClosed[i])
		if len(s.stroke) >= 3 {
			s.emitPolygon()
		}
	}
	return s.out
}

func (s *stroker) subpathSegments(i int) []strokeSegment {
	start := s.segsOffsets[i]
	end := len(s.segs)
	if i+1 < len(s.segsOffsets) {
		end = s.segsOffsets[i+1]
	}
	return s.segs[start:end]
}

func (s *stroker) emitPolygon() {
	s.out.MoveTo(s.stroke[0].X, s.stroke[0].Y)
	for _, p := range s.stroke[1:] {
		s.out.LineTo(p.X, p.Y)
	}
	s.out.Close()
}

// flatten walks the path, splits it into subpaths, flattens curves
// and precomputes segment geometry.
func (s *stroker) flatten(o *outline.Outline) {
	var cur, start vec.Vec2
	subpathStartIdx := 0
	inSubpath := false
	sawDrawingCmd := false

	finishSubpath := func(closed bool) {
		if !inSubpath || (len(s.segs) == subpathStartIdx && !sawDrawingCmd && !closed) {
			return
		}
		if len(s.segs) == subpathStartIdx {
			s.degeneratePoints = append(s.degeneratePoints, start)
		} else {
			s.segsOffsets = append(s.segsOffsets, subpathStartIdx)
			s.subpathClosed = append(s.subpathClosed, closed)
		}
	}

	for _, cmd := range o.Cmds {
		switch cmd.Op {
		case outline.OpMoveTo:
			finishSubpath(false)
			cur = cmd.Args[0]
			start = cur
			subpathStartIdx = len(s.segs)
			inSubpath = true
			sawDrawingCmd = false
		case outline.OpLineTo:
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			s.addSegment(cur, cmd.Args[0])
			cur = cmd.Args[0]
		case outline.OpQuadTo:
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			s.flattenQuad(cur, cmd.Args[0], cmd.Args[1])
			cur = cmd.Args[1]
		case outline.OpCubeTo:
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			s.flattenCubic(cur, cmd.Args[0], cmd.Args[1], cmd.Args[2])
			cur = cmd.Args[2]
		case outline.OpClose:
			if inSubpath {
				if cur != start {
					s.addSegment(cur, start)
				}
				finishSubpath(true)
				cur = start
				subpathStartIdx = len(s.segs)
				inSubpath = false
				sawDrawingCmd = false
			}
		}
	}
	finishSubpath(false)
}

func (s *stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	s.segs = append(s.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

func (s *stroker) flattenQuad(p0, p1, p2 vec.Vec2) {
	n := flattenSteps(p0.Sub(p1).Length() + p1.Sub(p2).Length())
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		pt := p0.Mul(mt * mt).Add(p1.Mul(2 * mt * t)).Add(p2.Mul(t * t))
		s.addSegment(prev, pt)
		prev = pt
	}
}

func (s *stroker) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	n := flattenSteps(p0.Sub(p1).Length() + p1.Sub(p2).Length() + p2.Sub(p3).Length())
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		pt := p0.Mul(mt * mt * mt).
			Add(p1.Mul(3 * mt * mt * t)).
			Add(p2.Mul(3 * mt * t * t)).
			Add(p3.Mul(t * t * t))
		s.addSegment(prev, pt)
		prev = pt
	}
}

// flattenSteps chooses the number of line segments for a curve whose
// control polygon has the given length.
func flattenSteps(polyLen float64) int {
	n := int(math.Ceil(math.Sqrt(polyLen / (4 * strokeFlatness))))
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	return n
}

// strokeSubpath builds the stroke outline polygon for one subpath: a
// forward pass along the +N side, then a backward pass along the -N
// side, with caps at the ends of open subpaths and join geometry on
// the outer side of each corner.
func (s *stroker) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}

	d := s.width / 2

	if closed {
		first := &segs[0]
		last := &segs[len(segs)-1]
		sinThetaClose := last.T.X*first.T.Y - last.T.Y*first.T.X

		// forward pass, +N side
		s.stroke = append(s.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			sinTheta := sinThetaClose
			if i < len(segs)-1 {
				next = &segs[i+1]
				sinTheta = seg.T.X*next.T.Y - seg.T.Y*next.T.X
			}
			if math.Abs(sinTheta) < collinearityThreshold {
				s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
				s.stroke = append(s.stroke, next.A.Add(next.N.Mul(d)))
			} else if sinTheta > 0 {
				// right turn, +N is the inner side
				s.addInnerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
			} else {
				s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
				s.addJoin(seg.B, seg.T, next.T, d, true)
				s.stroke = append(s.stroke, next.A.Add(next.N.Mul(d)))
			}
		}

		// backward pass, -N side, starting with the closing corner
		if math.Abs(sinThetaClose) < collinearityThreshold {
			s.stroke = append(s.stroke, first.A.Sub(first.N.Mul(d)))
			s.stroke = append(s.stroke, last.B.Sub(last.N.Mul(d)))
		} else if sinThetaClose > 0 {
			s.stroke = append(s.stroke, first.A.Sub(first.N.Mul(d)))
			s.addJoin(first.A, last.T, first.T, d, false)
			s.stroke = append(s.stroke, last.B.Sub(last.N.Mul(d)))
		} else {
			s.addInnerCorner(first.A, last.T, first.T, last.N, first.N, d, false)
		}

		for i := len(segs) - 1; i >= 0; i-- {
			seg := &segs[i]
			if i == 0 {
				s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
				break
			}
			prev := &segs[i-1]
			sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
			if math.Abs(sinTheta) < collinearityThreshold {
				s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
				s.stroke = append(s.stroke, prev.B.Sub(prev.N.Mul(d)))
			} else if sinTheta > 0 {
				// right turn, -N is the outer side
				s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
				s.addJoin(seg.A, prev.T, seg.T, d, false)
				s.stroke = append(s.stroke, prev.B.Sub(prev.N.Mul(d)))
			} else {
				s.addInnerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
			}
		}
		return
	}

	// open subpath
	first := &segs[0]
	last := &segs[len(segs)-1]

	s.addCap(first.A, first.T.Mul(-1), d)

	skipNextA := false
	for i := range segs {
		seg := &segs[i]
		if !skipNextA {
			s.stroke = append(s.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skipNextA = false
		if i == len(segs)-1 {
			s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sinTheta := seg.T.X*next.T.Y - seg.T.Y*next.T.X
		if math.Abs(sinTheta) < collinearityThreshold {
			s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
		} else if sinTheta > 0 {
			skipNextA = s.addInnerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		} else {
			s.stroke = append(s.stroke, seg.B.Add(seg.N.Mul(d)))
			s.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	s.addCap(last.B, last.T, d)

	skipNextB := false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipNextB {
			s.stroke = append(s.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skipNextB = false
		if i == 0 {
			s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sinTheta := prev.T.X*seg.T.Y - prev.T.Y*seg.T.X
		if math.Abs(sinTheta) < collinearityThreshold {
			s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
		} else if sinTheta > 0 {
			s.stroke = append(s.stroke, seg.A.Sub(seg.N.Mul(d)))
			s.addJoin(seg.A, prev.T, seg.T, d, false)
		} else {
			skipNextB = s.addInnerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// addCap adds a line cap at point P.  T is the outward tangent
// direction, d is half the stroke width.
func (s *stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch s.cap {
	case capButt:
		// the two offset points are connected directly
	case capSquare:
		ext := P.Add(T.Mul(d))
		s.stroke = append(s.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case capRound:
		s.addArc(P, d, N, -math.Pi, true)
	}
}

// addInnerCorner handles the inner side of a corner.  If the two
// offset lines intersect, only the intersection point is added and
// true is returned, telling the caller to skip the next offset point.
func (s *stroker) addInnerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, positiveSide bool) bool {
	cosTheta := T1.Dot(T2)
	if cosTheta > 1-1e-9 {
		// nearly collinear
	} else if halfAngle := math.Sqrt((1 + cosTheta) / 2); halfAngle >= 1e-9 {
		innerDir := N1.Add(N2)
		if !positiveSide {
			innerDir = innerDir.Mul(-1)
		}
		if l := innerDir.Length(); l >= 1e-9 {
			innerDir = innerDir.Mul(1 / l)
			s.stroke = append(s.stroke, P.Add(innerDir.Mul(d/halfAngle)))
			return true
		}
	}
	if positiveSide {
		s.stroke = append(s.stroke, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		s.stroke = append(s.stroke, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds the outer join geometry at point P where the tangent
// changes from T1 to T2.
func (s *stroker) addJoin(P, T1, T2 vec.Vec2, d float64, positiveSide bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X

	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}
	if cosTheta < cuspCosineThreshold {
		// cusp: the path doubles back on itself
		s.addCap(P, T1, d)
		s.addCap(P, T2.Mul(-1), d)
		return
	}

	switch s.join {
	case joinMiter:
		// The miter length is 1/sin(phi/2) where phi is the interior
		// angle of the corner, and sin(phi/2) = sqrt((1+cosTheta)/2).
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		if sinHalf > 0 && 1/sinHalf <= s.miterLimit+1e-10 {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if !positiveSide {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				bisector = bisector.Mul(1 / l)
				s.stroke = append(s.stroke, P.Add(bisector.Mul(d/sinHalf)))
			}
			return
		}
		// miter limit exceeded: bevel
	case joinBevel:
		// the two offset points are connected directly
	case joinRound:
		angle := math.Acos(math.Max(-1, math.Min(1, cosTheta)))
		if positiveSide {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				s.addArc(P, d, N1, angle, false)
			} else {
				s.addArc(P, d, N1, -angle, false)
			}
		} else {
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if sinTheta > 0 {
				s.addArc(P, d, N2, -angle, false)
			} else {
				s.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc adds arc vertices around center.  startDir is the unit
// vector from the center to the arc start, sweep is the sweep angle
// in radians, CCW positive.
func (s *stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	// For a chord over angle theta the sagitta is r*(1-cos(theta/2)),
	// so theta = 2*acos(1 - eps/r) keeps the deviation below eps.
	angleStep := math.Pi / 4
	if radius > strokeFlatness {
		angleStep = 2 * math.Acos(1-strokeFlatness/radius)
	}
	n := int(math.Ceil(math.Abs(sweep) / angleStep))
	if n < 1 {
		n = 1
	}
	dt := sweep / float64(n)
	startI := 0
	if !includeStart {
		startI = 1
	}
	for i := startI; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		s.stroke = append(s.stroke, center.Add(dir.Mul(radius)))
	}
}
