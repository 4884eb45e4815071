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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestExtent(t *testing.T) {
	o := &Outline{}
	o.MoveTo(2, 3)
	o.LineTo(10, -1)
	o.QuadTo(4, 20, 6, 6)
	o.Close()

	got := o.Extent()
	want := rect.Rect{LLx: 2, LLy: -1, URx: 10, URy: 20}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("extent differs (-want +got):\n%s", d)
	}
}

func TestTransform(t *testing.T) {
	o := &Outline{}
	o.MoveTo(1, 2)
	o.LineTo(3, 4)

	o.Transform(matrix.Matrix{2, 0, 0, -2, 0, 10})

	want := []vec.Vec2{{X: 2, Y: 10 - 4}, {X: 6, Y: 10 - 8}}
	got := []vec.Vec2{o.Cmds[0].Args[0], o.Cmds[1].Args[0]}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("points differ (-want +got):\n%s", d)
	}
}

func TestToQuadraticLines(t *testing.T) {
	o := &Outline{}
	o.MoveTo(0, 0)
	o.LineTo(5, 0)
	o.QuadTo(5, 5, 0, 5)
	o.Close()

	q, err := o.ToQuadratic()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(o, q); d != "" {
		t.Errorf("quadratic-free outline changed (-want +got):\n%s", d)
	}
}

func TestToQuadraticNoCurrentPoint(t *testing.T) {
	o := &Outline{}
	o.LineTo(1, 1)
	_, err := o.ToQuadratic()
	if err == nil {
		t.Error("expected error for LineTo before MoveTo")
	}

	o = &Outline{}
	o.CurveTo(1, 0, 2, 0, 3, 0)
	_, err = o.ToQuadratic()
	if err == nil {
		t.Error("expected error for CurveTo before MoveTo")
	}
}

func TestToQuadraticAccuracy(t *testing.T) {
	c := cubic{
		p0: vec.Vec2{X: 0, Y: 0},
		p1: vec.Vec2{X: 100, Y: 300},
		p2: vec.Vec2{X: 200, Y: -300},
		p3: vec.Vec2{X: 300, Y: 0},
	}

	o := &Outline{}
	o.MoveTo(c.p0.X, c.p0.Y)
	o.CurveTo(c.p1.X, c.p1.Y, c.p2.X, c.p2.Y, c.p3.X, c.p3.Y)

	q, err := o.ToQuadratic()
	if err != nil {
		t.Fatal(err)
	}

	n := len(q.Cmds) - 1 // quadratic segments after the initial MoveTo
	if n < 1 {
		t.Fatalf("no quadratic segments generated")
	}
	cur := c.p0
	for i := 1; i <= n; i++ {
		cmd := q.Cmds[i]
		if cmd.Op != OpQuadTo {
			t.Fatalf("command %d: expected OpQuadTo, got %d", i, cmd.Op)
		}
		ctrl, end := cmd.Args[0], cmd.Args[1]

		// The parameter interval is subdivided evenly, so quadratic
		// segment i covers t in [(i-1)/n, i/n].
		for _, u := range []float64{0.25, 0.5, 0.75} {
			t0 := (float64(i-1) + u) / float64(n)
			want := c.eval(t0)
			mu := 1 - u
			got := cur.Mul(mu * mu).Add(ctrl.Mul(2 * mu * u)).Add(end.Mul(u * u))
			dist := math.Hypot(got.X-want.X, got.Y-want.Y)
			if dist > quadTolerance {
				t.Errorf("segment %d, t=%g: distance %g exceeds tolerance", i, t0, dist)
			}
		}
		cur = end
	}
	if math.Abs(cur.X-c.p3.X) > 1e-9 || math.Abs(cur.Y-c.p3.Y) > 1e-9 {
		t.Errorf("endpoint drifted: got %v, want %v", cur, c.p3)
	}
}

func TestFitEmSquareViewBox(t *testing.T) {
	o := &Outline{}
	o.MoveTo(0, 0)
	o.LineTo(24, 0)
	o.LineTo(24, 24)
	o.Close()

	vb := &rect.Rect{LLx: 0, LLy: 0, URx: 24, URy: 24}
	err := o.FitEmSquare(vb, 1000, 1000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	// (0, 0) in a 24x24 view box maps to the top-left of the em
	// square, (24, 24) to the bottom-right.
	want := []vec.Vec2{{X: 0, Y: 1000}, {X: 1000, Y: 1000}, {X: 1000, Y: 0}}
	got := []vec.Vec2{o.Cmds[0].Args[0], o.Cmds[1].Args[0], o.Cmds[2].Args[0]}
	if d := cmp.Diff(want, got, cmp.Comparer(vecNear)); d != "" {
		t.Errorf("points differ (-want +got):\n%s", d)
	}
}

func TestFitEmSquareViewBoxOffset(t *testing.T) {
	o := &Outline{}
	o.MoveTo(10, 20)
	o.LineTo(30, 40)

	vb := &rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 40}
	err := o.FitEmSquare(vb, 1000, 1000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	want := []vec.Vec2{{X: 0, Y: 1000}, {X: 1000, Y: 0}}
	got := []vec.Vec2{o.Cmds[0].Args[0], o.Cmds[1].Args[0]}
	if d := cmp.Diff(want, got, cmp.Comparer(vecNear)); d != "" {
		t.Errorf("points differ (-want +got):\n%s", d)
	}
}

func TestFitEmSquareBBox(t *testing.T) {
	o := &Outline{}
	o.MoveTo(5, 5)
	o.LineTo(15, 5)
	o.LineTo(15, 25)
	o.Close()

	// Without a view box the 10x20 extent is scaled uniformly to fit
	// 1000x1000, so the scale is 50.
	err := o.FitEmSquare(nil, 1000, 1000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	want := []vec.Vec2{{X: 0, Y: 1000}, {X: 500, Y: 1000}, {X: 500, Y: 0}}
	got := []vec.Vec2{o.Cmds[0].Args[0], o.Cmds[1].Args[0], o.Cmds[2].Args[0]}
	if d := cmp.Diff(want, got, cmp.Comparer(vecNear)); d != "" {
		t.Errorf("points differ (-want +got):\n%s", d)
	}
}

func TestFitEmSquareDegenerate(t *testing.T) {
	o := &Outline{}
	o.MoveTo(1, 1)
	o.LineTo(1, 10) // zero width

	err := o.FitEmSquare(nil, 1000, 1000, 1000)
	if err == nil {
		t.Error("expected error for degenerate extent")
	}
}

func vecNear(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
