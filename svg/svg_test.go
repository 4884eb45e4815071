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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"
)

func TestWrapIconify(t *testing.T) {
	cases := []struct {
		w, h float64
		want string
	}{
		{24, 24, `viewBox="0 0 24 24"`},
		{16.5, 24, `viewBox="0 0 16.5 24"`},
		{20.123456789, 20, `viewBox="0 0 20.123457 20"`},
	}
	for _, c := range cases {
		got := WrapIconify(`<path d="M0 0"/>`, c.w, c.h)
		if !strings.Contains(got, c.want) {
			t.Errorf("WrapIconify(%g, %g) = %q, missing %q", c.w, c.h, got, c.want)
		}
		if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg"`) {
			t.Errorf("missing svg element: %q", got)
		}
	}
}

func TestWrapIfNeeded(t *testing.T) {
	// bare path data
	got := wrapIfNeeded("M0 0H24V24H0Z")
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0H24V24H0Z"/></svg>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// complete documents pass through
	for _, doc := range []string{
		`<svg viewBox="0 0 16 16"><path d="M0 0"/></svg>`,
		`<?xml version="1.0"?><svg><path d="M0 0"/></svg>`,
	} {
		if got := wrapIfNeeded(doc); got != doc {
			t.Errorf("document was modified: %q", got)
		}
	}

	// fragments get wrapped
	got = wrapIfNeeded(`<path d="M0 0"/>`)
	if !strings.HasPrefix(got, `<svg `) || !strings.Contains(got, `viewBox="0 0 24 24"`) {
		t.Errorf("fragment not wrapped: %q", got)
	}
}

func TestExtractViewBox(t *testing.T) {
	cases := []struct {
		in   string
		want *rect.Rect
	}{
		{`<svg viewBox="0 0 24 24">`, &rect.Rect{URx: 24, URy: 24}},
		{`<svg viewBox='0 0 16 8'>`, &rect.Rect{URx: 16, URy: 8}},
		{`<svg viewBox="-5,-5,10,10">`, &rect.Rect{LLx: -5, LLy: -5, URx: 5, URy: 5}},
		{`<svg viewBox="0 0 0 24">`, nil},  // zero width
		{`<svg viewBox="0 0 24">`, nil},    // too few numbers
		{`<svg viewBox="a b c d">`, nil},   // not numbers
		{`<svg width="24" height="24">`, nil},
	}
	for _, c := range cases {
		got := extractViewBox(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: (-want +got):\n%s", c.in, d)
		}
	}
}

func TestParsePathData(t *testing.T) {
	o, err := parsePathData("M1 2L3 4l1 1H10h-2V8v1Z")
	if err != nil {
		t.Fatal(err)
	}
	type pt struct{ X, Y float64 }
	var got []pt
	for _, cmd := range o.Cmds {
		for _, p := range cmd.Args {
			got = append(got, pt{p.X, p.Y})
		}
	}
	want := []pt{
		{1, 2}, {3, 4}, {4, 5}, {10, 5}, {8, 5}, {8, 8}, {8, 9},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("points differ (-want +got):\n%s", d)
	}
}

func TestParsePathDataImplicit(t *testing.T) {
	// a moveto followed by extra coordinate pairs is a moveto plus
	// linetos
	o, err := parsePathData("M0 0 10 0 10 10")
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(o.Cmds))
	}
	if o.Cmds[1].Op != 1 || o.Cmds[2].Op != 1 { // OpLineTo
		t.Errorf("implicit repetition did not produce line segments")
	}
}

func TestParsePathDataCompact(t *testing.T) {
	// numbers can be run together when signs and decimal points make
	// the boundaries unambiguous
	o, err := parsePathData("M.5.5L-1-1")
	if err != nil {
		t.Fatal(err)
	}
	if o.Cmds[0].Args[0].X != 0.5 || o.Cmds[0].Args[0].Y != 0.5 {
		t.Errorf("bad start point: %v", o.Cmds[0].Args[0])
	}
	if o.Cmds[1].Args[0].X != -1 || o.Cmds[1].Args[0].Y != -1 {
		t.Errorf("bad line target: %v", o.Cmds[1].Args[0])
	}
}

func TestParsePathDataErrors(t *testing.T) {
	for _, d := range []string{
		"X1 2",
		"1 2 3 4",
		"M1",
		"M1 2A1",
		"M0 0A1 1 0 2 0 1 1", // invalid arc flag
	} {
		if _, err := parsePathData(d); err == nil {
			t.Errorf("%q: expected error", d)
		}
	}
}

func TestArcEndpoint(t *testing.T) {
	// quarter circle from (1,0) to (0,1)
	o, err := parsePathData("M1 0A1 1 0 0 0 0 1")
	if err != nil {
		t.Fatal(err)
	}
	last := o.Cmds[len(o.Cmds)-1]
	end := last.Args[len(last.Args)-1]
	if math.Abs(end.X) > 1e-9 || math.Abs(end.Y-1) > 1e-9 {
		t.Errorf("arc ends at %v, want (0, 1)", end)
	}

	// all intermediate points stay near the unit circle
	for _, cmd := range o.Cmds[1:] {
		for _, p := range cmd.Args {
			r := math.Hypot(p.X, p.Y)
			if r < 0.9 || r > 1.1 {
				t.Errorf("point %v is far from the unit circle", p)
			}
		}
	}
}

func TestParseTransform(t *testing.T) {
	// in a transform list the rightmost transform applies first
	m, err := parseTransform("translate(10 0) scale(2)")
	if err != nil {
		t.Fatal(err)
	}
	x, y := m.Apply(1, 1)
	if math.Abs(x-12) > 1e-9 || math.Abs(y-2) > 1e-9 {
		t.Errorf("got (%g, %g), want (12, 2)", x, y)
	}

	m, err = parseTransform("rotate(90)")
	if err != nil {
		t.Fatal(err)
	}
	x, y = m.Apply(1, 0)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("rotate(90): got (%g, %g), want (0, 1)", x, y)
	}

	if _, err := parseTransform("frobnicate(1 2)"); err == nil {
		t.Error("expected error for unknown transform function")
	}
	if _, err := parseTransform("scale(1 2 3)"); err == nil {
		t.Error("expected error for wrong argument count")
	}
}

func TestExtractBarePath(t *testing.T) {
	p, err := Extract("M0 0H24V24H0Z")
	if err != nil {
		t.Fatal(err)
	}
	if p.Outline.IsEmpty() {
		t.Error("no outline extracted")
	}
	want := &rect.Rect{URx: 24, URy: 24}
	if d := cmp.Diff(want, p.ViewBox); d != "" {
		t.Errorf("view box differs (-want +got):\n%s", d)
	}
}

func TestExtractShapes(t *testing.T) {
	doc := `<svg viewBox="0 0 24 24">
		<rect x="1" y="1" width="10" height="5"/>
		<circle cx="12" cy="12" r="4"/>
		<polygon points="0,0 4,0 2,4"/>
	</svg>`
	p, err := Extract(doc)
	if err != nil {
		t.Fatal(err)
	}
	ext := p.Outline.Extent()
	if ext.LLx > 0.001 || ext.URx < 15.9 {
		t.Errorf("unexpected extent %+v", ext)
	}
}

func TestExtractGroupTransform(t *testing.T) {
	doc := `<svg viewBox="0 0 24 24">
		<g transform="translate(10 10)">
			<path d="M0 0L2 0L2 2Z" transform="scale(2)"/>
		</g>
	</svg>`
	p, err := Extract(doc)
	if err != nil {
		t.Fatal(err)
	}
	// (2, 2) scaled by 2 then translated by (10, 10) is (14, 14)
	ext := p.Outline.Extent()
	if math.Abs(ext.URx-14) > 1e-9 || math.Abs(ext.URy-14) > 1e-9 {
		t.Errorf("unexpected extent %+v", ext)
	}
}

func TestExtractInvisible(t *testing.T) {
	for _, doc := range []string{
		`<svg viewBox="0 0 24 24"><path d="M0 0H24V24Z" display="none"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="M0 0H24V24Z" visibility="hidden"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="M0 0H24V24Z" fill="none"/></svg>`,
		`<svg viewBox="0 0 24 24"><path d="M0 0H24V24Z" opacity="0"/></svg>`,
		`<svg viewBox="0 0 24 24"><g style="display:none"><path d="M0 0H24V24Z"/></g></svg>`,
		`<svg viewBox="0 0 24 24"><defs><path d="M0 0H24V24Z"/></defs></svg>`,
	} {
		if _, err := Extract(doc); err == nil {
			t.Errorf("expected error for invisible-only document: %s", doc)
		}
	}
}

func TestExtractStrokeOnly(t *testing.T) {
	doc := `<svg viewBox="0 0 24 24">
		<line x1="2" y1="12" x2="22" y2="12" stroke="black" stroke-width="4"/>
	</svg>`
	p, err := Extract(doc)
	if err != nil {
		t.Fatal(err)
	}
	ext := p.Outline.Extent()
	// a butt-capped horizontal stroke of width 4 covers y in [10, 14]
	if math.Abs(ext.LLy-10) > 1e-6 || math.Abs(ext.URy-14) > 1e-6 ||
		math.Abs(ext.LLx-2) > 1e-6 || math.Abs(ext.URx-22) > 1e-6 {
		t.Errorf("unexpected stroke extent %+v", ext)
	}
}

func TestExtractBadXML(t *testing.T) {
	if _, err := Extract(`<svg><path d="M0 0"`); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestStrokeCaps(t *testing.T) {
	mk := func(cap string) rect.Rect {
		doc := `<svg viewBox="0 0 24 24"><line x1="4" y1="12" x2="20" y2="12" stroke="red" stroke-width="2" stroke-linecap="` + cap + `"/></svg>`
		p, err := Extract(doc)
		if err != nil {
			t.Fatal(err)
		}
		return p.Outline.Extent()
	}

	butt := mk("butt")
	if math.Abs(butt.LLx-4) > 1e-6 || math.Abs(butt.URx-20) > 1e-6 {
		t.Errorf("butt cap extent %+v", butt)
	}
	square := mk("square")
	if math.Abs(square.LLx-3) > 1e-6 || math.Abs(square.URx-21) > 1e-6 {
		t.Errorf("square cap extent %+v", square)
	}
	round := mk("round")
	if round.LLx < 2.9 || round.LLx > 3.2 || round.URx < 20.8 || round.URx > 21.1 {
		t.Errorf("round cap extent %+v", round)
	}
}
