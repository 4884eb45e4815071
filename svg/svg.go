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

// Package svg extracts glyph outlines from SVG documents.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/iconfont/outline"
)

// Parsed is the result of extracting the drawable contents of an SVG
// document.
type Parsed struct {
	// Outline contains the combined outlines of all visible shapes,
	// in document coordinates.
	Outline *outline.Outline

	// ViewBox is the document's view box, or nil if the document does
	// not declare a usable one.
	ViewBox *rect.Rect
}

// Extract parses SVG markup and collects the outlines of all visible
// shapes.  The markup may be a complete document, a markup fragment,
// or bare path data; fragments and path data are interpreted in a
// 24x24 view box.
func Extract(markup string) (*Parsed, error) {
	doc := wrapIfNeeded(markup)
	viewBox := extractViewBox(doc)

	var root element
	if err := xml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, fmt.Errorf("svg: cannot parse document: %w", err)
	}

	w := &walker{out: &outline.Outline{}}
	err := w.element(&root, matrix.Identity, defaultDrawState())
	if err != nil {
		return nil, err
	}
	if w.out.IsEmpty() {
		return nil, errors.New("svg: document contains no visible geometry")
	}
	return &Parsed{Outline: w.out, ViewBox: viewBox}, nil
}

// drawState holds the inherited drawing properties during traversal.
type drawState struct {
	fill             bool
	stroke           bool
	strokeWidth      float64
	cap              capStyle
	join             joinStyle
	miterLimit       float64
	strokeBeforeFill bool
	visible          bool
}

func defaultDrawState() drawState {
	return drawState{
		fill:        true, // initial fill is black
		strokeWidth: 1,
		miterLimit:  4,
		visible:     true,
	}
}

// apply updates the state with the presentation attributes of the
// element.
func (st drawState) apply(e *element) drawState {
	if v, ok := e.attr("fill"); ok {
		st.fill = paintVisible(v)
	}
	if v, ok := e.attr("stroke"); ok {
		st.stroke = paintVisible(v)
	}
	if v, ok := e.attr("fill-opacity"); ok && opacityZero(v) {
		st.fill = false
	}
	if v, ok := e.attr("stroke-opacity"); ok && opacityZero(v) {
		st.stroke = false
	}
	if v, ok := e.attr("opacity"); ok && opacityZero(v) {
		st.fill = false
		st.stroke = false
	}
	if v, ok := e.attr("stroke-width"); ok {
		if x, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64); err == nil {
			st.strokeWidth = x
		}
	}
	if v, ok := e.attr("stroke-linecap"); ok {
		switch strings.TrimSpace(v) {
		case "round":
			st.cap = capRound
		case "square":
			st.cap = capSquare
		case "butt":
			st.cap = capButt
		}
	}
	if v, ok := e.attr("stroke-linejoin"); ok {
		switch strings.TrimSpace(v) {
		case "round":
			st.join = joinRound
		case "bevel":
			st.join = joinBevel
		case "miter":
			st.join = joinMiter
		}
	}
	if v, ok := e.attr("stroke-miterlimit"); ok {
		if x, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && x >= 1 {
			st.miterLimit = x
		}
	}
	if v, ok := e.attr("paint-order"); ok {
		st.strokeBeforeFill = strokeFirst(v)
	}
	if v, ok := e.attr("visibility"); ok {
		switch strings.TrimSpace(v) {
		case "hidden", "collapse":
			st.visible = false
		case "visible":
			st.visible = true
		}
	}
	return st
}

// paintVisible reports whether a fill or stroke value paints anything.
func paintVisible(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "none" && v != "transparent"
}

func opacityZero(v string) bool {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "%")
	x, err := strconv.ParseFloat(v, 64)
	return err == nil && x <= 0
}

// strokeFirst reports whether a paint-order value asks for the stroke
// to be painted below the fill.
func strokeFirst(v string) bool {
	for _, f := range strings.Fields(v) {
		switch f {
		case "stroke":
			return true
		case "fill":
			return false
		}
	}
	return false
}

// walker traverses the document tree and accumulates outlines.
type walker struct {
	out *outline.Outline
}

// elements which cannot contribute geometry directly
var skipElements = map[string]bool{
	"defs":           true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"style":          true,
	"title":          true,
	"desc":           true,
	"metadata":       true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
}

func (w *walker) element(e *element, ctm matrix.Matrix, st drawState) error {
	if skipElements[e.XMLName.Local] {
		return nil
	}
	if v, ok := e.attr("display"); ok && strings.TrimSpace(v) == "none" {
		return nil
	}

	st = st.apply(e)
	if v, ok := e.attr("transform"); ok {
		local, err := parseTransform(v)
		if err != nil {
			return err
		}
		ctm = local.Mul(ctm)
	}

	switch e.XMLName.Local {
	case "svg", "g", "a":
		for i := range e.Children {
			err := w.element(&e.Children[i], ctm, st)
			if err != nil {
				return err
			}
		}
		return nil
	case "path":
		d, ok := e.attr("d")
		if !ok {
			return nil
		}
		return w.shape(d, true, ctm, st)
	case "rect", "circle", "ellipse", "line", "polyline", "polygon":
		d, fillable, err := shapeToPathData(e)
		if err != nil {
			return err
		}
		if d == "" {
			return nil
		}
		return w.shape(d, fillable, ctm, st)
	}
	return nil
}

// shape parses path data and adds the fill and stroke outlines of the
// shape under the current transform.
func (w *walker) shape(d string, fillable bool, ctm matrix.Matrix, st drawState) error {
	if !st.visible {
		return nil
	}
	local, err := parsePathData(d)
	if err != nil {
		return err
	}
	if local.IsEmpty() {
		return nil
	}

	doFill := st.fill && fillable
	doStroke := st.stroke && st.strokeWidth > 0

	var fill, stroke *outline.Outline
	if doStroke {
		// The pen is applied in the shape's own coordinate system,
		// then the expanded outline is transformed.
		stroke = expandStroke(local, st.strokeWidth, st.cap, st.join, st.miterLimit)
		stroke.Transform(ctm)
	}
	if doFill {
		fill = local.Clone()
		fill.Transform(ctm)
	}

	if st.strokeBeforeFill {
		w.out.Append(stroke)
		w.out.Append(fill)
	} else {
		w.out.Append(fill)
		w.out.Append(stroke)
	}
	return nil
}
