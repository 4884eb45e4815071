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

// Package iconfont builds TrueType fonts from collections of SVG
// icons.  Every icon becomes one glyph, mapped to a character in the
// Unicode private use area.
package iconfont

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"seehuhn.de/go/iconfont/funit"
	"seehuhn.de/go/iconfont/outline"
	"seehuhn.de/go/iconfont/sfnt"
	"seehuhn.de/go/iconfont/sfnt/cmap"
	"seehuhn.de/go/iconfont/sfnt/glyf"
	"seehuhn.de/go/iconfont/sfnt/head"
	"seehuhn.de/go/iconfont/sfnt/hmtx"
	"seehuhn.de/go/iconfont/sfnt/maxp"
	"seehuhn.de/go/iconfont/sfnt/name"
	"seehuhn.de/go/iconfont/sfnt/os2"
	"seehuhn.de/go/iconfont/sfnt/post"
	"seehuhn.de/go/iconfont/svg"
)

const (
	unitsPerEm   = 1000
	fontAscent   = 1000
	fontDescent  = 0
	advanceWidth = 1000

	// firstCodepoint is the character assigned to the first icon.
	// Subsequent icons get consecutive codepoints.
	firstCodepoint = 0xE000

	// maxIcons is the size of the Unicode Basic Multilingual Plane
	// private use area, U+E000 to U+F8FF.
	maxIcons = 6400
)

// Font is a synthesized icon font.
type Font struct {
	// TTF is the complete font file.
	TTF []byte

	// Mappings lists the character and glyph assigned to each icon,
	// in glyph order.
	Mappings []Mapping
}

// Synthesize builds a TrueType font from the icon set.  Icons are
// processed in their global order; the first icon is assigned the
// character U+E000 and glyph 1, with glyph 0 reserved for the empty
// .notdef glyph.
//
// As a side effect, the Source field of every icon is replaced by its
// assigned character, for use by code generators.
//
// The output is deterministic: the same icon set always produces the
// same bytes.
func Synthesize(set *IconSet) (*Font, error) {
	icons := set.InOrder()
	if len(icons) > maxIcons {
		return nil, fmt.Errorf("iconfont: %d icons exceed the private use area (max %d)",
			len(icons), maxIcons)
	}

	glyphs := make(glyf.Glyphs, 1, len(icons)+1)
	glyphs[0] = nil // .notdef
	c4 := cmap.Format4{}
	mappings := make([]Mapping, 0, len(icons))

	for i, icon := range icons {
		id, err := NormalizeIdentifier(icon.Identifier)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(icon.Source) == "" {
			return nil, &InvalidIconError{Identifier: icon.Identifier, Reason: "blank source"}
		}

		g, err := buildGlyph(icon.Source)
		if err != nil {
			return nil, &InvalidIconError{Identifier: icon.Identifier, Reason: err.Error()}
		}
		glyphs = append(glyphs, g)

		gid := sfnt.GlyphID(i + 1)
		r := rune(firstCodepoint + i)
		c4[uint16(r)] = gid
		mappings = append(mappings, Mapping{Identifier: id, Rune: r, GID: gid})
		icon.Source = string(r)
	}

	ttf, err := buildFont(set.Module, glyphs, c4, len(icons))
	if err != nil {
		return nil, err
	}
	return &Font{TTF: ttf, Mappings: mappings}, nil
}

// buildGlyph runs one icon source through the outline pipeline.
func buildGlyph(source string) (*glyf.Glyph, error) {
	parsed, err := svg.Extract(source)
	if err != nil {
		return nil, err
	}
	quad, err := parsed.Outline.ToQuadratic()
	if err != nil {
		return nil, err
	}
	err = quad.FitEmSquare(parsed.ViewBox, unitsPerEm, unitsPerEm, unitsPerEm)
	if err != nil {
		return nil, err
	}
	return glyphFromOutline(quad)
}

// glyphFromOutline converts a quadratic outline to a glyph, rounding
// all coordinates to font units.
func glyphFromOutline(o *outline.Outline) (*glyf.Glyph, error) {
	g := &glyf.Glyph{}
	var contour glyf.Contour

	push := func(x, y float64, onCurve bool) {
		pt := glyf.Point{
			X:       funit.Int16(math.Round(x)),
			Y:       funit.Int16(math.Round(y)),
			OnCurve: onCurve,
		}
		if len(contour) > 0 {
			last := contour[len(contour)-1]
			if last.X == pt.X && last.Y == pt.Y && last.OnCurve == pt.OnCurve {
				return
			}
		}
		contour = append(contour, pt)
	}
	finish := func() {
		// drop a closing point which duplicates the start
		if len(contour) > 1 {
			first, last := contour[0], contour[len(contour)-1]
			if first.X == last.X && first.Y == last.Y && last.OnCurve {
				contour = contour[:len(contour)-1]
			}
		}
		if len(contour) >= 2 {
			g.Contours = append(g.Contours, contour)
		}
		contour = nil
	}

	for _, cmd := range o.Cmds {
		switch cmd.Op {
		case outline.OpMoveTo:
			finish()
			push(cmd.Args[0].X, cmd.Args[0].Y, true)
		case outline.OpLineTo:
			push(cmd.Args[0].X, cmd.Args[0].Y, true)
		case outline.OpQuadTo:
			push(cmd.Args[0].X, cmd.Args[0].Y, false)
			push(cmd.Args[1].X, cmd.Args[1].Y, true)
		case outline.OpCubeTo:
			return nil, fmt.Errorf("cubic segment in quadratic outline")
		case outline.OpClose:
			finish()
		}
	}
	finish()

	if len(g.Contours) == 0 {
		return nil, fmt.Errorf("glyph has no contours")
	}

	first := true
	for _, cc := range g.Contours {
		for _, pt := range cc {
			if first {
				g.Rect = funit.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
				first = false
				continue
			}
			if pt.X < g.Rect.LLx {
				g.Rect.LLx = pt.X
			}
			if pt.X > g.Rect.URx {
				g.Rect.URx = pt.X
			}
			if pt.Y < g.Rect.LLy {
				g.Rect.LLy = pt.Y
			}
			if pt.Y > g.Rect.URy {
				g.Rect.URy = pt.Y
			}
		}
	}
	// Icon glyphs sit directly on the baseline at the left edge of
	// the em square, whatever their ink extent.
	if g.Rect.LLx > 0 {
		g.Rect.LLx = 0
	}
	if g.Rect.LLy > 0 {
		g.Rect.LLy = 0
	}
	return g, nil
}

// charRange makes the OS/2 table advertise the full assigned
// character range even when the font contains no icons.
type charRange struct {
	cmap.Format4
	low, high rune
}

func (c charRange) CodeRange() (low, high rune) {
	return c.low, c.high
}

// buildFont assembles all font tables.
func buildFont(module string, glyphs glyf.Glyphs, c4 cmap.Format4, numIcons int) ([]byte, error) {
	enc, err := glyphs.Encode()
	if err != nil {
		return nil, err
	}
	stats := glyphs.Stats()

	headInfo := &head.Info{
		FontRevision:   0x00010000,
		UnitsPerEm:     unitsPerEm,
		FontBBox:       funit.Rect{LLx: 0, LLy: fontDescent, URx: unitsPerEm, URy: fontAscent},
		LowestRecPPEM:  8,
		HasLongOffsets: enc.LocaFormat == 1,
	}

	hmtxInfo := &hmtx.Info{
		Width:       make([]uint16, len(glyphs)),
		GlyphExtent: make([]funit.Rect, len(glyphs)),
		LSB:         make([]int16, len(glyphs)),
		Ascent:      fontAscent,
		Descent:     fontDescent,
	}
	for i, g := range glyphs {
		hmtxInfo.Width[i] = advanceWidth
		if g != nil {
			hmtxInfo.GlyphExtent[i] = g.Rect
		}
	}
	hheaData, hmtxData := hmtxInfo.Encode()

	maxpInfo := &maxp.Info{
		NumGlyphs:   uint16(len(glyphs)),
		MaxPoints:   stats.MaxPoints,
		MaxContours: stats.MaxContours,
	}

	cmapData := c4.Encode(0)
	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: cmapData,
		{PlatformID: 3, EncodingID: 1}: cmapData,
	}

	cc := charRange{
		Format4: c4,
		low:     firstCodepoint,
		high:    firstCodepoint + rune(max(numIcons-1, 0)),
	}
	os2Info := &os2.Info{
		WeightClass:   400,
		WidthClass:    5,
		IsRegular:     true,
		Ascent:        fontAscent,
		Descent:       fontDescent,
		AvgGlyphWidth: advanceWidth,
	}

	nameInfo := &name.Table{
		Copyright:      "Contains third-party icons under their original licenses.",
		Family:         module,
		Subfamily:      "Regular",
		FullName:       module + " Regular",
		Version:        "Version 1.000",
		PostScriptName: postScriptName(module),
		Description:    "Auto generated icon collection",
		VendorURL:      "https://seehuhn.de/go/iconfont",
		TypoFamily:     module,
		TypoSubfamily:  "Regular",
	}

	postInfo := &post.Info{
		UnderlinePosition: 10,
	}

	tables := map[string][]byte{
		"head": headInfo.Encode(),
		"hhea": hheaData,
		"hmtx": hmtxData,
		"maxp": maxpInfo.Encode(),
		"cmap": cmapTable.Encode(),
		"name": nameInfo.Encode(),
		"OS/2": os2Info.Encode(cc),
		"post": postInfo.Encode(),
		"glyf": enc.GlyfData,
		"loca": enc.LocaData,
	}

	buf := &bytes.Buffer{}
	_, err = sfnt.WriteTables(buf, sfnt.ScalerTypeTrueType, tables)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// postScriptName derives the PostScript font name from the module
// name.  Characters outside [A-Za-z0-9] are replaced by hyphens.
func postScriptName(module string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '-'
	}, module)
	return sanitized + "-Regular"
}

// FontFileName returns the name of the font file for the given module
// name: the last dot-separated segment plus the ".ttf" extension.
func FontFileName(module string) string {
	leaf := module
	if i := strings.LastIndexByte(module, '.'); i >= 0 {
		leaf = module[i+1:]
	}
	return leaf + ".ttf"
}

// FontPath returns the path of the font file, which lives next to the
// manifest.
func FontPath(manifestPath, module string) string {
	return filepath.Join(filepath.Dir(manifestPath), FontFileName(module))
}
