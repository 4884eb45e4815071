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

// Command iconfont builds an icon font from a definition file.
//
// Usage:
//
//	iconfont [options] icons.yaml
//
// The definition file names remote Iconify icons and local SVG
// assets.  The command fetches the icons, builds a TrueType font
// next to the definition file and, with -gen go, writes a Go source
// file declaring one rune constant per icon.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"seehuhn.de/go/iconfont"
	"seehuhn.de/go/iconfont/iconify"
	"seehuhn.de/go/iconfont/manifest"
)

func main() {
	manifestFlag := flag.String("f", "", "definition file (alternative to the positional argument)")
	assetsDir := flag.String("assets", "", "directory with local SVG assets (default: assets next to the definition file)")
	genMode := flag.String("gen", "font", "what to generate: font or go")
	verbose := flag.Bool("v", false, "report progress")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	manifestPath := *manifestFlag
	if manifestPath == "" {
		if flag.NArg() != 1 {
			fmt.Fprintf(os.Stderr, "usage: %s [options] icons.yaml\n", os.Args[0])
			flag.PrintDefaults()
			os.Exit(1)
		}
		manifestPath = flag.Arg(0)
	}
	if *genMode != "font" && *genMode != "go" {
		fmt.Fprintf(os.Stderr, "invalid -gen mode %q (want font or go)\n", *genMode)
		os.Exit(1)
	}

	err := run(manifestPath, *assetsDir, *genMode, *verbose)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(manifestPath, assetsDir, genMode string, verbose bool) error {
	def, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	if assetsDir == "" {
		assetsDir = filepath.Join(filepath.Dir(manifestPath), "assets")
	}

	fontPath := iconfont.FontPath(manifestPath, def.Module)
	genPath := goFilePath(manifestPath, def.Module)

	if upToDate(def, fontPath, genPath, genMode) {
		if verbose {
			pterm.Info.Printfln("%s is up to date", fontPath)
		}
		return nil
	}

	set, err := buildIconSet(def, assetsDir, verbose)
	if err != nil {
		return err
	}

	font, err := iconfont.Synthesize(set)
	if err != nil {
		return err
	}
	err = os.WriteFile(fontPath, font.TTF, 0o666)
	if err != nil {
		return err
	}
	if verbose {
		pterm.Success.Printfln("wrote %s (%d glyphs)", fontPath, len(font.Mappings)+1)
	}

	if genMode == "go" {
		err = writeGoFile(genPath, def, font)
		if err != nil {
			return err
		}
		if verbose {
			pterm.Success.Printfln("wrote %s", genPath)
		}
	}
	return nil
}

// buildIconSet fetches all remote collections and loads the local
// assets.
func buildIconSet(def *manifest.Definition, assetsDir string, verbose bool) (*iconfont.IconSet, error) {
	set := &iconfont.IconSet{
		Module: def.Module,
		Glyphs: make(map[iconfont.Collection][]*iconfont.Icon),
	}

	// group remote references by collection, keeping declaration
	// order for the icon order
	type ref struct {
		name, icon string
		order      int
	}
	byCollection := make(map[string][]ref)
	var collections []string
	for i, g := range def.Glyphs {
		if _, ok := byCollection[g.Collection]; !ok {
			collections = append(collections, g.Collection)
		}
		byCollection[g.Collection] = append(byCollection[g.Collection],
			ref{name: g.Name, icon: g.Icon, order: i})
	}

	client := &iconify.Client{}
	ctx := context.Background()
	for _, colName := range collections {
		refs := byCollection[colName]
		names := make([]string, len(refs))
		for i, r := range refs {
			names[i] = r.icon
		}
		if verbose {
			pterm.Info.Printfln("fetching %d icons from %s", len(names), colName)
		}
		sources, err := client.Fetch(ctx, colName, names)
		if err != nil {
			return nil, err
		}

		col := iconfont.Collection{Name: colName}
		for _, r := range refs {
			set.Glyphs[col] = append(set.Glyphs[col], &iconfont.Icon{
				Identifier: r.name,
				Source:     sources[r.icon],
				Order:      r.order,
			})
		}
	}

	if len(def.Assets) > 0 {
		col := iconfont.Collection{Name: "local", Local: true}
		for i, a := range def.Assets {
			data, err := os.ReadFile(filepath.Join(assetsDir, a.File))
			if err != nil {
				return nil, err
			}
			set.Glyphs[col] = append(set.Glyphs[col], &iconfont.Icon{
				Identifier: a.Name,
				Source:     string(data),
				Order:      len(def.Glyphs) + i,
			})
		}
	}
	return set, nil
}

// upToDate reports whether all outputs exist and were generated from
// the same definition.
func upToDate(def *manifest.Definition, fontPath, genPath, genMode string) bool {
	if _, err := os.Stat(fontPath); err != nil {
		return false
	}
	if genMode != "go" {
		return true
	}
	return extractHash(genPath) == def.Hash
}

// extractHash reads the definition hash recorded in a generated Go
// file.
func extractHash(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if rest, ok := strings.CutPrefix(line, hashComment); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
