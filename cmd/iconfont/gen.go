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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"seehuhn.de/go/iconfont"
	"seehuhn.de/go/iconfont/manifest"
)

// hashComment marks the line of the generated file which records the
// definition hash, for the up-to-date check.
const hashComment = "// Icon hash (SHA-256):"

var goFileTmpl = template.Must(template.New("icons").Parse(
	`// Code generated by iconfont; DO NOT EDIT.
` + hashComment + ` {{.Hash}}

package {{.Package}}

import _ "embed"

// FontFileName is the name of the font file the icon characters
// below refer to.
const FontFileName = {{printf "%q" .FontFile}}

// FontData holds the icon font.
//
//go:embed {{.FontFile}}
var FontData []byte

// The icon characters.
const (
{{range .Icons}}	{{.Identifier}} rune = {{printf "%q" .Rune}}
{{end}})
`))

type goFileData struct {
	Hash     string
	Package  string
	FontFile string
	Icons    []iconfont.Mapping
}

// goFilePath returns the path of the generated Go file: the module
// leaf next to the definition file.
func goFilePath(manifestPath, module string) string {
	leaf := module
	if i := strings.LastIndexByte(module, '.'); i >= 0 {
		leaf = module[i+1:]
	}
	return filepath.Join(filepath.Dir(manifestPath), leaf+".go")
}

func writeGoFile(path string, def *manifest.Definition, font *iconfont.Font) error {
	data := &goFileData{
		Hash:     def.Hash,
		Package:  packageName(def.Module),
		FontFile: iconfont.FontFileName(def.Module),
		Icons:    font.Mappings,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = goFileTmpl.Execute(f, data)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// packageName derives a Go package name from the module leaf.
func packageName(module string) string {
	leaf := module
	if i := strings.LastIndexByte(module, '.'); i >= 0 {
		leaf = module[i+1:]
	}
	name := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return -1
	}, leaf)
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		name = "icons"
	}
	return name
}
