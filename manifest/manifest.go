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

// Package manifest reads icon font definition files.
//
// A definition file is a YAML document naming the font module, the
// icons to fetch from remote collections, and local SVG assets:
//
//	module: ui.icons
//	glyphs:
//	  house: mdi::home
//	  gear:  mdi::cog
//	assets:
//	  logo: logo
//
// The declaration order of glyphs and assets determines the order of
// the characters in the font.
package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Glyph is one remote icon reference from the glyphs section.
type Glyph struct {
	// Name is the identifier the icon gets in the font.
	Name string

	// Collection and Icon identify the icon within its remote
	// collection, from a "collection::icon" reference.
	Collection string
	Icon       string
}

// Asset is one local icon from the assets section.
type Asset struct {
	// Name is the identifier the icon gets in the font.
	Name string

	// File is the file name below the assets directory.  The ".svg"
	// extension is implied.
	File string
}

// Definition is a parsed icon font definition.
type Definition struct {
	Module string
	Glyphs []Glyph
	Assets []Asset

	// Hash identifies the definition contents.  Two definitions with
	// the same module, glyphs and assets in the same order have the
	// same hash.
	Hash string
}

// Load reads and parses a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse parses the contents of a definition file.
func Parse(data []byte) (*Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("manifest: not a YAML document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manifest: top level must be a mapping")
	}

	d := &Definition{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]
		switch key.Value {
		case "module":
			if err := val.Decode(&d.Module); err != nil {
				return nil, err
			}
		case "glyphs":
			if err := d.parseGlyphs(val); err != nil {
				return nil, err
			}
		case "assets":
			if err := d.parseAssets(val); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("manifest: unknown key %q", key.Value)
		}
	}

	if strings.TrimSpace(d.Module) == "" {
		return nil, fmt.Errorf("manifest: missing module name")
	}

	hash, err := d.computeHash()
	if err != nil {
		return nil, err
	}
	d.Hash = hash
	return d, nil
}

// parseGlyphs reads the glyphs mapping.  Iterating over the node
// contents directly keeps the declaration order, which a decode into
// a Go map would lose.
func (d *Definition) parseGlyphs(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: glyphs must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		ref := node.Content[i+1].Value
		collection, icon, ok := strings.Cut(ref, "::")
		if !ok {
			return fmt.Errorf("manifest: glyph %q: reference %q is not of the form collection::icon",
				name, ref)
		}
		d.Glyphs = append(d.Glyphs, Glyph{
			Name:       name,
			Collection: collection,
			Icon:       icon,
		})
	}
	return nil
}

func (d *Definition) parseAssets(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: assets must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := strings.TrimSpace(node.Content[i].Value)
		file := strings.TrimSpace(node.Content[i+1].Value)
		if name == "" {
			return fmt.Errorf("manifest: asset with empty name")
		}
		if file == "" {
			return fmt.Errorf("manifest: asset %q: empty file name", name)
		}
		if ext := filepath.Ext(file); ext != "" {
			file = file[:len(file)-len(ext)]
		}
		d.Assets = append(d.Assets, Asset{Name: name, File: file + ".svg"})
	}
	return nil
}

// hashDef is the canonical serialization the definition hash is
// computed over.
type hashDef struct {
	Module string      `json:"module"`
	Glyphs []hashEntry `json:"glyphs"`
	Assets []hashEntry `json:"assets"`
}

type hashEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (d *Definition) computeHash() (string, error) {
	h := hashDef{Module: d.Module}
	for _, g := range d.Glyphs {
		h.Glyphs = append(h.Glyphs, hashEntry{
			Name:  g.Name,
			Value: g.Collection + "::" + g.Icon,
		})
	}
	for _, a := range d.Assets {
		h.Assets = append(h.Assets, hashEntry{Name: a.Name, Value: a.File})
	}
	data, err := json.Marshal(h)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", sha256.Sum256(data)), nil
}
