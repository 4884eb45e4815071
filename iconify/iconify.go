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

// Package iconify fetches icons from the Iconify API.
package iconify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"seehuhn.de/go/iconfont/svg"
)

// DefaultBaseURL is the public Iconify API endpoint.
const DefaultBaseURL = "https://api.iconify.design"

// defaultDim is used when neither the icon nor the response declares
// a dimension.  It matches the Iconify API default.
const defaultDim = 16

// Client fetches icon data from an Iconify API server.
//
// The zero value is a ready-to-use client for the public API.
type Client struct {
	// BaseURL overrides the API endpoint.  Empty means
	// DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the HTTP client used for requests.  Nil
	// means http.DefaultClient.
	HTTPClient *http.Client
}

type iconData struct {
	Body   string   `json:"body"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type response struct {
	Prefix string              `json:"prefix"`
	Icons  map[string]iconData `json:"icons"`
	Width  *float64            `json:"width"`
	Height *float64            `json:"height"`
}

// Fetch retrieves the named icons from one collection.  The result
// maps each requested icon name to a complete SVG document.
//
// All requested icons must exist in the collection; a missing icon is
// an error.
func (c *Client) Fetch(ctx context.Context, collection string, names []string) (map[string]string, error) {
	collection = strings.TrimSpace(collection)
	if collection == "" {
		return nil, fmt.Errorf("iconify: empty collection name")
	}

	var query []string
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("iconify: empty icon name in collection %q", collection)
		}
		if !seen[name] {
			seen[name] = true
			query = append(query, name)
		}
	}
	if len(query) == 0 {
		return map[string]string{}, nil
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	reqURL := base + "/" + url.PathEscape(collection) + ".json?icons=" +
		url.QueryEscape(strings.Join(query, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("iconify: collection %q: server returned %s",
			collection, resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("iconify: collection %q: %w", collection, err)
	}
	if body.Prefix != collection {
		return nil, fmt.Errorf("iconify: requested collection %q but response is for %q",
			collection, body.Prefix)
	}

	res := make(map[string]string, len(query))
	for _, name := range query {
		icon, ok := body.Icons[name]
		if !ok {
			return nil, fmt.Errorf("iconify: icon %q not found in collection %q",
				name, collection)
		}
		w := dim(icon.Width, body.Width)
		h := dim(icon.Height, body.Height)
		res[name] = svg.WrapIconify(icon.Body, w, h)
	}
	return res, nil
}

func dim(icon, fallback *float64) float64 {
	if icon != nil {
		return *icon
	}
	if fallback != nil {
		return *fallback
	}
	return defaultDim
}
